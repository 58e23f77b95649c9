package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/kboat10/babs10/internal/backup"
	"github.com/kboat10/babs10/internal/config"
	"github.com/kboat10/babs10/internal/events"
	"github.com/kboat10/babs10/internal/handlers"
	"github.com/kboat10/babs10/internal/pg"
	"github.com/kboat10/babs10/internal/repo"
	"github.com/kboat10/babs10/internal/service"
	"github.com/kboat10/babs10/internal/service/ledgerservice"
	"github.com/kboat10/babs10/pkg/auth"
	"github.com/kboat10/babs10/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type publisher interface {
	ledgerservice.Publisher
	Close() error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	publisher publisher
	backup    *backup.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	if err := a.initRepositories(ctx); err != nil {
		return err
	}
	if err := a.initPublisher(); err != nil {
		return err
	}

	hashService := auth.NewHashService(0)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.srv = service.New(a.repo, a.publisher, hashService, jwtService, cfg.TokenTTL)
	a.initBackup()
	a.api = handlers.New(a.srv, auth.NewMiddleware(jwtService), a.repo.Storage)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startBackupService(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("storage", a.repo.Storage))
	return nil
}

func (a *Application) initRepositories(ctx context.Context) error {
	if a.cfg.Database == "" {
		zap.L().Warn("DATABASE_URI is not set, ledgers are kept in memory only")
		a.repo = repo.NewInMemory()
		return nil
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	a.repo = repo.New(pg.New(pool), txManager)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		pool.Close()
	}()
	return nil
}

func (a *Application) initPublisher() error {
	if a.cfg.AMQPURL == "" {
		a.publisher = events.NopPublisher{}
		return nil
	}
	p, err := events.DialAMQP(a.cfg.AMQPURL)
	if err != nil {
		zap.L().Error("amqp dial failed: ", zap.Error(err))
		return fmt.Errorf("can't connect to amqp: %w", err)
	}
	a.publisher = p
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		if err := a.publisher.Close(); err != nil {
			zap.L().Error("event publisher close failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) initBackup() {
	if a.cfg.BackupDir == "" {
		return
	}
	a.backup = backup.New(a.cfg, a.repo.Snapshots, a.srv.RestoreService)
	a.srv.BackupService = a.backup
}

func (a *Application) startBackupService(ctx context.Context) {
	if a.backup == nil {
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.backup.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
