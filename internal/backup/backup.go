// Package backup periodically copies every persisted ledger to disk as
// pretty-printed JSON, keeping a bounded number of files per identity, and
// restores a ledger from one of those files.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kboat10/babs10/internal/config"
	"github.com/kboat10/babs10/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	filePrefix  = "ledger_"
	fileSuffix  = ".json"
	fileStamp   = "20060102T150405.000000000Z"
	workerCount = 4

	// maxBackupSize caps what Restore will read from disk.
	maxBackupSize = 16 << 20
)

type Repo interface {
	ListLedgers(ctx context.Context) ([]domain.LedgerSnapshot, error)
}

// Restorer validates a serialized ledger and makes it the live ledger of
// userID. It returns the number of customers restored.
type Restorer interface {
	RestoreLedger(ctx context.Context, userID string, state []byte) (int, error)
}

type Service struct {
	dir        string
	keep       int
	interval   time.Duration
	repo       Repo
	restorer   Restorer
	workerPool WorkerPoolI
	now        func() time.Time

	inFlight sync.Map
}

func New(cfg *config.Config, repo Repo, restorer Restorer) *Service {
	return &Service{
		dir:        cfg.BackupDir,
		keep:       cfg.BackupKeep,
		interval:   cfg.BackupInterval,
		repo:       repo,
		restorer:   restorer,
		workerPool: NewWorkerPool(workerCount),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("backup service started", zap.String("dir", s.dir), zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping backup service")
			return
		case <-ticker.C:
			if err := s.RunOnce(ctx); err != nil {
				zap.L().Error("backup run failed", zap.Error(err))
			}
		}
	}
}

// RunOnce backs up every ledger and prunes old files. A ledger still being
// written by a previous run is skipped.
func (s *Service) RunOnce(ctx context.Context) error {
	snapshots, err := s.repo.ListLedgers(ctx)
	if err != nil {
		return errors.Wrap(err, "list ledgers")
	}

	var g errgroup.Group
	for _, snapshot := range snapshots {
		snapshot := snapshot

		if _, loaded := s.inFlight.LoadOrStore(snapshot.UserID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			done := make(chan error, 1)
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(snapshot.UserID)
				err := s.backupLedger(snapshot)
				done <- err
				return err
			})
			if err != nil {
				s.inFlight.Delete(snapshot.UserID)
				return err
			}
			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	zap.L().Debug("backup run finished", zap.Int("ledgers", len(snapshots)))
	return nil
}

func safeName(s string) bool {
	return s != "" && s != "." && s != ".." && filepath.Base(s) == s
}

func isBackupFile(name string) bool {
	return strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileSuffix)
}

func (s *Service) backupLedger(snapshot domain.LedgerSnapshot) error {
	if !safeName(snapshot.UserID) {
		return fmt.Errorf("unsafe user id %q", snapshot.UserID)
	}
	dir := filepath.Join(s.dir, snapshot.UserID)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrapf(err, "create backup dir %s", dir)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, snapshot.State, "", "  "); err != nil {
		return errors.Wrapf(err, "format ledger of %s", snapshot.UserID)
	}

	name := filepath.Join(dir, filePrefix+s.now().Format(fileStamp)+fileSuffix)
	tmp := name + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o640); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := os.Rename(tmp, name); err != nil {
		return errors.Wrapf(err, "rename %s", tmp)
	}

	removed, err := prune(dir, s.keep)
	if err != nil {
		return err
	}
	zap.L().Info("ledger backed up",
		zap.String("user_id", snapshot.UserID),
		zap.String("file", name),
		zap.Int("pruned", removed))
	return nil
}

// prune keeps the newest keep backups in dir. File names sort by time.
func prune(dir string, keep int) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, errors.Wrapf(err, "read backup dir %s", dir)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && isBackupFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	if len(names) <= keep {
		return 0, nil
	}
	sort.Strings(names)

	stale := names[:len(names)-keep]
	for _, name := range stale {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return 0, errors.Wrapf(err, "remove %s", name)
		}
	}
	return len(stale), nil
}

// List returns the backup file names of userID, newest first.
func (s *Service) List(_ context.Context, userID string) ([]string, error) {
	if !safeName(userID) {
		return nil, domain.NewValidationError("user", "id is not usable as a directory name")
	}
	entries, err := os.ReadDir(filepath.Join(s.dir, userID))
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read backups of %s", userID)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && isBackupFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Restore replaces the live ledger of userID with the contents of one of
// its backup files. Only files inside the caller's own backup directory
// can be named.
func (s *Service) Restore(ctx context.Context, userID, file string) (int, error) {
	if !safeName(userID) {
		return 0, domain.NewValidationError("user", "id is not usable as a directory name")
	}
	if !safeName(file) || !isBackupFile(file) {
		return 0, domain.NewValidationError("file", fmt.Sprintf("%q is not a backup file name", file))
	}
	path := filepath.Join(s.dir, userID, file)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, domain.NewNotFoundError("backup", file)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "stat %s", path)
	}
	if info.Size() > maxBackupSize {
		return 0, domain.NewValidationError("file", fmt.Sprintf("is larger than %d bytes", maxBackupSize))
	}
	state, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "read %s", path)
	}

	restored, err := s.restorer.RestoreLedger(ctx, userID, state)
	if err != nil {
		zap.L().Error("ledger restore failed",
			zap.String("user_id", userID), zap.String("file", file), zap.Error(err))
		return 0, err
	}
	zap.L().Info("ledger restored",
		zap.String("user_id", userID), zap.String("file", file), zap.Int("customers", restored))
	return restored, nil
}
