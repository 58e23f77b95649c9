package service

import (
	"time"

	"github.com/kboat10/babs10/internal/backup"
	"github.com/kboat10/babs10/internal/handlers/auth"
	"github.com/kboat10/babs10/internal/handlers/backups"
	"github.com/kboat10/babs10/internal/handlers/balance"
	"github.com/kboat10/babs10/internal/handlers/breakdown"
	"github.com/kboat10/babs10/internal/handlers/customers"
	"github.com/kboat10/babs10/internal/handlers/orders"

	pkgauth "github.com/kboat10/babs10/pkg/auth"

	"github.com/kboat10/babs10/internal/repo"
	authservice "github.com/kboat10/babs10/internal/service/authservice"
	ledgerservice "github.com/kboat10/babs10/internal/service/ledgerservice"
)

type Services struct {
	AuthService      auth.Service
	CustomerService  customers.Service
	OrderService     orders.Service
	BalanceService   balance.Service
	BreakdownService breakdown.Service
	RestoreService   backup.Restorer

	// BackupService is nil when no backup directory is configured.
	BackupService backups.Service
}

// New wires the services. Every ledger-facing interface is served by the
// same ledgerservice instance so all of them share one cache and lock.
func New(
	repo *repo.Repositories,
	publisher ledgerservice.Publisher,
	hashService pkgauth.HashServiceInterface,
	jwtService pkgauth.JWTServiceInterface,
	tokenTTL time.Duration,
) *Services {
	authService := authservice.New(repo.UserRepo, hashService, jwtService, tokenTTL)
	ledgerService := ledgerservice.New(repo.LedgerRepo, publisher)

	return &Services{
		AuthService:      authService,
		CustomerService:  ledgerService,
		OrderService:     ledgerService,
		BalanceService:   ledgerService,
		BreakdownService: ledgerService,
		RestoreService:   ledgerService,
	}
}
