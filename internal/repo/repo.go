package repo

import (
	"github.com/kboat10/babs10/internal/backup"
	"github.com/kboat10/babs10/internal/pg"
	ledgerrepo "github.com/kboat10/babs10/internal/repo/ledger-repo"
	memoryrepo "github.com/kboat10/babs10/internal/repo/memory-repo"
	userrepo "github.com/kboat10/babs10/internal/repo/user-repo"
	"github.com/kboat10/babs10/internal/service/authservice"
	"github.com/kboat10/babs10/internal/service/ledgerservice"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Repositories struct {
	Storage    string
	UserRepo   authservice.Repo
	LedgerRepo ledgerservice.Repo
	Snapshots  backup.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	ledgerRepo := ledgerrepo.New(conn, txManager)

	return &Repositories{
		Storage:    StoragePostgres,
		UserRepo:   userrepo.New(conn),
		LedgerRepo: ledgerRepo,
		Snapshots:  ledgerRepo,
	}
}

// NewInMemory is used when no database is configured.
func NewInMemory() *Repositories {
	mem := memoryrepo.New()

	return &Repositories{
		Storage:    StorageMemory,
		UserRepo:   mem,
		LedgerRepo: mem,
		Snapshots:  mem,
	}
}
