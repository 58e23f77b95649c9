package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/kboat10/babs10/internal/domain"
	"github.com/kboat10/babs10/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// LoadLedger returns nil when the user has no saved ledger yet.
func (r *Repository) LoadLedger(ctx context.Context, userID string) ([]byte, error) {
	var state []byte
	err := r.db.QueryRow(ctx, "SELECT state FROM ledgers WHERE user_id = $1", userID).Scan(&state)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to load ledger", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return state, nil
}

func (r *Repository) SaveLedger(ctx context.Context, userID string, state []byte) error {
	query := `
		INSERT INTO ledgers (user_id, state, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, userID, state); err != nil {
			zap.L().Error("failed to save ledger", zap.String("user_id", userID), zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) ListLedgers(ctx context.Context) ([]domain.LedgerSnapshot, error) {
	rows, err := r.db.Query(ctx, "SELECT user_id, state, updated_at FROM ledgers ORDER BY user_id")
	if err != nil {
		zap.L().Error("failed to list ledgers", zap.Error(err))
		return nil, err
	}
	snapshots, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.LedgerSnapshot])
	if err != nil {
		zap.L().Error("failed to scan ledgers", zap.Error(err))
		return nil, err
	}
	return snapshots, nil
}
