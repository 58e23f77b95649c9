package backup_test

import (
	"context"
	"testing"
	"time"

	"github.com/kboat10/babs10/internal/backup"
	"github.com/kboat10/babs10/internal/config"
	"github.com/kboat10/babs10/internal/domain"
	"github.com/kboat10/babs10/internal/events"
	"github.com/kboat10/babs10/internal/ledger"
	memoryrepo "github.com/kboat10/babs10/internal/repo/memory-repo"
	"github.com/kboat10/babs10/internal/service/ledgerservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupThenRestore(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.New()
	ledgers := ledgerservice.New(repo, events.NopPublisher{})
	backups := backup.New(&config.Config{
		BackupDir:      t.TempDir(),
		BackupKeep:     5,
		BackupInterval: time.Hour,
	}, repo, ledgers)

	kwasi, err := ledgers.CreateCustomer(ctx, "user-1", "Kwasi", nil)
	require.NoError(t, err)
	_, _, err = ledgers.SaveOrder(ctx, "user-1", kwasi.ID, ledger.OrderInput{
		OrderDate: "2025-08-21",
		Items: []domain.Item{
			{Desc: "Amazon 1", Qty: "1", Price: "60.94"},
			{Desc: "Amazon 2", Qty: "1", Price: "50.44"},
		},
	}, "")
	require.NoError(t, err)
	_, err = ledgers.Refund(ctx, "user-1", kwasi.ID, 700, "Returned shoes")
	require.NoError(t, err)

	want, err := ledgers.ListCustomers(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, backups.RunOnce(ctx))
	files, err := backups.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, files, 1)

	// Lose everything after the backup.
	_, err = ledgers.CreateCustomer(ctx, "user-1", "Grandma", nil)
	require.NoError(t, err)
	require.NoError(t, ledgers.DeleteCustomer(ctx, "user-1", kwasi.ID))

	restored, err := backups.Restore(ctx, "user-1", files[0])
	require.NoError(t, err)
	assert.Equal(t, 1, restored)

	got, err := ledgers.ListCustomers(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.True(t, want[i].MoneyGiven.Equal(got[i].MoneyGiven))
		assert.True(t, want[i].TotalSpent.Equal(got[i].TotalSpent))
		assert.Equal(t, want[i].Orders, got[i].Orders)
	}

	// The restored ledger is what the store now holds too.
	fresh := ledgerservice.New(repo, events.NopPublisher{})
	reloaded, err := fresh.ListCustomers(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, kwasi.ID, reloaded[0].ID)
}
