package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/kboat10/babs10/internal/config"
	"github.com/kboat10/babs10/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T, keep int) (*Service, *MockRepo, string) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	dir := t.TempDir()

	service := New(&config.Config{
		BackupDir:      dir,
		BackupKeep:     keep,
		BackupInterval: time.Hour,
	}, repo, NewMockRestorer(ctrl))
	t.Cleanup(service.workerPool.Close)

	var mu sync.Mutex
	clock := time.Date(2025, 8, 24, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		clock = clock.Add(time.Second)
		return clock
	}
	return service, repo, dir
}

func backups(t *testing.T, dir string) []string {
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRunOnce(t *testing.T) {
	service, repo, dir := NewMock(t, 5)

	repo.EXPECT().ListLedgers(gomock.Any()).Return([]domain.LedgerSnapshot{
		{UserID: "user-1", State: []byte(`{"version":1,"customers":[]}`)},
		{UserID: "user-2", State: []byte(`{"version":1,"customers":[{"id":"c-1"}]}`)},
	}, nil)

	require.NoError(t, service.RunOnce(context.Background()))

	for _, user := range []string{"user-1", "user-2"} {
		files := backups(t, filepath.Join(dir, user))
		require.Len(t, files, 1, user)
		assert.Regexp(t, `^ledger_\d{8}T\d{6}\.\d{9}Z\.json$`, files[0])

		data, err := os.ReadFile(filepath.Join(dir, user, files[0]))
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  \"version\": 1")
	}
}

func TestRunOncePrunesOldBackups(t *testing.T) {
	service, repo, dir := NewMock(t, 2)

	repo.EXPECT().ListLedgers(gomock.Any()).Return([]domain.LedgerSnapshot{
		{UserID: "user-1", State: []byte(`{"version":1}`)},
	}, nil).Times(3)

	for i := 0; i < 3; i++ {
		require.NoError(t, service.RunOnce(context.Background()))
	}

	files := backups(t, filepath.Join(dir, "user-1"))
	assert.Equal(t, []string{
		"ledger_20250824T120002.000000000Z.json",
		"ledger_20250824T120003.000000000Z.json",
	}, files)
}

func TestRunOnceErrors(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(repo *MockRepo)
	}{
		{
			name: "Listing fails",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().ListLedgers(gomock.Any()).Return(nil, errors.New("database error"))
			},
		},
		{
			name: "State is not json",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().ListLedgers(gomock.Any()).Return([]domain.LedgerSnapshot{
					{UserID: "user-1", State: []byte("{broken")},
				}, nil)
			},
		},
		{
			name: "User id escapes the backup dir",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().ListLedgers(gomock.Any()).Return([]domain.LedgerSnapshot{
					{UserID: "../evil", State: []byte(`{}`)},
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, dir := NewMock(t, 2)
			tt.prepareMock(repo)

			assert.Error(t, service.RunOnce(context.Background()))
			assert.NoFileExists(t, filepath.Join(filepath.Dir(dir), "evil"))
		})
	}
}

func TestPrune(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"ledger_20250101T000000.000000000Z.json",
		"ledger_20250102T000000.000000000Z.json",
		"ledger_20250103T000000.000000000Z.json",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o600))
	}

	removed, err := prune(dir, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"ledger_20250103T000000.000000000Z.json", "notes.txt"}, backups(t, dir))
}

func writeBackup(t *testing.T, dir, userID, name, body string) {
	require.NoError(t, os.MkdirAll(filepath.Join(dir, userID), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, userID, name), []byte(body), 0o600))
}

func TestList(t *testing.T) {
	service, _, dir := NewMock(t, 5)
	writeBackup(t, dir, "user-1", "ledger_20250101T000000.000000000Z.json", "{}")
	writeBackup(t, dir, "user-1", "ledger_20250103T000000.000000000Z.json", "{}")
	writeBackup(t, dir, "user-1", "ledger_20250103T000000.000000000Z.json.tmp", "{}")

	names, err := service.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ledger_20250103T000000.000000000Z.json",
		"ledger_20250101T000000.000000000Z.json",
	}, names)

	names, err = service.List(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = service.List(context.Background(), "..")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRestore(t *testing.T) {
	const file = "ledger_20250824T120001.000000000Z.json"
	state := `{"version":1,"customers":[{"id":"c-1","name":"Kwasi"}]}`

	tests := []struct {
		name        string
		userID      string
		file        string
		prepareMock func(restorer *MockRestorer)
		restored    int
		expectedErr error
		anyErr      bool
	}{
		{
			name:   "Restores the named backup",
			userID: "user-1",
			file:   file,
			prepareMock: func(restorer *MockRestorer) {
				restorer.EXPECT().RestoreLedger(gomock.Any(), "user-1", []byte(state)).Return(1, nil)
			},
			restored: 1,
		},
		{
			name:   "Ledger rejected",
			userID: "user-1",
			file:   file,
			prepareMock: func(restorer *MockRestorer) {
				restorer.EXPECT().RestoreLedger(gomock.Any(), "user-1", []byte(state)).
					Return(0, domain.NewValidationError("price", "is not a plain decimal number"))
			},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "Missing backup",
			userID:      "user-1",
			file:        "ledger_20200101T000000.000000000Z.json",
			prepareMock: func(*MockRestorer) {},
			expectedErr: domain.ErrNotFound,
		},
		{
			name:        "Another identity's backup",
			userID:      "user-2",
			file:        file,
			prepareMock: func(*MockRestorer) {},
			expectedErr: domain.ErrNotFound,
		},
		{
			name:        "Path traversal",
			userID:      "user-2",
			file:        "../user-1/" + file,
			prepareMock: func(*MockRestorer) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "Not a backup file",
			userID:      "user-1",
			file:        "notes.txt",
			prepareMock: func(*MockRestorer) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:   "Restorer fails",
			userID: "user-1",
			file:   file,
			prepareMock: func(restorer *MockRestorer) {
				restorer.EXPECT().RestoreLedger(gomock.Any(), "user-1", gomock.Any()).Return(0, errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, dir := NewMock(t, 5)
			writeBackup(t, dir, "user-1", file, state)
			tt.prepareMock(service.restorer.(*MockRestorer))

			restored, err := service.Restore(context.Background(), tt.userID, tt.file)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			case tt.anyErr:
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.restored, restored)
		})
	}
}
