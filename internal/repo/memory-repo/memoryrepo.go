// Package memoryrepo keeps users and ledgers in process memory. It backs the
// service when no database is configured; nothing survives a restart.
package memoryrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kboat10/babs10/internal/domain"
)

type Repository struct {
	mu      sync.RWMutex
	users   map[string]domain.User
	ledgers map[string]domain.LedgerSnapshot
	now     func() time.Time
}

func New() *Repository {
	return &Repository{
		users:   make(map[string]domain.User),
		ledgers: make(map[string]domain.LedgerSnapshot),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *Repository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *Repository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *Repository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	now := r.now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return user, nil
}

func (r *Repository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

func (r *Repository) LoadLedger(_ context.Context, userID string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.ledgers[userID]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), snapshot.State...), nil
}

func (r *Repository) SaveLedger(_ context.Context, userID string, state []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ledgers[userID] = domain.LedgerSnapshot{
		UserID:    userID,
		State:     append([]byte(nil), state...),
		UpdatedAt: r.now(),
	}
	return nil
}

func (r *Repository) ListLedgers(_ context.Context) ([]domain.LedgerSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshots := make([]domain.LedgerSnapshot, 0, len(r.ledgers))
	for _, s := range r.ledgers {
		s.State = append([]byte(nil), s.State...)
		snapshots = append(snapshots, s)
	}
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].UserID < snapshots[j].UserID })
	return snapshots, nil
}
