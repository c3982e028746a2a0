package memory

import (
	"context"
	"sync"

	"github.com/atlasgrid/user-atlas/internal/model"
	"github.com/atlasgrid/user-atlas/internal/store"
)

// New returns an in-process store backed by a map. Used by default in
// development and by tests; the map is guarded by a single RWMutex.
func New() store.Store { return &memStore{users: make(map[string]*model.User)} }

type memStore struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

func (s *memStore) Users() store.Users { return (*users)(s) }

// HealthPing implements health.HealthPinger; the map is always reachable.
func (s *memStore) HealthPing(ctx context.Context) error { return ctx.Err() }

type users memStore

func (u *users) Put(ctx context.Context, m *model.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	cp := *m
	u.users[m.ID] = &cp
	return nil
}

func (u *users) Get(ctx context.Context, id string) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	m, ok := u.users[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (u *users) List(ctx context.Context) ([]*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]*model.User, 0, len(u.users))
	for _, m := range u.users {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (u *users) Delete(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.users[id]; !ok {
		return model.ErrNotFound
	}
	delete(u.users, id)
	return nil
}
