package store

import (
	"context"

	"github.com/atlasgrid/user-atlas/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (memory, sqlite, postgres).
type Store interface {
	Users() Users
}

// Users is the persistence port for user records: a single collection keyed
// by record identifier. Put overwrites an existing record with the same ID.
type Users interface {
	Put(ctx context.Context, u *model.User) error
	Get(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Delete(ctx context.Context, id string) error
}
