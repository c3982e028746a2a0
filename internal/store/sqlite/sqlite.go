package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/atlasgrid/user-atlas/internal/model"
	"github.com/atlasgrid/user-atlas/internal/store"
)

// New opens (or creates) a SQLite-backed store at the given path and ensures
// the schema exists.
func New(ctx context.Context, path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB allows wiring with an existing connection (used by tests and the factory).
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Users() store.Users { return &users{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type users struct{ db *sql.DB }

func (u *users) Put(ctx context.Context, m *model.User) error {
	_, err := u.db.ExecContext(ctx, `
        INSERT INTO users (id, name, zip_code, latitude, longitude, timezone, created_at, updated_at)
        VALUES (?,?,?,?,?,?,?,?)
        ON CONFLICT(id) DO UPDATE SET
            name=excluded.name, zip_code=excluded.zip_code,
            latitude=excluded.latitude, longitude=excluded.longitude,
            timezone=excluded.timezone, updated_at=excluded.updated_at
    `, m.ID, m.Name, m.ZipCode, m.Latitude, m.Longitude, m.Timezone, m.CreatedAt.UTC(), m.UpdatedAt.UTC())
	return err
}

func (u *users) Get(ctx context.Context, id string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `
        SELECT id, name, zip_code, latitude, longitude, timezone, created_at, updated_at
        FROM users WHERE id = ?
    `, id)
	return scanUser(row)
}

func (u *users) List(ctx context.Context) ([]*model.User, error) {
	rows, err := u.db.QueryContext(ctx, `
        SELECT id, name, zip_code, latitude, longitude, timezone, created_at, updated_at
        FROM users
    `)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.User
	for rows.Next() {
		var m model.User
		if err := rows.Scan(&m.ID, &m.Name, &m.ZipCode, &m.Latitude, &m.Longitude, &m.Timezone, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (u *users) Delete(ctx context.Context, id string) error {
	res, err := u.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (*model.User, error) {
	var m model.User
	if err := row.Scan(&m.ID, &m.Name, &m.ZipCode, &m.Latitude, &m.Longitude, &m.Timezone, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
