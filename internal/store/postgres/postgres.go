package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/atlasgrid/user-atlas/internal/model"
	"github.com/atlasgrid/user-atlas/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies
// connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

const ddl = `
CREATE TABLE IF NOT EXISTS users (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    zip_code   TEXT NOT NULL,
    latitude   DOUBLE PRECISION NOT NULL,
    longitude  DOUBLE PRECISION NOT NULL,
    timezone   TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema creates the users table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, ddl)
	return err
}

// NewWithDB constructs a native Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Users() store.Users { return &users{db: s.db} }

// HealthPing implements health.HealthPinger for the Postgres-backed store.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type users struct{ db *sql.DB }

func (u *users) Put(ctx context.Context, m *model.User) error {
	_, err := u.db.ExecContext(ctx, `
        INSERT INTO users (id, name, zip_code, latitude, longitude, timezone, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        ON CONFLICT (id) DO UPDATE SET
            name=EXCLUDED.name, zip_code=EXCLUDED.zip_code,
            latitude=EXCLUDED.latitude, longitude=EXCLUDED.longitude,
            timezone=EXCLUDED.timezone, updated_at=EXCLUDED.updated_at
    `, m.ID, m.Name, m.ZipCode, m.Latitude, m.Longitude, m.Timezone, m.CreatedAt.UTC(), m.UpdatedAt.UTC())
	return err
}

func (u *users) Get(ctx context.Context, id string) (*model.User, error) {
	row := u.db.QueryRowContext(ctx, `
        SELECT id, name, zip_code, latitude, longitude, timezone, created_at, updated_at
        FROM users WHERE id=$1
    `, id)
	var m model.User
	if err := row.Scan(&m.ID, &m.Name, &m.ZipCode, &m.Latitude, &m.Longitude, &m.Timezone, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
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
	res, err := u.db.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, id)
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
