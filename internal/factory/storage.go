package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/atlasgrid/user-atlas/internal/config"
	storepkg "github.com/atlasgrid/user-atlas/internal/store"
	storemem "github.com/atlasgrid/user-atlas/internal/store/memory"
	storepg "github.com/atlasgrid/user-atlas/internal/store/postgres"
	storesqlite "github.com/atlasgrid/user-atlas/internal/store/sqlite"
)

// NewStore returns a store.Store for the configured driver.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.DBDriver {
	case "memory":
		log.Warn().Msg("using in-memory store; records do not survive restarts")
		return storemem.New(), nil

	case "sqlite":
		st, err := storesqlite.New(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		log.Debug().Str("path", cfg.SQLitePath).Msg("sqlite store ready")
		return st, nil

	case "postgres":
		db, err := storepg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		if err := storepg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		return storepg.NewWithDB(db), nil

	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
