// Package storage opens the configured database, applies migrations and builds the
// repository provider the services run on.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/platform/config"
	"github.com/SscSPs/ledger_core/internal/repositories/database/pgsql"
	"github.com/SscSPs/ledger_core/internal/repositories/database/sqlite"
	"github.com/SscSPs/ledger_core/migrations"
	"github.com/SscSPs/ledger_core/pkg/database"
)

// Storage is an open database together with the repositories bound to it.
type Storage struct {
	Driver string
	Repos  portsrepo.RepositoryProvider

	sqlDB   *sql.DB
	closeFn func()
}

// Open connects using cfg.DBDriver. Migrations run when cfg.RunMigrations is set.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, err
		}
		sqlDB := database.OpenPgxStdlib(pool)
		s := &Storage{
			Driver: migrations.Postgres,
			Repos:  pgsql.NewRepositoryProvider(pool),
			sqlDB:  sqlDB,
			closeFn: func() {
				_ = sqlDB.Close()
				database.ClosePgxPool(pool)
			},
		}
		return s.migrate(cfg, logger)

	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s := &Storage{
			Driver:  migrations.SQLite,
			Repos:   sqlite.NewRepositoryProvider(db),
			sqlDB:   db,
			closeFn: func() { _ = db.Close() },
		}
		return s.migrate(cfg, logger)
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
}

func (s *Storage) migrate(cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	if !cfg.RunMigrations {
		logger.Info("Skipping database migrations")
		return s, nil
	}
	logger.Info("Running database migrations...", slog.String("driver", s.Driver))
	if err := migrations.Up(s.sqlDB, s.Driver, logger); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// MigrateDown rolls every migration back.
func (s *Storage) MigrateDown(logger *slog.Logger) error {
	return migrations.Down(s.sqlDB, s.Driver, logger)
}

// Close releases the underlying connections.
func (s *Storage) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}
