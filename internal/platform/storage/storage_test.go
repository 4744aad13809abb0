package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/SscSPs/ledger_core/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestOpen_SQLiteMigrates(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "ledger.db"), RunMigrations: true}

	s, err := Open(context.Background(), cfg, discard())
	require.NoError(t, err)
	defer s.Close()

	types, err := s.Repos.AccountRepo.ListAccountTypes(context.Background())
	require.NoError(t, err)
	assert.Len(t, types, 9)

	require.NoError(t, s.MigrateDown(discard()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{DBDriver: "mysql"}, discard())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestOpen_PostgresNeedsURL(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{DBDriver: config.DriverPostgres}, discard())
	assert.Error(t, err)
}
