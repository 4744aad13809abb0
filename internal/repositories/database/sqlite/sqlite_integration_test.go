package sqlite_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/repositories/database/sqlite"
	"github.com/SscSPs/ledger_core/internal/repositories/database/storetest"
	"github.com/SscSPs/ledger_core/migrations"
	"github.com/SscSPs/ledger_core/pkg/database"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func openMigrated(t *testing.T) (*sql.DB, portsrepo.RepositoryProvider) {
	db, err := database.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Up(db, migrations.SQLite, slog.New(slog.NewTextHandler(io.Discard, nil))))
	return db, sqlite.NewRepositoryProvider(db)
}

func TestSQLiteLedgerSuite(t *testing.T) {
	suite.Run(t, &storetest.LedgerSuite{Open: openMigrated})
}
