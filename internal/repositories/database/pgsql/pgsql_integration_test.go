package pgsql_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"testing"

	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/repositories/database/pgsql"
	"github.com/SscSPs/ledger_core/internal/repositories/database/storetest"
	"github.com/SscSPs/ledger_core/migrations"
	"github.com/SscSPs/ledger_core/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// rebind turns ? placeholders into $1, $2, ...
func rebind(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestRebind(t *testing.T) {
	assert.Equal(t, "DELETE FROM accounts WHERE organization_id = $1 AND code = $2",
		rebind("DELETE FROM accounts WHERE organization_id = ? AND code = ?"))
	assert.Equal(t, "SELECT 1", rebind("SELECT 1"))
}

// The suite drops and recreates the schema for every test, so PGSQL_URL must point
// at a disposable database.
func TestPgxLedgerSuite(t *testing.T) {
	url := os.Getenv("PGSQL_URL")
	if url == "" {
		t.Skip("PGSQL_URL not set")
	}

	open := func(t *testing.T) (*sql.DB, portsrepo.RepositoryProvider) {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		pool, err := database.NewPgxPool(ctx, url, true)
		require.NoError(t, err)
		db := database.OpenPgxStdlib(pool)
		t.Cleanup(func() {
			db.Close()
			pool.Close()
		})

		require.NoError(t, migrations.Down(db, migrations.Postgres, logger))
		require.NoError(t, migrations.Up(db, migrations.Postgres, logger))
		return db, pgsql.NewRepositoryProvider(pool)
	}

	suite.Run(t, &storetest.LedgerSuite{Open: open, Rebind: rebind})
}
