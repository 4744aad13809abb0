package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLedgerctl(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--driver", "sqlite", "--sqlite-path", dbPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestLedgerctl_EndToEnd(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	db := filepath.Join(t.TempDir(), "ledger.db")

	out, err := runLedgerctl(t, db, "migrate", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "migrations up complete (sqlite)")

	out, err = runLedgerctl(t, db, "create-org", "--id", "acme", "--name", "Acme Trading")
	require.NoError(t, err)
	assert.Contains(t, out, "created organization acme (Acme Trading, AED)")

	out, err = runLedgerctl(t, db, "seed-chart", "--org", "acme")
	require.NoError(t, err)
	assert.Contains(t, out, "skipped 0 existing")

	out, err = runLedgerctl(t, db, "seed-chart", "--org", "acme")
	require.NoError(t, err)
	assert.Contains(t, out, "created 0 accounts")

	out, err = runLedgerctl(t, db, "learn", "--org", "acme", "--pattern", "careem", "--account-code", "6500")
	require.NoError(t, err)
	assert.Contains(t, out, `"CAREEM" -> 6500`)

	out, err = runLedgerctl(t, db, "suggest", "--org", "acme", "--description", "Careem ride to airport")
	require.NoError(t, err)
	assert.Contains(t, out, "6500")
	assert.Contains(t, out, "learned")

	out, err = runLedgerctl(t, db, "trial-balance", "--org", "acme")
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "0.00")

	out, err = runLedgerctl(t, db, "vat-summary", "--org", "acme", "--year", "2024", "--quarter", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "VAT 2024-01-01 to 2024-03-31")
	assert.Contains(t, out, "net VAT:           0.00")

	_, err = runLedgerctl(t, db, "migrate", "down")
	require.NoError(t, err)
}

func TestLedgerctl_RejectsBadInput(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	db := filepath.Join(t.TempDir(), "ledger.db")

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown migrate direction", args: []string{"migrate", "sideways"}},
		{name: "create-org without name", args: []string{"create-org", "--id", "x"}},
		{name: "bad as-of date", args: []string{"trial-balance", "--org", "acme", "--as-of", "31/12/2024"}},
		{name: "vat without a period", args: []string{"vat-summary", "--org", "acme"}},
		{name: "vat with a bad quarter", args: []string{"vat-summary", "--org", "acme", "--year", "2024", "--quarter", "5"}},
		{name: "unknown organization", args: []string{"seed-chart", "--org", "nobody"}},
		{name: "learn for a missing account", args: []string{"learn", "--org", "nobody", "--pattern", "x", "--account-code", "9999"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runLedgerctl(t, db, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestVatPeriod(t *testing.T) {
	start, end, err := vatPeriod(2024, 2, "", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", start.Format("2006-01-02"))
	assert.Equal(t, "2024-06-30", end.Format("2006-01-02"))

	start, end, err = vatPeriod(0, 0, "2024-01-15", "2024-02-15")
	require.NoError(t, err)
	assert.Equal(t, 15, start.Day())
	assert.Equal(t, 15, end.Day())

	_, _, err = vatPeriod(0, 0, "", "")
	assert.Error(t, err)
}
