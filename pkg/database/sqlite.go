package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	// registers the "sqlite3" driver
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDSN enables foreign keys, WAL and a busy timeout, and makes every
// transaction BEGIN IMMEDIATE so writers queue instead of failing on upgrade.
func SQLiteDSN(path string) string {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_journal_mode", "WAL")
	params.Set("_busy_timeout", "5000")
	params.Set("_txlock", "immediate")
	return "file:" + path + "?" + params.Encode()
}

// OpenSQLite opens and pings the database file at path.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}
	db, err := sql.Open("sqlite3", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	return db, nil
}
