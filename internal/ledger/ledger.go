// Package ledger keeps a local record of statement lines already imported
// into the backend, so repeated bulk imports of overlapping statements do not
// create duplicate transactions. It is an import-time bookkeeping store, not
// a cache of backend data.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Ledger is a SQLite-backed set of imported statement line hashes.
type Ledger struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the ledger database at the given path.
func Open(path string) (*Ledger, error) {
	if path == "" {
		return nil, fmt.Errorf("ledger path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping ledger database: %w", err)
	}

	l := &Ledger{db: db, path: path}
	if err := l.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return l, nil
}

// Close closes the underlying database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS imported_lines (
			hash TEXT PRIMARY KEY,
			fitid TEXT,
			account_id TEXT,
			transaction_id INTEGER,
			imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_imported_lines_account ON imported_lines(account_id)`,
	}
	for _, query := range queries {
		if _, err := l.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to migrate ledger schema: %w", err)
		}
	}
	return nil
}

// Seen reports whether a statement line hash was imported before.
func (l *Ledger) Seen(ctx context.Context, hash string) (bool, error) {
	var one int
	err := l.db.QueryRowContext(ctx,
		`SELECT 1 FROM imported_lines WHERE hash = ?`, hash).Scan(&one)
	switch {
	case err == sql.ErrNoRows:
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to query ledger: %w", err)
	}
	return true, nil
}

// MarkImported records a statement line as imported, keyed by hash. Marking
// the same hash twice is not an error.
func (l *Ledger) MarkImported(ctx context.Context, hash, fitID, accountID string, transactionID int64) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO imported_lines (hash, fitid, account_id, transaction_id)
		 VALUES (?, ?, ?, ?)`,
		hash, fitID, accountID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to record imported line: %w", err)
	}
	return nil
}

// Count returns the number of recorded lines.
func (l *Ledger) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM imported_lines`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}
	return n, nil
}
