package objcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLite stores entries in a single-table SQLite database. Useful when the
// cache should travel as one file or sit on a shared volume where a directory
// of loose files is awkward.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (and if needed initializes) a SQLite-backed store at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("objcache: open sqlite: %w", err)
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS artifacts (
		key  TEXT PRIMARY KEY,
		data BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("objcache: init schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Get reads the entry stored under key.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM artifacts WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("objcache: %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("objcache: %s: %w", key, err)
	}
	return data, nil
}

// Put writes the entry under key, replacing any previous value.
func (s *SQLite) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO artifacts (key, data) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data`, key, data)
	if err != nil {
		return fmt.Errorf("objcache: %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
