// Package sqlite implements the primary wardrobe store: a single-file
// SQLite database holding one key/value table.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"wardrobe/internal/wardrobe/repository"
	"wardrobe/pkg/log"
)

type implStore struct {
	db *sql.DB
	l  log.Logger
}

// New opens (creating if needed) the SQLite database at dir/name and returns
// a repository.Store backed by it.
func New(dir, name string, l log.Logger) (repository.Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := initTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database tables: %w", err)
	}

	return &implStore{db: db, l: l}, nil
}

func initTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS wardrobe_kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`)
	return err
}

// dsn returns a method-scoped context string for logging.
func (s *implStore) dsn(method string) string {
	return fmt.Sprintf("wardrobe/repository/sqlite.%s", method)
}

func (s *implStore) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM wardrobe_kv WHERE key = ?`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil // absent → no error
	}
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Get"), err)
		return "", false, repository.ErrFailedToGet
	}
	return value, true, nil
}

func (s *implStore) Set(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO wardrobe_kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339)); err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Set"), err)
		return repository.ErrFailedToSet
	}
	return nil
}

func (s *implStore) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM wardrobe_kv WHERE key = ?`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Delete"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

func (s *implStore) Close() error {
	return s.db.Close()
}
