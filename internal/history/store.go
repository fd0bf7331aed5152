// Package history records generation-run diagnostics in a local SQLite
// database. Rows carry timing, sizes and outcome only; prompt and response
// content never reach the database.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lazyresident/lazyresident/types"
)

// Run is one generation attempt.
type Run struct {
	ID            int64
	SessionID     string
	Section       string
	Provider      string
	Model         string
	DurationMS    int64
	PromptBytes   int
	ResponseBytes int
	OK            bool
	ErrorKind     string
	CreatedAt     time.Time
}

// Store persists runs in SQLite.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open creates the database file and schema if they don't exist.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		section TEXT NOT NULL,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		prompt_bytes INTEGER NOT NULL DEFAULT 0,
		response_bytes INTEGER NOT NULL DEFAULT 0,
		ok INTEGER NOT NULL DEFAULT 0,
		error_kind TEXT DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session_id);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one run.
func (s *Store) Record(ctx context.Context, run Run) error {
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (session_id, section, provider, model, duration_ms, prompt_bytes, response_bytes, ok, error_kind, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.SessionID, run.Section, run.Provider, run.Model, run.DurationMS,
		run.PromptBytes, run.ResponseBytes, run.OK, run.ErrorKind, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, section, provider, model, duration_ms, prompt_bytes, response_bytes, ok, error_kind, created_at
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.ID, &r.SessionID, &r.Section, &r.Provider, &r.Model, &r.DurationMS,
			&r.PromptBytes, &r.ResponseBytes, &r.OK, &r.ErrorKind, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// ErrorKind classifies an error for the error_kind column.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	var pErr *types.ProviderError
	var vErr *types.ValidationError
	var cErr *types.PreconditionError
	switch {
	case errors.Is(err, types.ErrNotConfigured):
		return "not_configured"
	case errors.As(err, &vErr):
		return "validation"
	case errors.As(err, &pErr):
		return "provider"
	case errors.As(err, &cErr):
		return "precondition"
	default:
		return "other"
	}
}
