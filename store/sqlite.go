package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const pagesSchema = `
CREATE TABLE IF NOT EXISTS pages (
	path TEXT PRIMARY KEY,
	content TEXT NOT NULL,
	prompt_history TEXT NOT NULL DEFAULT '[]',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLite persists pages in a single sqlite database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens the database at dbPath, creating the file and its
// parent directory if needed.
func OpenSQLite(dbPath string) (*SQLite, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open page store: %w", err)
	}
	// One connection: concurrent write transactions on separate
	// connections surface as SQLITE_BUSY instead of queueing.
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("configure page store: %w", err)
		}
	}
	if _, err := db.Exec(pagesSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize page store schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, path string) (*Page, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT path, content, prompt_history, created_at, updated_at FROM pages WHERE path = ?`, path)

	var p Page
	var history, created, updated string
	if err := row.Scan(&p.Path, &p.Content, &history, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("read page %s: %w", path, err)
	}
	if err := json.Unmarshal([]byte(history), &p.PromptHistory); err != nil {
		return nil, fmt.Errorf("decode prompt history for %s: %w", path, err)
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
	return &p, nil
}

// Put upserts the page. The history read and the write run in one
// transaction so a concurrent Get never observes a half-applied update.
func (s *SQLite) Put(ctx context.Context, path, content, prompt string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write page %s: %w", path, err)
	}
	defer func() { _ = tx.Rollback() }()

	var history []string
	var raw string
	err = tx.QueryRowContext(ctx, `SELECT prompt_history FROM pages WHERE path = ?`, path).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// first write for this path
	case err != nil:
		return fmt.Errorf("read prompt history for %s: %w", path, err)
	default:
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			return fmt.Errorf("decode prompt history for %s: %w", path, err)
		}
	}
	history = append(history, prompt)
	encoded, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode prompt history for %s: %w", path, err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO pages (path, content, prompt_history, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			content = excluded.content,
			prompt_history = excluded.prompt_history,
			updated_at = excluded.updated_at`,
		path, content, string(encoded), now, now)
	if err != nil {
		return fmt.Errorf("write page %s: %w", path, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write page %s: %w", path, err)
	}
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }
