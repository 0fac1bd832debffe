// Package store persists finished sessions in a local SQLite database
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/lixenwraith/geometry-fighter/engine"
)

const schema = `CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	score INTEGER NOT NULL,
	lives INTEGER NOT NULL,
	started_at DATETIME NOT NULL,
	ended_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_score ON sessions(score DESC);`

// Scores is the session history
type Scores struct {
	db *sql.DB
}

// Open opens or creates the database at path
func Open(ctx context.Context, path string) (*Scores, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// Single writer, avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Scores{db: db}, nil
}

// Record stores a finished session, recording the same id again replaces it
func (s *Scores) Record(ctx context.Context, r engine.SessionResult) error {
	const query = `INSERT OR REPLACE INTO sessions (id, score, lives, started_at, ended_at) VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, r.ID, r.Score, r.Lives, r.StartedAt.UTC(), r.EndedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to record session %s: %w", r.ID, err)
	}
	return nil
}

// Best returns the highest recorded score, 0 when empty
func (s *Scores) Best(ctx context.Context) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(score) FROM sessions`).Scan(&best); err != nil {
		return 0, fmt.Errorf("failed to query best score: %w", err)
	}
	return int(best.Int64), nil
}

// Top returns up to n sessions by descending score, earlier sessions first on ties
func (s *Scores) Top(ctx context.Context, n int) ([]engine.SessionResult, error) {
	const query = `SELECT id, score, lives, started_at, ended_at FROM sessions ORDER BY score DESC, ended_at ASC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top sessions: %w", err)
	}
	defer rows.Close()

	var out []engine.SessionResult
	for rows.Next() {
		var r engine.SessionResult
		var started, ended time.Time
		if err := rows.Scan(&r.ID, &r.Score, &r.Lives, &started, &ended); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		r.StartedAt, r.EndedAt = started, ended
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the database
func (s *Scores) Close() error {
	return s.db.Close()
}
