// Package store records finished rounds in a SQLite database
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Round is one finished round
type Round struct {
	ID        string
	SessionID string
	Score     int
	Level     int
	Length    int
	Reason    string
	EndedAt   time.Time
}

// SQLiteHistory keeps round history in SQLite
type SQLiteHistory struct {
	db *sql.DB
}

// NewSQLiteHistory opens the database at path, ":memory:" for a private one
func NewSQLiteHistory(path string) (*SQLiteHistory, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Single writer, and in-memory databases are per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	return &SQLiteHistory{db: db}, nil
}

// Close closes the database connection
func (h *SQLiteHistory) Close() error {
	return h.db.Close()
}

// Migrate creates the schema
func (h *SQLiteHistory) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			length INTEGER NOT NULL,
			reason TEXT NOT NULL,
			ended_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score DESC, ended_at)`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id)`,
	}
	for _, m := range migrations {
		if _, err := h.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// RecordRound inserts r, assigning an id when empty
func (h *SQLiteHistory) RecordRound(ctx context.Context, r *Round) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO rounds (id, session_id, score, level, length, reason, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.SessionID, r.Score, r.Level, r.Length, r.Reason, r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record round: %w", err)
	}
	return nil
}

// TopRounds returns up to limit rounds by descending score, earlier first on ties
func (h *SQLiteHistory) TopRounds(ctx context.Context, limit int) ([]Round, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, session_id, score, level, length, reason, ended_at
		FROM rounds ORDER BY score DESC, ended_at ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("top rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var endedAt int64
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Score, &r.Level, &r.Length, &r.Reason, &endedAt); err != nil {
			return nil, fmt.Errorf("top rounds: %w", err)
		}
		r.EndedAt = time.UnixMilli(endedAt).UTC()
		rounds = append(rounds, r)
	}
	return rounds, rows.Err()
}

// CountRounds returns how many rounds have been recorded
func (h *SQLiteHistory) CountRounds(ctx context.Context) (int, error) {
	var n int
	if err := h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rounds`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rounds: %w", err)
	}
	return n, nil
}
