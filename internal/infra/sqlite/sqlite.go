// Package sqlite provides the durable local key-value storage backing the
// planner. The entire PlannerState is serialized to JSON and held in a
// single row; there is no partial or incremental persistence.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure-Go driver, registered as "sqlite"

	"github.com/agencyflow/agencyflow/internal/domain"
)

// StateKey is the single key the planner snapshot lives under.
const StateKey = "agency_flow_state"

// Migrations returns the schema migration statements.
// Each string is a single SQL statement (SQLite executes one at a time).
func Migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
	}
}

// Store is the sqlite-backed implementation of domain.StateStore.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens (or creates) the
// database file, and applies migrations.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	path := filepath.Join(dataDir, "agencyflow.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	for _, stmt := range Migrations() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply migration: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Load returns the last persisted planner state. A missing row or a blob
// that does not decode is reported as domain.ErrNoSnapshot, so callers fall
// back to the seed state, never crash on foreign data.
func (s *Store) Load(ctx context.Context) (*domain.PlannerState, error) {
	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM snapshots WHERE key = ?`, StateKey,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}

	var state domain.PlannerState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoSnapshot, err)
	}
	return &state, nil
}

// Save serializes the full state and upserts it under StateKey.
func (s *Store) Save(ctx context.Context, state *domain.PlannerState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = datetime('now')
	`, StateKey, string(blob))
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
