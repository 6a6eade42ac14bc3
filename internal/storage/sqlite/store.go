// Package sqlite persists aggregation runs so past bundles can be
// listed and compared. The scoring pipeline itself never touches the
// store; it is a collaborator wired in by the CLI and the server.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sundial/wellness/internal/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id             TEXT PRIMARY KEY,
	created_at     TIMESTAMP NOT NULL,
	wellness_score REAL NOT NULL,
	bundle         TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
`

// Store is a sqlite-backed history of wellness bundles. Each bundle is
// stored as a JSON document; id, created_at, and the wellness score are
// projected into columns for listing without deserialization.
type Store struct {
	db *sql.DB
}

// RunSummary is one row of the run listing.
type RunSummary struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	WellnessScore float64   `json:"wellness_score"`
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{db: db}, nil
}

// SaveBundle records one completed run.
func (s *Store) SaveBundle(ctx context.Context, bundle *types.WellnessBundle) error {
	if bundle.RunID == "" {
		return fmt.Errorf("bundle has no run ID")
	}

	doc, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("marshaling bundle: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, wellness_score, bundle) VALUES (?, ?, ?, ?)`,
		bundle.RunID, bundle.GeneratedAt.UTC(), bundle.WellnessScore, string(doc))
	if err != nil {
		return fmt.Errorf("inserting run %s: %w", bundle.RunID, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means
// a default page of 20.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, wellness_score FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.WellnessScore); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return out, nil
}

// GetRun fetches one stored bundle by run ID.
func (s *Store) GetRun(ctx context.Context, id string) (*types.WellnessBundle, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT bundle FROM runs WHERE id = ?`, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching run %s: %w", id, err)
	}

	var bundle types.WellnessBundle
	if err := json.Unmarshal([]byte(doc), &bundle); err != nil {
		return nil, fmt.Errorf("unmarshaling run %s: %w", id, err)
	}
	return &bundle, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
