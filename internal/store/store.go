// Package store persists batch analysis runs to a local SQLite database so
// earlier runs stay browsable. Persistence is best-effort infrastructure:
// when the store cannot be opened the batch still completes and writes its
// CSV; only history is lost.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"storylint/internal/analysis"
	"storylint/internal/batch"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Run is one recorded batch analysis.
type Run struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Rows      int    `json:"rows"`
	None      int    `json:"none"`
	Medium    int    `json:"medium"`
	High      int    `json:"high"`
	Critical  int    `json:"critical"`
	CreatedAt string `json:"created_at"`
}

// Result is one persisted row of a run. Payload carries the full analysis
// row as JSON; the scalar columns exist for querying without unmarshaling.
type Result struct {
	RunID          string `json:"run_id"`
	RowIndex       int    `json:"row_index"`
	Story          string `json:"story"`
	MergedSeverity string `json:"merged_severity"`
	Payload        string `json:"payload"`
}

// Config holds store configuration.
type Config struct {
	DataDir string
}

// DefaultConfig stores history under ~/.storylint.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{DataDir: filepath.Join(home, ".storylint")}
}

// Store is the run-history engine backed by SQLite.
type Store struct {
	db *sql.DB
}

// New creates the data directory if needed, opens SQLite with WAL mode, and
// runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "history.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id         TEXT PRIMARY KEY,
			source     TEXT NOT NULL,
			rows       INTEGER NOT NULL,
			none       INTEGER NOT NULL DEFAULT 0,
			medium     INTEGER NOT NULL DEFAULT 0,
			high       INTEGER NOT NULL DEFAULT 0,
			critical   INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		);

		CREATE TABLE IF NOT EXISTS results (
			run_id          TEXT    NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			row_index       INTEGER NOT NULL,
			story           TEXT    NOT NULL,
			merged_severity TEXT    NOT NULL,
			payload         TEXT    NOT NULL,
			PRIMARY KEY (run_id, row_index)
		);

		CREATE INDEX IF NOT EXISTS idx_results_severity
			ON results(merged_severity);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun records a completed batch with all of its rows in one transaction
// and returns the new run's ID.
func (s *Store) SaveRun(source string, rows []analysis.Row) (string, error) {
	summary := batch.Summarize(rows)
	id := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, source, rows, none, medium, high, critical)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, source, summary.Rows, summary.None, summary.Medium, summary.High, summary.Critical,
	)
	if err != nil {
		return "", fmt.Errorf("store: insert run: %w", err)
	}

	for i, row := range rows {
		payload, err := json.Marshal(row)
		if err != nil {
			return "", fmt.Errorf("store: marshal row %d: %w", i, err)
		}
		_, err = tx.Exec(
			`INSERT INTO results (run_id, row_index, story, merged_severity, payload)
			 VALUES (?, ?, ?, ?, ?)`,
			id, i, row.Record.Story, row.MergedSeverity.String(), string(payload),
		)
		if err != nil {
			return "", fmt.Errorf("store: insert result %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("store: commit: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, source, rows, none, medium, high, critical, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Source, &r.Rows, &r.None, &r.Medium, &r.High, &r.Critical, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LoadResults returns a run's rows in their original input order.
func (s *Store) LoadResults(runID string) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT run_id, row_index, story, merged_severity, payload
		 FROM results WHERE run_id = ? ORDER BY row_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: load results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.RunID, &r.RowIndex, &r.Story, &r.MergedSeverity, &r.Payload); err != nil {
			return nil, fmt.Errorf("store: scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
