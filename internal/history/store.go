// File path: internal/history/store.go

// Package history persists audit reports so past runs can be listed from the
// API. The engine itself stays persistence-free; this store is the external
// collaborator that owns report lifecycle.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/engine"
)

// Store wraps a pooled sqlx.DB connection to the SQLite audit database.
type Store struct {
	db *sqlx.DB
}

// Record is one persisted audit row.
type Record struct {
	ID          int64     `db:"id" json:"id"`
	Project     string    `db:"project" json:"project"`
	Score       float64   `db:"score" json:"score"`
	Percent     int       `db:"percent" json:"percent"`
	Label       string    `db:"label" json:"label"`
	Issues      int       `db:"issues" json:"issues"`
	Synced      int       `db:"synced" json:"synced"`
	Summary     string    `db:"summary" json:"summary"`
	Suggestions string    `db:"suggestions" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// SuggestionList decodes the stored suggestion lines.
func (r Record) SuggestionList() []string {
	if strings.TrimSpace(r.Suggestions) == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(r.Suggestions), &out); err != nil {
		return nil
	}
	return out
}

// Open constructs a Store backed by the SQLite database at path, migrating
// the schema on first use.
func Open(path string) (*Store, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("history: database path required")
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return nil, fmt.Errorf("resolve history path: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", abs)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}
	store := &Store{db: db}
	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying database resources.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS reports (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    project     TEXT NOT NULL DEFAULT '',
    score       REAL NOT NULL,
    percent     INTEGER NOT NULL,
    label       TEXT NOT NULL,
    issues      INTEGER NOT NULL,
    synced      INTEGER NOT NULL,
    summary     TEXT NOT NULL DEFAULT '',
    suggestions TEXT NOT NULL DEFAULT '[]',
    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_reports_project ON reports(project, created_at);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate history schema: %w", err)
	}
	return nil
}

// Insert persists one report and returns its row id.
func (s *Store) Insert(ctx context.Context, project string, rep engine.Report) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("history store not initialised")
	}
	suggestions, err := json.Marshal(rep.Suggestions)
	if err != nil {
		suggestions = []byte("[]")
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO reports (project, score, percent, label, issues, synced, summary, suggestions, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(project), rep.Score, rep.Percent, string(rep.Label),
		rep.Stats.Issues, rep.Stats.Synced, rep.Summary, string(suggestions), time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert report: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("report id: %w", err)
	}
	return id, nil
}

// List returns the most recent records, newest first, optionally filtered by
// project.
func (s *Store) List(ctx context.Context, project string, limit int) ([]Record, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("history store not initialised")
	}
	if limit <= 0 {
		limit = 50
	}
	records := []Record{}
	project = strings.TrimSpace(project)
	if project == "" {
		if err := s.db.SelectContext(ctx, &records,
			`SELECT * FROM reports ORDER BY created_at DESC, id DESC LIMIT ?`, limit); err != nil {
			return nil, fmt.Errorf("select reports: %w", err)
		}
		return records, nil
	}
	if err := s.db.SelectContext(ctx, &records,
		`SELECT * FROM reports WHERE project = ? ORDER BY created_at DESC, id DESC LIMIT ?`, project, limit); err != nil {
		return nil, fmt.Errorf("select project reports: %w", err)
	}
	return records, nil
}
