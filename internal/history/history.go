// Package history persists run events in a sqlite database: the durable,
// queryable counterpart of the line-oriented text log.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Event kinds recorded per run.
const (
	KindRunStarted       = "run_started"
	KindCopied           = "copied"
	KindDuplicateFound   = "duplicate_found"
	KindDuplicateMoved   = "duplicate_moved"
	KindDuplicateDeleted = "duplicate_deleted"
	KindError            = "error"
)

// Event is one recorded run event.
type Event struct {
	ID         int64
	RunID      string
	Kind       string
	SourcePath string
	DestPath   string
	Category   string
	Detail     string
	CreatedAt  time.Time
}

// Store persists run events.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path and
// applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an already-open database. Used by tests.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new event.
func (s *Store) Add(e *Event) error {
	now := time.Now()
	result, err := s.db.Exec(`
		INSERT INTO events (run_id, kind, source_path, dest_path, category, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.Kind, e.SourcePath, e.DestPath, e.Category, e.Detail, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	e.ID = id
	e.CreatedAt = now
	return nil
}

// ListRun returns the events of one run, oldest first.
func (s *Store) ListRun(runID string) ([]*Event, error) {
	rows, err := s.db.Query(`
		SELECT id, run_id, kind, source_path, dest_path, category, detail, created_at
		FROM events WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(&e.ID, &e.RunID, &e.Kind, &e.SourcePath, &e.DestPath,
			&e.Category, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
