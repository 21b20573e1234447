// Package history records playlist generations in a local SQLite database.
package history

import (
	"database/sql"
	_ "embed"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Entry represents a single playlist generation
type Entry struct {
	ID           int
	PlaylistName string
	Query        string
	ExecutedAt   time.Time
	Duration     time.Duration
	MatchCount   int64
	Success      bool
	ErrorMessage string
}

// Store manages generation history persistence
type Store struct {
	db *sql.DB
}

// NewStore creates a new history store
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Add records a playlist generation
func (s *Store) Add(entry Entry) error {
	_, err := s.db.Exec(`
		INSERT INTO generation_history
		(playlist_name, query, duration_ms, match_count, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.PlaylistName,
		entry.Query,
		entry.Duration.Milliseconds(),
		entry.MatchCount,
		entry.Success,
		entry.ErrorMessage,
	)
	return err
}

// GetRecent retrieves the most recent generation entries
func (s *Store) GetRecent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, playlist_name, query, executed_at,
		       duration_ms, match_count, success, error_message
		FROM generation_history
		ORDER BY executed_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanEntries(rows)
}

// Search searches generation history by query text
func (s *Store) Search(text string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, playlist_name, query, executed_at,
		       duration_ms, match_count, success, error_message
		FROM generation_history
		WHERE query LIKE ?
		ORDER BY executed_at DESC, id DESC
		LIMIT ?`, "%"+text+"%", limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanEntries(rows)
}

// Prune deletes everything but the newest max entries
func (s *Store) Prune(max int) error {
	_, err := s.db.Exec(`
		DELETE FROM generation_history
		WHERE id NOT IN (
			SELECT id FROM generation_history
			ORDER BY executed_at DESC, id DESC
			LIMIT ?
		)`, max)
	return err
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var durationMs int64

		err := rows.Scan(
			&e.ID,
			&e.PlaylistName,
			&e.Query,
			&e.ExecutedAt,
			&durationMs,
			&e.MatchCount,
			&e.Success,
			&e.ErrorMessage,
		)
		if err != nil {
			return nil, err
		}

		e.Duration = time.Duration(durationMs) * time.Millisecond

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
