package tagdb

import (
	"context"
	"fmt"

	"github.com/nomarr/nomarr/internal/models"
	"github.com/nomarr/nomarr/internal/query"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS tracks (
	id     BIGSERIAL PRIMARY KEY,
	path   TEXT NOT NULL UNIQUE,
	title  TEXT NOT NULL DEFAULT '',
	artist TEXT NOT NULL DEFAULT '',
	album  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS track_tags (
	track_id BIGINT NOT NULL REFERENCES tracks(id) ON DELETE CASCADE,
	key      TEXT NOT NULL,
	value    TEXT NOT NULL,
	PRIMARY KEY (track_id, key)
);

CREATE INDEX IF NOT EXISTS track_tags_key_value_idx ON track_tags (key, value);
`

// Store persists tracks and their tags and answers compiled tag queries
type Store struct {
	pool *Pool
}

// NewStore creates a store on an open pool and ensures the schema exists
func NewStore(ctx context.Context, pool *Pool) (*Store, error) {
	if _, err := pool.pool.Exec(ctx, schemaSQL); err != nil {
		return nil, fmt.Errorf("failed to create tag database schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

// UpsertTrack inserts or refreshes a track and replaces its tag set
func (s *Store) UpsertTrack(ctx context.Context, track models.Track) error {
	var id int64
	err := s.pool.pool.QueryRow(ctx, `
		INSERT INTO tracks (path, title, artist, album)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (path) DO UPDATE
		SET title = EXCLUDED.title, artist = EXCLUDED.artist, album = EXCLUDED.album
		RETURNING id`,
		track.Path, track.Title, track.Artist, track.Album,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to upsert track %s: %w", track.Path, err)
	}

	if _, err := s.pool.pool.Exec(ctx, `DELETE FROM track_tags WHERE track_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear tags for track %s: %w", track.Path, err)
	}

	for key, value := range track.Tags {
		if key == "" || value == "" {
			continue
		}
		_, err := s.pool.pool.Exec(ctx, `
			INSERT INTO track_tags (track_id, key, value) VALUES ($1, $2, $3)`,
			id, key, value,
		)
		if err != nil {
			return fmt.Errorf("failed to save tag %s for track %s: %w", key, track.Path, err)
		}
	}

	return nil
}

// SetTag writes a single tag value for a track by path, e.g. after an
// analyzer computed a mood or bpm value
func (s *Store) SetTag(ctx context.Context, path, key, value string) error {
	tag, err := s.pool.pool.Exec(ctx, `
		INSERT INTO track_tags (track_id, key, value)
		SELECT id, $2, $3 FROM tracks WHERE path = $1
		ON CONFLICT (track_id, key) DO UPDATE SET value = EXCLUDED.value`,
		path, key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to set tag %s on %s: %w", key, path, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no track with path %s", path)
	}
	return nil
}

// Search parses a compiled tag query, translates it to SQL, and returns the
// matching tracks with their full tag sets. Callers are responsible for
// validating rule tree depth before compiling; the parser enforces the same
// nesting limit on its side of the contract.
func (s *Store) Search(ctx context.Context, compiled string) ([]models.Track, error) {
	node, err := query.Parse(compiled)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query: %w", err)
	}

	clause, args, err := Translate(node)
	if err != nil {
		return nil, fmt.Errorf("failed to translate query: %w", err)
	}

	sql := fmt.Sprintf(`
		SELECT id, path, title, artist, album FROM tracks
		WHERE %s
		ORDER BY artist, album, title`, clause)

	rows, err := s.pool.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	defer rows.Close()

	var tracks []models.Track
	for rows.Next() {
		var t models.Track
		if err := rows.Scan(&t.ID, &t.Path, &t.Title, &t.Artist, &t.Album); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tracks {
		tags, err := s.loadTags(ctx, tracks[i].ID)
		if err != nil {
			return nil, err
		}
		tracks[i].Tags = tags
	}

	return tracks, nil
}

func (s *Store) loadTags(ctx context.Context, trackID int64) (map[string]string, error) {
	rows, err := s.pool.pool.Query(ctx,
		`SELECT key, value FROM track_tags WHERE track_id = $1`, trackID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags[key] = value
	}
	return tags, rows.Err()
}

// Count returns the number of tracks in the store
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.pool.pool.QueryRow(ctx, `SELECT count(*) FROM tracks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count tracks: %w", err)
	}
	return n, nil
}
