// Package library scans music directories into tracks and watches them for
// changes.
package library

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/nomarr/nomarr/internal/models"
)

// DefaultExtensions are the audio file extensions scanned when the config
// does not override them
var DefaultExtensions = []string{".mp3", ".flac", ".ogg", ".m4a", ".wav", ".opus"}

// Scanner discovers audio files under the configured library roots
type Scanner struct {
	extensions map[string]bool
}

// NewScanner creates a scanner for the given extensions (DefaultExtensions
// when empty)
func NewScanner(extensions []string) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = true
	}
	return &Scanner{extensions: set}
}

// Scan walks every root concurrently and returns the discovered tracks
// sorted by path. Unreadable directories are skipped rather than failing the
// whole scan; the context cancels an in-flight walk.
func (s *Scanner) Scan(ctx context.Context, roots []string) ([]models.Track, error) {
	var (
		mu     sync.Mutex
		tracks []models.Track
		wg     sync.WaitGroup
	)

	for _, root := range roots {
		wg.Add(1)
		go func(root string) {
			defer wg.Done()
			found := s.scanRoot(ctx, root)
			mu.Lock()
			tracks = append(tracks, found...)
			mu.Unlock()
		}(root)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(tracks, func(i, j int) bool {
		return tracks[i].Path < tracks[j].Path
	})

	return tracks, nil
}

func (s *Scanner) scanRoot(ctx context.Context, root string) []models.Track {
	var tracks []models.Track

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !s.extensions[ext] {
			return nil
		}

		tracks = append(tracks, buildTrack(root, path, ext))
		return nil
	})

	return tracks
}

// buildTrack derives track metadata from the path layout. The conventional
// layout is root/Artist/Album/Title.ext; shallower files fall back to
// whatever segments exist.
func buildTrack(root, path, ext string) models.Track {
	track := models.Track{
		Path:  path,
		Title: strings.TrimSuffix(filepath.Base(path), ext),
	}

	if rel, err := filepath.Rel(root, path); err == nil {
		parts := strings.Split(filepath.ToSlash(rel), "/")
		switch {
		case len(parts) >= 3:
			track.Artist = parts[0]
			track.Album = parts[1]
		case len(parts) == 2:
			track.Artist = parts[0]
		}
	}

	// Track numbers like "03 - Title" are stripped from the display title
	if title, num := splitTrackNumber(track.Title); title != "" {
		track.Title = title
		if num != "" {
			track.Tags = map[string]string{"tracknumber": num}
		}
	}

	if track.Tags == nil {
		track.Tags = make(map[string]string)
	}
	track.Tags["title"] = track.Title
	track.Tags["format"] = strings.TrimPrefix(ext, ".")
	if track.Artist != "" {
		track.Tags["artist"] = track.Artist
	}
	if track.Album != "" {
		track.Tags["album"] = track.Album
	}

	return track
}

// splitTrackNumber splits a leading track number off a title, handling
// "03 - Title", "03. Title", and "03 Title" forms
func splitTrackNumber(title string) (string, string) {
	trimmed := strings.TrimSpace(title)

	i := 0
	for i < len(trimmed) && trimmed[i] >= '0' && trimmed[i] <= '9' {
		i++
	}
	if i == 0 || i > 3 {
		return title, ""
	}

	num := trimmed[:i]
	rest := strings.TrimSpace(trimmed[i:])
	rest = strings.TrimPrefix(rest, "-")
	rest = strings.TrimPrefix(rest, ".")
	rest = strings.TrimSpace(rest)

	if rest == "" {
		return title, ""
	}
	if _, err := strconv.Atoi(num); err != nil {
		return title, ""
	}
	return rest, num
}
