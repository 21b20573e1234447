package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nomarr/nomarr/internal/models"
)

func testPlaylists() []models.Playlist {
	return []models.Playlist{
		{
			ID:          "p-1",
			Name:        "Workout",
			Description: "high energy, with \"quotes\" and commas",
			Query:       "tag:bpm > 140 AND tag:mood contains happy",
			Labels:      []string{"gym", "energy"},
			CreatedAt:   time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC),
			LastUsed:    time.Date(2026, 1, 3, 12, 0, 0, 0, time.UTC),
			UsageCount:  5,
		},
		{
			ID:        "p-2",
			Name:      "Chill",
			Query:     "tag:mood contains calm",
			CreatedAt: time.Date(2026, 1, 1, 13, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 1, 2, 13, 0, 0, 0, time.UTC),
		},
	}
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlists.csv")

	if err := ToCSV(testPlaylists(), path); err != nil {
		t.Fatalf("ToCSV failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open CSV: %v", err)
	}
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read CSV: %v", err)
	}

	if len(records) != 3 { // header + 2 rows
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0][0] != "Name" || records[0][2] != "Query" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "Workout" {
		t.Errorf("expected first row 'Workout', got %q", records[1][0])
	}
	if records[1][3] != "gym, energy" {
		t.Errorf("expected labels 'gym, energy', got %q", records[1][3])
	}
	if records[2][6] != "" {
		t.Errorf("never-used playlist should have empty Last Used, got %q", records[2][6])
	}
}

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlists.json")

	if err := ToJSON(testPlaylists(), path); err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read JSON: %v", err)
	}

	var parsed []models.Playlist
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}

	if len(parsed) != 2 {
		t.Fatalf("expected 2 playlists, got %d", len(parsed))
	}
	if parsed[0].Query != "tag:bpm > 140 AND tag:mood contains happy" {
		t.Errorf("query not preserved: %q", parsed[0].Query)
	}

	if !strings.Contains(string(data), "\n") {
		t.Error("JSON should be pretty-printed")
	}
}

func TestToCSV_EmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	if err := ToCSV(nil, path); err != nil {
		t.Fatalf("ToCSV with empty list failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open CSV: %v", err)
	}
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read CSV: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected only the header, got %d records", len(records))
	}
}
