package history

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestAddAndGetRecent(t *testing.T) {
	store := newTestStore(t)

	err := store.Add(Entry{
		PlaylistName: "Workout",
		Query:        "tag:bpm > 140",
		Duration:     42 * time.Millisecond,
		MatchCount:   17,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	entries, err := store.GetRecent(10)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Query != "tag:bpm > 140" {
		t.Errorf("unexpected query: %q", e.Query)
	}
	if e.MatchCount != 17 {
		t.Errorf("unexpected match count: %d", e.MatchCount)
	}
	if e.Duration != 42*time.Millisecond {
		t.Errorf("unexpected duration: %v", e.Duration)
	}
	if !e.Success {
		t.Error("entry should be marked successful")
	}
}

func TestGetRecent_Ordering(t *testing.T) {
	store := newTestStore(t)

	for _, q := range []string{"tag:genre = rock", "tag:genre = jazz", "tag:genre = pop"} {
		if err := store.Add(Entry{Query: q, Success: true}); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	entries, err := store.GetRecent(2)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Query != "tag:genre = pop" {
		t.Errorf("newest entry should come first, got %q", entries[0].Query)
	}
}

func TestSearch(t *testing.T) {
	store := newTestStore(t)

	if err := store.Add(Entry{Query: "tag:bpm > 140", Success: true}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Add(Entry{Query: "tag:mood contains calm", Success: true}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	entries, err := store.Search("mood", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Query != "tag:mood contains calm" {
		t.Errorf("unexpected search result: %+v", entries)
	}
}

func TestFailedGeneration(t *testing.T) {
	store := newTestStore(t)

	err := store.Add(Entry{
		Query:        "tag:bpm >",
		Success:      false,
		ErrorMessage: "expected a value after operator",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	entries, err := store.GetRecent(1)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if entries[0].Success {
		t.Error("entry should be marked failed")
	}
	if entries[0].ErrorMessage != "expected a value after operator" {
		t.Errorf("unexpected error message: %q", entries[0].ErrorMessage)
	}
}

func TestPrune(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		if err := store.Add(Entry{Query: "tag:genre = rock", Success: true}); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	if err := store.Prune(2); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}

	entries, err := store.GetRecent(100)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries after prune, got %d", len(entries))
	}
}
