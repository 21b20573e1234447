package playlists

import (
	"strings"
	"testing"
)

func TestAdd(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	p, err := m.Add("Workout", "high energy", "tag:bpm > 140", []string{"gym"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if p.ID == "" {
		t.Error("playlist should get an ID")
	}
	if p.Query != "tag:bpm > 140" {
		t.Errorf("unexpected query: %q", p.Query)
	}
	if len(m.GetAll()) != 1 {
		t.Errorf("expected 1 playlist, got %d", len(m.GetAll()))
	}
}

func TestAdd_RejectsEmptyNameOrQuery(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if _, err := m.Add("", "", "tag:bpm > 140", nil); err == nil {
		t.Error("empty name should be rejected")
	}
	if _, err := m.Add("Workout", "", "   ", nil); err == nil {
		t.Error("empty query should be rejected")
	}
}

func TestAdd_RejectsDuplicateNames(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if _, err := m.Add("Workout", "", "tag:bpm > 140", nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := m.Add("workout", "", "tag:bpm > 120", nil); err == nil {
		t.Error("duplicate name (case-insensitive) should be rejected")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if _, err := m.Add("Chill", "evening set", "tag:mood contains calm", []string{"evening"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// A fresh manager over the same directory sees the saved playlist
	reloaded, err := NewManager(dir)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	all := reloaded.GetAll()
	if len(all) != 1 {
		t.Fatalf("expected 1 playlist after reload, got %d", len(all))
	}
	if all[0].Name != "Chill" || all[0].Query != "tag:mood contains calm" {
		t.Errorf("reloaded playlist does not match: %+v", all[0])
	}
}

func TestUpdate(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	p, err := m.Add("Workout", "", "tag:bpm > 140", nil)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := m.Update(p.ID, "Workout+", "harder", "tag:bpm > 160", nil); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := m.Get(p.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Workout+" || got.Query != "tag:bpm > 160" {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	p, err := m.Add("Workout", "", "tag:bpm > 140", nil)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := m.Delete(p.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(m.GetAll()) != 0 {
		t.Error("playlist should be gone after delete")
	}
	if err := m.Delete(p.ID); err == nil {
		t.Error("deleting a missing playlist should fail")
	}
}

func TestSearch(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if _, err := m.Add("Workout", "gym set", "tag:bpm > 140", []string{"energy"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := m.Add("Chill", "", "tag:mood contains calm", nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if got := m.Search("gym"); len(got) != 1 || got[0].Name != "Workout" {
		t.Errorf("search by description failed: %+v", got)
	}
	if got := m.Search("calm"); len(got) != 1 || got[0].Name != "Chill" {
		t.Errorf("search by query text failed: %+v", got)
	}
	if got := m.Search("energy"); len(got) != 1 || got[0].Name != "Workout" {
		t.Errorf("search by label failed: %+v", got)
	}
	if got := m.Search(""); len(got) != 2 {
		t.Errorf("empty search should return everything, got %d", len(got))
	}
}

func TestRecordUsageAndMostUsed(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	a, _ := m.Add("A", "", "tag:genre = rock", nil)
	b, _ := m.Add("B", "", "tag:genre = jazz", nil)

	if err := m.RecordUsage(b.ID); err != nil {
		t.Fatalf("RecordUsage failed: %v", err)
	}
	if err := m.RecordUsage(b.ID); err != nil {
		t.Fatalf("RecordUsage failed: %v", err)
	}
	if err := m.RecordUsage(a.ID); err != nil {
		t.Fatalf("RecordUsage failed: %v", err)
	}

	most := m.GetMostUsed(1)
	if len(most) != 1 || most[0].Name != "B" {
		t.Errorf("expected B as most used, got %+v", most)
	}

	recent := m.GetRecent(1)
	if len(recent) != 1 || recent[0].Name != "A" {
		t.Errorf("expected A as most recent, got %+v", recent)
	}
}

func TestExportToCSV(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if _, err := m.ExportToCSV(); err == nil {
		t.Error("exporting with no playlists should fail")
	}

	if _, err := m.Add("Workout", "", "tag:bpm > 140", nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	path, err := m.ExportToCSV()
	if err != nil {
		t.Fatalf("ExportToCSV failed: %v", err)
	}
	if !strings.HasSuffix(path, "playlists.csv") {
		t.Errorf("unexpected export path: %s", path)
	}
}
