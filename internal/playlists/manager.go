// Package playlists persists saved smart playlists: a name plus the compiled
// tag query that regenerates the track list.
package playlists

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/nomarr/nomarr/internal/export"
	"github.com/nomarr/nomarr/internal/models"
)

// Manager manages saved smart playlists
type Manager struct {
	path      string
	playlists []models.Playlist
}

// NewManager creates a playlist manager storing its data under configDir
func NewManager(configDir string) (*Manager, error) {
	path := filepath.Join(configDir, "playlists.yaml")

	m := &Manager{
		path:      path,
		playlists: []models.Playlist{},
	}

	if _, err := os.Stat(path); err == nil {
		if err := m.Load(); err != nil {
			return nil, fmt.Errorf("failed to load playlists: %w", err)
		}
	}

	return m, nil
}

// Load loads playlists from the YAML file
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("failed to read playlists file: %w", err)
	}

	if err := yaml.Unmarshal(data, &m.playlists); err != nil {
		return fmt.Errorf("failed to parse playlists: %w", err)
	}

	return nil
}

// Save saves playlists to the YAML file
func (m *Manager) Save() error {
	data, err := yaml.Marshal(m.playlists)
	if err != nil {
		return fmt.Errorf("failed to marshal playlists: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write playlists file: %w", err)
	}

	return nil
}

// Add saves a new playlist. The name must be unique (case-insensitive) and
// both name and query must be non-empty.
func (m *Manager) Add(name, description, compiledQuery string, labels []string) (*models.Playlist, error) {
	name = strings.TrimSpace(name)
	compiledQuery = strings.TrimSpace(compiledQuery)

	if name == "" {
		return nil, fmt.Errorf("playlist name cannot be empty")
	}
	if compiledQuery == "" {
		return nil, fmt.Errorf("playlist query cannot be empty")
	}

	for _, p := range m.playlists {
		if strings.EqualFold(p.Name, name) {
			return nil, fmt.Errorf("a playlist named '%s' already exists (names are case-insensitive)", name)
		}
	}

	playlist := models.Playlist{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Query:       compiledQuery,
		Labels:      labels,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	m.playlists = append(m.playlists, playlist)

	if err := m.Save(); err != nil {
		return nil, fmt.Errorf("failed to save playlist: %w", err)
	}

	return &playlist, nil
}

// Update updates an existing playlist
func (m *Manager) Update(id, name, description, compiledQuery string, labels []string) error {
	name = strings.TrimSpace(name)
	compiledQuery = strings.TrimSpace(compiledQuery)

	if name == "" {
		return fmt.Errorf("playlist name cannot be empty")
	}
	if compiledQuery == "" {
		return fmt.Errorf("playlist query cannot be empty")
	}

	for _, p := range m.playlists {
		if p.ID != id && strings.EqualFold(p.Name, name) {
			return fmt.Errorf("a playlist named '%s' already exists (names are case-insensitive)", name)
		}
	}

	for i, p := range m.playlists {
		if p.ID == id {
			m.playlists[i].Name = name
			m.playlists[i].Description = strings.TrimSpace(description)
			m.playlists[i].Query = compiledQuery
			m.playlists[i].Labels = labels
			m.playlists[i].UpdatedAt = time.Now()
			if err := m.Save(); err != nil {
				return fmt.Errorf("failed to save playlist: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("playlist with ID '%s' was not found", id)
}

// Delete deletes a playlist by ID
func (m *Manager) Delete(id string) error {
	for i, p := range m.playlists {
		if p.ID == id {
			m.playlists = append(m.playlists[:i], m.playlists[i+1:]...)
			if err := m.Save(); err != nil {
				return fmt.Errorf("failed to save playlists after deletion: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("playlist with ID '%s' was not found", id)
}

// Get returns a playlist by ID
func (m *Manager) Get(id string) (*models.Playlist, error) {
	for _, p := range m.playlists {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("playlist with ID '%s' was not found", id)
}

// GetAll returns all playlists
func (m *Manager) GetAll() []models.Playlist {
	return m.playlists
}

// Search searches playlists by name, description, query text, or label
func (m *Manager) Search(text string) []models.Playlist {
	if text == "" {
		return m.playlists
	}

	text = strings.ToLower(text)
	var results []models.Playlist

	for _, p := range m.playlists {
		if strings.Contains(strings.ToLower(p.Name), text) ||
			strings.Contains(strings.ToLower(p.Description), text) ||
			strings.Contains(strings.ToLower(p.Query), text) {
			results = append(results, p)
			continue
		}
		for _, label := range p.Labels {
			if strings.Contains(strings.ToLower(label), text) {
				results = append(results, p)
				break
			}
		}
	}

	return results
}

// RecordUsage updates usage statistics after a playlist is regenerated
func (m *Manager) RecordUsage(id string) error {
	for i, p := range m.playlists {
		if p.ID == id {
			m.playlists[i].UsageCount++
			m.playlists[i].LastUsed = time.Now()
			if err := m.Save(); err != nil {
				return fmt.Errorf("failed to save usage statistics: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("playlist with ID '%s' was not found", id)
}

// GetMostUsed returns the most frequently regenerated playlists
func (m *Manager) GetMostUsed(limit int) []models.Playlist {
	sorted := make([]models.Playlist, len(m.playlists))
	copy(sorted, m.playlists)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UsageCount > sorted[j].UsageCount
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	return sorted
}

// GetRecent returns the most recently used playlists
func (m *Manager) GetRecent(limit int) []models.Playlist {
	sorted := make([]models.Playlist, len(m.playlists))
	copy(sorted, m.playlists)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LastUsed.After(sorted[j].LastUsed)
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	return sorted
}

// ExportToCSV exports all playlists to a CSV file next to the YAML store,
// or to customPath when given
func (m *Manager) ExportToCSV(customPath ...string) (string, error) {
	if len(m.playlists) == 0 {
		return "", fmt.Errorf("no playlists to export")
	}

	path := filepath.Join(filepath.Dir(m.path), "playlists.csv")
	if len(customPath) > 0 && customPath[0] != "" {
		path = customPath[0]
	}

	if err := export.ToCSV(m.playlists, path); err != nil {
		return "", fmt.Errorf("failed to export playlists to CSV: %w", err)
	}

	return path, nil
}

// ExportToJSON exports all playlists to a JSON file
func (m *Manager) ExportToJSON(customPath ...string) (string, error) {
	if len(m.playlists) == 0 {
		return "", fmt.Errorf("no playlists to export")
	}

	path := filepath.Join(filepath.Dir(m.path), "playlists.json")
	if len(customPath) > 0 && customPath[0] != "" {
		path = customPath[0]
	}

	if err := export.ToJSON(m.playlists, path); err != nil {
		return "", fmt.Errorf("failed to export playlists to JSON: %w", err)
	}

	return path, nil
}
