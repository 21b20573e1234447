package models

import "time"

// Playlist is a saved smart playlist: a name plus the compiled tag query
// that regenerates its track list on demand. The rule tree itself is not
// persisted; only the compiled query is.
type Playlist struct {
	ID          string    `yaml:"id" json:"id"`
	Name        string    `yaml:"name" json:"name"`
	Description string    `yaml:"description" json:"description"`
	Query       string    `yaml:"query" json:"query"`
	Labels      []string  `yaml:"labels" json:"labels"`
	CreatedAt   time.Time `yaml:"created_at" json:"created_at"`
	UpdatedAt   time.Time `yaml:"updated_at" json:"updated_at"`
	LastUsed    time.Time `yaml:"last_used" json:"last_used"`
	UsageCount  int       `yaml:"usage_count" json:"usage_count"`
}
