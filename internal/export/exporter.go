package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nomarr/nomarr/internal/models"
)

// ToCSV exports playlists to a CSV file
func ToCSV(playlists []models.Playlist, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Name", "Description", "Query", "Labels", "Created", "Updated", "Last Used", "Usage Count"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range playlists {
		labels := strings.Join(p.Labels, ", ")

		created := p.CreatedAt.Format("2006-01-02 15:04:05")
		updated := p.UpdatedAt.Format("2006-01-02 15:04:05")
		lastUsed := ""
		if !p.LastUsed.IsZero() {
			lastUsed = p.LastUsed.Format("2006-01-02 15:04:05")
		}

		row := []string{
			p.Name,
			p.Description,
			p.Query,
			labels,
			created,
			updated,
			lastUsed,
			fmt.Sprintf("%d", p.UsageCount),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// ToJSON exports playlists to a pretty-printed JSON file
func ToJSON(playlists []models.Playlist, path string) error {
	data, err := json.MarshalIndent(playlists, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal playlists to JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}
