package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nomarr/nomarr/internal/models"
	"github.com/nomarr/nomarr/internal/ui/theme"
)

// PlaylistMode represents the dialog mode
type PlaylistMode int

const (
	PlaylistModeList PlaylistMode = iota
	PlaylistModeSave
)

// RunPlaylistMsg is sent when a playlist's query should be executed
type RunPlaylistMsg struct {
	Playlist models.Playlist
}

// SavePlaylistMsg is sent when the active query should be saved
type SavePlaylistMsg struct {
	Name        string
	Description string
	Labels      []string
}

// DeletePlaylistMsg is sent when a playlist should be deleted
type DeletePlaylistMsg struct {
	Playlist models.Playlist
}

// ExportPlaylistsMsg is sent when playlists should be exported
type ExportPlaylistsMsg struct {
	Format string // "csv" or "json"
}

// ClosePlaylistDialogMsg is sent when the dialog should close
type ClosePlaylistDialogMsg struct{}

// PlaylistDialog manages saved playlists
type PlaylistDialog struct {
	Width  int
	Height int
	Theme  theme.Theme

	// State
	mode      PlaylistMode
	playlists []models.Playlist
	selected  int
	offset    int

	// Save state
	nameInput        string
	descriptionInput string
	labelsInput      string
	currentField     int // 0=name, 1=description, 2=labels
}

// NewPlaylistDialog creates a new playlist dialog
func NewPlaylistDialog(th theme.Theme) *PlaylistDialog {
	return &PlaylistDialog{
		Width:  80,
		Height: 30,
		Theme:  th,
		mode:   PlaylistModeList,
	}
}

// SetPlaylists updates the playlist list
func (pd *PlaylistDialog) SetPlaylists(playlists []models.Playlist) {
	pd.playlists = playlists
	if pd.selected >= len(playlists) {
		pd.selected = 0
		pd.offset = 0
	}
}

// StartSave switches the dialog into save mode
func (pd *PlaylistDialog) StartSave() {
	pd.mode = PlaylistModeSave
	pd.nameInput = ""
	pd.descriptionInput = ""
	pd.labelsInput = ""
	pd.currentField = 0
}

// Update handles keyboard input
func (pd *PlaylistDialog) Update(msg tea.KeyMsg) (*PlaylistDialog, tea.Cmd) {
	switch pd.mode {
	case PlaylistModeList:
		return pd.handleListMode(msg)
	case PlaylistModeSave:
		return pd.handleSaveMode(msg)
	}
	return pd, nil
}

func (pd *PlaylistDialog) handleListMode(msg tea.KeyMsg) (*PlaylistDialog, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return pd, func() tea.Msg {
			return ClosePlaylistDialogMsg{}
		}
	case "up", "k":
		if pd.selected > 0 {
			pd.selected--
			if pd.selected < pd.offset {
				pd.offset = pd.selected
			}
		}
	case "down", "j":
		if pd.selected < len(pd.playlists)-1 {
			pd.selected++
			visibleHeight := pd.Height - 10
			if pd.selected >= pd.offset+visibleHeight {
				pd.offset = pd.selected - visibleHeight + 1
			}
		}
	case "enter":
		if pd.selected < len(pd.playlists) {
			pl := pd.playlists[pd.selected]
			return pd, func() tea.Msg {
				return RunPlaylistMsg{Playlist: pl}
			}
		}
	case "d", "x":
		if pd.selected < len(pd.playlists) {
			pl := pd.playlists[pd.selected]
			return pd, func() tea.Msg {
				return DeletePlaylistMsg{Playlist: pl}
			}
		}
	case "e":
		return pd, func() tea.Msg {
			return ExportPlaylistsMsg{Format: "csv"}
		}
	case "E":
		return pd, func() tea.Msg {
			return ExportPlaylistsMsg{Format: "json"}
		}
	}
	return pd, nil
}

func (pd *PlaylistDialog) handleSaveMode(msg tea.KeyMsg) (*PlaylistDialog, tea.Cmd) {
	switch msg.String() {
	case "esc":
		pd.mode = PlaylistModeList
	case "tab":
		pd.currentField = (pd.currentField + 1) % 3
	case "shift+tab":
		pd.currentField = (pd.currentField - 1 + 3) % 3
	case "backspace":
		pd.deleteChar()
	case "enter":
		if pd.currentField < 2 {
			pd.currentField++
			return pd, nil
		}
		name := strings.TrimSpace(pd.nameInput)
		description := strings.TrimSpace(pd.descriptionInput)
		labels := splitLabels(pd.labelsInput)
		pd.mode = PlaylistModeList
		return pd, func() tea.Msg {
			return SavePlaylistMsg{
				Name:        name,
				Description: description,
				Labels:      labels,
			}
		}
	default:
		if len(msg.String()) == 1 {
			pd.addChar(msg.String())
		}
	}
	return pd, nil
}

func (pd *PlaylistDialog) addChar(ch string) {
	switch pd.currentField {
	case 0:
		pd.nameInput += ch
	case 1:
		pd.descriptionInput += ch
	case 2:
		pd.labelsInput += ch
	}
}

func (pd *PlaylistDialog) deleteChar() {
	switch pd.currentField {
	case 0:
		if len(pd.nameInput) > 0 {
			pd.nameInput = pd.nameInput[:len(pd.nameInput)-1]
		}
	case 1:
		if len(pd.descriptionInput) > 0 {
			pd.descriptionInput = pd.descriptionInput[:len(pd.descriptionInput)-1]
		}
	case 2:
		if len(pd.labelsInput) > 0 {
			pd.labelsInput = pd.labelsInput[:len(pd.labelsInput)-1]
		}
	}
}

func splitLabels(input string) []string {
	var labels []string
	for _, part := range strings.Split(input, ",") {
		label := strings.TrimSpace(part)
		if label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// View renders the dialog
func (pd *PlaylistDialog) View() string {
	switch pd.mode {
	case PlaylistModeList:
		return pd.renderList()
	case PlaylistModeSave:
		return pd.renderSave()
	}
	return ""
}

func (pd *PlaylistDialog) renderList() string {
	var sections []string

	titleStyle := lipgloss.NewStyle().
		Foreground(pd.Theme.Foreground).
		Background(pd.Theme.Info).
		Padding(0, 1).
		Bold(true)
	sections = append(sections, titleStyle.Render("Saved Playlists"))

	instrStyle := lipgloss.NewStyle().
		Foreground(pd.Theme.Metadata).
		Padding(0, 1)
	sections = append(sections, instrStyle.Render("↑↓: Navigate  Enter: Run  d: Delete  e: Export CSV  E: Export JSON  Esc: Close"))

	if len(pd.playlists) == 0 {
		sections = append(sections, "\nNo playlists yet. Apply a rule group and press 's' to save one.")
	} else {
		sections = append(sections, "")
		visibleStart := pd.offset
		visibleEnd := pd.offset + pd.Height - 10
		if visibleEnd > len(pd.playlists) {
			visibleEnd = len(pd.playlists)
		}

		for i := visibleStart; i < visibleEnd; i++ {
			pl := pd.playlists[i]

			name := pl.Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}

			query := pl.Query
			if len(query) > 60 {
				query = query[:57] + "..."
			}

			line := fmt.Sprintf("%s\n  %s", name, query)
			if len(pl.Labels) > 0 {
				line += fmt.Sprintf(" [%s]", strings.Join(pl.Labels, ", "))
			}
			if pl.UsageCount > 0 {
				line += fmt.Sprintf(" (used %d times)", pl.UsageCount)
			}

			style := lipgloss.NewStyle().Padding(0, 1)
			if i == pd.selected {
				style = style.Background(pd.Theme.Selection).Foreground(pd.Theme.Foreground)
			}
			sections = append(sections, style.Render(line))
		}
	}

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pd.Theme.Border).
		Width(pd.Width).
		Height(pd.Height).
		Padding(1)

	return containerStyle.Render(strings.Join(sections, "\n"))
}

func (pd *PlaylistDialog) renderSave() string {
	var sections []string

	titleStyle := lipgloss.NewStyle().
		Foreground(pd.Theme.Foreground).
		Background(pd.Theme.Info).
		Padding(0, 1).
		Bold(true)
	sections = append(sections, titleStyle.Render("Save Playlist"))

	instrStyle := lipgloss.NewStyle().
		Foreground(pd.Theme.Metadata).
		Padding(0, 1)
	sections = append(sections, instrStyle.Render("Tab: Next field  Enter: Save  Esc: Cancel"))

	sections = append(sections, "")
	sections = append(sections, pd.renderField("Name:", pd.nameInput, pd.currentField == 0))
	sections = append(sections, pd.renderField("Description:", pd.descriptionInput, pd.currentField == 1))
	sections = append(sections, pd.renderField("Labels (comma separated):", pd.labelsInput, pd.currentField == 2))

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pd.Theme.Border).
		Width(pd.Width).
		Height(pd.Height).
		Padding(1)

	return containerStyle.Render(strings.Join(sections, "\n"))
}

func (pd *PlaylistDialog) renderField(label, value string, active bool) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if active {
		style = style.Background(pd.Theme.Selection).Foreground(pd.Theme.Foreground)
		value = value + "_"
	}
	return style.Render(fmt.Sprintf("%s %s", label, value))
}
