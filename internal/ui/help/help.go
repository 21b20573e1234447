package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key         string
	Description string
}

// GetGlobalKeys returns global key bindings
func GetGlobalKeys() []KeyBinding {
	return []KeyBinding{
		{"?", "Toggle help"},
		{"q, Ctrl+C", "Quit application"},
		{"Esc/Enter", "Dismiss error"},
		{"Tab", "Switch panel focus"},
		{"r, F5", "Rescan library"},
		{"f", "Open rule builder"},
		{"p", "Browse saved playlists"},
		{"Ctrl+R", "Clear active query"},
	}
}

// GetNavigationKeys returns navigation key bindings
func GetNavigationKeys() []KeyBinding {
	return []KeyBinding{
		{"↑/k", "Move up"},
		{"↓/j", "Move down"},
		{"←/h", "Collapse or move left"},
		{"→/l", "Expand or move right"},
		{"Enter", "Select item"},
		{"g/G", "Jump to top/bottom"},
	}
}

// GetRuleBuilderKeys returns rule builder key bindings
func GetRuleBuilderKeys() []KeyBinding {
	return []KeyBinding{
		{"a, n", "Add rule"},
		{"g", "Add nested group"},
		{"u", "Go to parent group"},
		{"Tab", "Enter nested group"},
		{"o", "Toggle ALL/ANY logic"},
		{"d, x", "Delete rule"},
		{"c, y", "Copy compiled query"},
		{"Enter", "Apply rules"},
		{"Esc", "Close builder"},
	}
}

// GetPlaylistKeys returns playlist key bindings
func GetPlaylistKeys() []KeyBinding {
	return []KeyBinding{
		{"s", "Save active query as playlist"},
		{"Enter", "Run selected playlist"},
		{"d", "Delete selected playlist"},
		{"e", "Export playlists to CSV"},
		{"E", "Export playlists to JSON"},
	}
}

// Render creates the help view
func Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62")).
		Padding(1, 0)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75")).
		Padding(0, 0, 0, 2)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(20)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	renderSection := func(b *strings.Builder, title string, keys []KeyBinding) {
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n")
		for _, kb := range keys {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(kb.Key))
			b.WriteString(descStyle.Render(kb.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("nomarr - Keyboard Shortcuts"))
	b.WriteString("\n\n")

	renderSection(&b, "Global", GetGlobalKeys())
	renderSection(&b, "Navigation", GetNavigationKeys())
	renderSection(&b, "Rule Builder", GetRuleBuilderKeys())
	renderSection(&b, "Playlists", GetPlaylistKeys())

	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press '?' or Esc to close help"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(width - 4).
		Height(height - 4)

	return boxStyle.Render(b.String())
}
