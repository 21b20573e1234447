package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nomarr/nomarr/internal/ui/theme"
)

// ErrorOverlay shows a dismissable error message on top of the main view
type ErrorOverlay struct {
	Width  int
	Height int
	Theme  theme.Theme

	title   string
	message string
	visible bool
}

// NewErrorOverlay creates a new error overlay
func NewErrorOverlay(th theme.Theme) *ErrorOverlay {
	return &ErrorOverlay{
		Width:  60,
		Height: 10,
		Theme:  th,
	}
}

// SetError shows the overlay with the given title and message
func (eo *ErrorOverlay) SetError(title, message string) {
	eo.title = title
	eo.message = message
	eo.visible = true
}

// Clear hides the overlay
func (eo *ErrorOverlay) Clear() {
	eo.visible = false
	eo.title = ""
	eo.message = ""
}

// Visible reports whether the overlay is currently shown
func (eo *ErrorOverlay) Visible() bool {
	return eo.visible
}

// View renders the overlay
func (eo *ErrorOverlay) View() string {
	if !eo.visible {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(eo.Theme.Error).
		Padding(0, 1)

	messageStyle := lipgloss.NewStyle().
		Foreground(eo.Theme.Foreground).
		Padding(0, 1)

	hintStyle := lipgloss.NewStyle().
		Faint(true).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render(eo.title))
	b.WriteString("\n\n")
	b.WriteString(messageStyle.Render(wrapText(eo.message, eo.Width-6)))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Press Esc or Enter to dismiss"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(eo.Theme.Error).
		Background(eo.Theme.Background).
		Padding(1).
		Width(eo.Width)

	return boxStyle.Render(b.String())
}

// wrapText wraps text at word boundaries to fit the given width
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	var current string

	for _, word := range strings.Fields(text) {
		if current == "" {
			current = word
			continue
		}
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	return strings.Join(lines, "\n")
}
