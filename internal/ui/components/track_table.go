package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nomarr/nomarr/internal/models"
)

// TrackTable displays track listings with virtual scrolling
type TrackTable struct {
	Columns []string
	Rows    [][]string
	Width   int
	Height  int
	Style   lipgloss.Style

	// Virtual scrolling state
	TopRow      int
	VisibleRows int
	SelectedRow int
	TotalRows   int

	// Column widths (calculated)
	ColumnWidths []int
}

// NewTrackTable creates a new track table
func NewTrackTable() *TrackTable {
	return &TrackTable{
		Columns:      []string{},
		Rows:         [][]string{},
		ColumnWidths: []int{},
	}
}

// SetTracks fills the table from a track list
func (tt *TrackTable) SetTracks(tracks []models.Track) {
	columns := []string{"Title", "Artist", "Album", "Year", "Genre"}
	rows := make([][]string, 0, len(tracks))
	for _, track := range tracks {
		rows = append(rows, []string{
			track.Title,
			track.Artist,
			track.Album,
			track.Tag("year"),
			track.Tag("genre"),
		})
	}
	tt.SetData(columns, rows, len(tracks))
}

// SetData sets the table data
func (tt *TrackTable) SetData(columns []string, rows [][]string, totalRows int) {
	tt.Columns = columns
	tt.Rows = rows
	tt.TotalRows = totalRows
	if tt.SelectedRow >= len(rows) {
		tt.SelectedRow = 0
		tt.TopRow = 0
	}
	tt.calculateColumnWidths()
}

// SelectedTrackIndex returns the index of the selected row
func (tt *TrackTable) SelectedTrackIndex() int {
	return tt.SelectedRow
}

// calculateColumnWidths calculates optimal column widths
func (tt *TrackTable) calculateColumnWidths() {
	if len(tt.Columns) == 0 {
		return
	}

	tt.ColumnWidths = make([]int, len(tt.Columns))

	for i, col := range tt.Columns {
		tt.ColumnWidths[i] = len(col)
	}

	for _, row := range tt.Rows {
		for i, cell := range row {
			if i < len(tt.ColumnWidths) {
				if len(cell) > tt.ColumnWidths[i] {
					tt.ColumnWidths[i] = len(cell)
				}
			}
		}
	}

	maxWidth := 40
	for i := range tt.ColumnWidths {
		if tt.ColumnWidths[i] > maxWidth {
			tt.ColumnWidths[i] = maxWidth
		}
		if tt.ColumnWidths[i] < 6 {
			tt.ColumnWidths[i] = 6
		}
	}
}

// View renders the table
func (tt *TrackTable) View() string {
	if len(tt.Columns) == 0 || tt.TotalRows == 0 {
		return tt.Style.Render("No tracks")
	}

	var b strings.Builder

	b.WriteString(tt.renderHeader())
	b.WriteString("\n")
	b.WriteString(tt.renderSeparator())
	b.WriteString("\n")

	// Header + separator + status
	tt.VisibleRows = tt.Height - 3

	endRow := tt.TopRow + tt.VisibleRows
	if endRow > len(tt.Rows) {
		endRow = len(tt.Rows)
	}

	for i := tt.TopRow; i < endRow; i++ {
		b.WriteString(tt.renderRow(tt.Rows[i], i == tt.SelectedRow))
		if i < endRow-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(tt.renderStatus())

	return tt.Style.Width(tt.Width).Height(tt.Height).Render(b.String())
}

func (tt *TrackTable) renderHeader() string {
	var parts []string
	for i, col := range tt.Columns {
		parts = append(parts, tt.pad(col, tt.ColumnWidths[i]))
	}
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("105")).
		Background(lipgloss.Color("236"))
	return headerStyle.Render(" " + strings.Join(parts, " │ ") + " ")
}

func (tt *TrackTable) renderSeparator() string {
	var parts []string
	for _, width := range tt.ColumnWidths {
		parts = append(parts, strings.Repeat("─", width))
	}
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))
	return separatorStyle.Render("─" + strings.Join(parts, "─┼─") + "─")
}

func (tt *TrackTable) renderRow(row []string, selected bool) string {
	var parts []string
	for i, cell := range row {
		if i >= len(tt.ColumnWidths) {
			break
		}
		parts = append(parts, tt.pad(cell, tt.ColumnWidths[i]))
	}

	line := " " + strings.Join(parts, " │ ") + " "

	if selected {
		return lipgloss.NewStyle().
			Background(lipgloss.Color("25")).
			Foreground(lipgloss.Color("15")).
			Bold(true).
			Render(line)
	}
	return line
}

func (tt *TrackTable) renderStatus() string {
	endRow := tt.TopRow + len(tt.Rows)
	if endRow > tt.TotalRows {
		endRow = tt.TotalRows
	}

	showing := fmt.Sprintf(" ♪ %d-%d of %d tracks", tt.TopRow+1, endRow, tt.TotalRows)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render(showing)
}

func (tt *TrackTable) pad(s string, width int) string {
	if len(s) > width {
		if width > 3 {
			return s[:width-3] + "..."
		}
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// MoveSelection moves the selection up or down
func (tt *TrackTable) MoveSelection(delta int) {
	tt.SelectedRow += delta

	if tt.SelectedRow < 0 {
		tt.SelectedRow = 0
	}
	if tt.SelectedRow >= len(tt.Rows) {
		tt.SelectedRow = len(tt.Rows) - 1
	}
	if tt.SelectedRow < 0 {
		tt.SelectedRow = 0
	}

	if tt.SelectedRow < tt.TopRow {
		tt.TopRow = tt.SelectedRow
	}
	if tt.VisibleRows > 0 && tt.SelectedRow >= tt.TopRow+tt.VisibleRows {
		tt.TopRow = tt.SelectedRow - tt.VisibleRows + 1
	}
}

// PageUp moves the selection a page up
func (tt *TrackTable) PageUp() {
	tt.SelectedRow -= tt.VisibleRows
	if tt.SelectedRow < 0 {
		tt.SelectedRow = 0
	}
	tt.TopRow = tt.SelectedRow
}

// PageDown moves the selection a page down
func (tt *TrackTable) PageDown() {
	tt.SelectedRow += tt.VisibleRows
	if tt.SelectedRow >= len(tt.Rows) {
		tt.SelectedRow = len(tt.Rows) - 1
	}
	if tt.SelectedRow < 0 {
		tt.SelectedRow = 0
	}
	tt.TopRow = tt.SelectedRow
	if tt.TopRow+tt.VisibleRows > len(tt.Rows) {
		tt.TopRow = len(tt.Rows) - tt.VisibleRows
		if tt.TopRow < 0 {
			tt.TopRow = 0
		}
	}
}
