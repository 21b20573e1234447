package components

// TreeView renders the library hierarchy (artist → album → track) with
// keyboard navigation, expand/collapse and viewport scrolling.

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nomarr/nomarr/internal/models"
	"github.com/nomarr/nomarr/internal/ui/theme"
)

// TreeView represents a visual tree component for the music library
type TreeView struct {
	Root         *models.TreeNode // Root node of the tree
	CursorIndex  int              // Current cursor position in the flattened list
	Width        int              // Display width
	Height       int              // Display height
	Theme        theme.Theme      // Color theme
	ScrollOffset int              // Vertical scroll offset for viewport
}

// TreeNodeSelectedMsg is sent when a node is selected (Enter key)
type TreeNodeSelectedMsg struct {
	Node *models.TreeNode
}

// TreeNodeExpandedMsg is sent when a node is expanded/collapsed
type TreeNodeExpandedMsg struct {
	Node     *models.TreeNode
	Expanded bool
}

// NewTreeView creates a new tree view component
func NewTreeView(root *models.TreeNode, theme theme.Theme) *TreeView {
	return &TreeView{
		Root:   root,
		Width:  40,
		Height: 20,
		Theme:  theme,
	}
}

// View renders the tree as a string
func (tv *TreeView) View() string {
	if tv.Root == nil {
		return tv.emptyState()
	}

	visibleNodes := tv.Root.Flatten()
	if len(visibleNodes) == 0 {
		return tv.emptyState()
	}

	if tv.CursorIndex < 0 {
		tv.CursorIndex = 0
	}
	if tv.CursorIndex >= len(visibleNodes) {
		tv.CursorIndex = len(visibleNodes) - 1
	}

	// Subtract 2 for borders, 2 for title/help
	viewHeight := tv.Height - 4
	if viewHeight < 1 {
		viewHeight = 1
	}

	tv.adjustScrollOffset(len(visibleNodes), viewHeight)

	var lines []string

	startIdx := tv.ScrollOffset
	endIdx := tv.ScrollOffset + viewHeight
	if endIdx > len(visibleNodes) {
		endIdx = len(visibleNodes)
	}

	for i := startIdx; i < endIdx; i++ {
		node := visibleNodes[i]
		lines = append(lines, tv.renderNode(node, i == tv.CursorIndex))
	}

	for len(lines) < viewHeight {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")

	if tv.ScrollOffset > 0 || endIdx < len(visibleNodes) {
		content = tv.addScrollIndicators(content, startIdx, endIdx, len(visibleNodes))
	}

	return content
}

// Update handles keyboard input for tree navigation
func (tv *TreeView) Update(msg tea.KeyMsg) (*TreeView, tea.Cmd) {
	if tv.Root == nil {
		return tv, nil
	}

	visibleNodes := tv.Root.Flatten()
	if len(visibleNodes) == 0 {
		return tv, nil
	}

	var cmd tea.Cmd

	switch msg.String() {
	case "up", "k":
		if tv.CursorIndex > 0 {
			tv.CursorIndex--
		}

	case "down", "j":
		if tv.CursorIndex < len(visibleNodes)-1 {
			tv.CursorIndex++
		}

	case "g":
		// Jump to top
		tv.CursorIndex = 0
		tv.ScrollOffset = 0

	case "G":
		// Jump to bottom
		tv.CursorIndex = len(visibleNodes) - 1

	case "right", "l", " ":
		currentNode := visibleNodes[tv.CursorIndex]
		if currentNode != nil {
			wasExpanded := currentNode.Expanded
			currentNode.Toggle()

			if currentNode.Expanded != wasExpanded {
				cmd = func() tea.Msg {
					return TreeNodeExpandedMsg{
						Node:     currentNode,
						Expanded: currentNode.Expanded,
					}
				}
			}
		}

	case "left", "h":
		currentNode := visibleNodes[tv.CursorIndex]
		if currentNode != nil {
			if currentNode.Expanded {
				currentNode.Toggle()
				cmd = func() tea.Msg {
					return TreeNodeExpandedMsg{
						Node:     currentNode,
						Expanded: false,
					}
				}
			} else if currentNode.Parent != nil && currentNode.Parent.Type != models.TreeNodeTypeRoot {
				// Move to parent if collapsed
				parentIndex := tv.findNodeIndex(visibleNodes, currentNode.Parent)
				if parentIndex >= 0 {
					tv.CursorIndex = parentIndex
				}
			}
		}

	case "enter":
		currentNode := visibleNodes[tv.CursorIndex]
		if currentNode != nil && currentNode.Selectable {
			cmd = func() tea.Msg {
				return TreeNodeSelectedMsg{Node: currentNode}
			}
		}
	}

	return tv, cmd
}

// renderNode renders a single tree node with appropriate styling
func (tv *TreeView) renderNode(node *models.TreeNode, selected bool) string {
	if node == nil {
		return ""
	}

	// Root is depth 0 and not rendered, so shift everything up one level
	depth := node.GetDepth() - 1
	if depth < 0 {
		depth = 0
	}
	indent := strings.Repeat("  ", depth)

	icon := tv.getNodeIcon(node)
	label := tv.buildNodeLabel(node)

	content := fmt.Sprintf("%s%s %s", indent, icon, label)

	maxWidth := tv.Width - 2
	if len(content) > maxWidth && maxWidth > 1 {
		content = content[:maxWidth-1] + "…"
	}

	var style lipgloss.Style
	if selected {
		style = lipgloss.NewStyle().
			Background(tv.Theme.Selection).
			Foreground(tv.Theme.Foreground).
			Bold(true).
			Width(maxWidth)
	} else {
		style = lipgloss.NewStyle().
			Foreground(tv.Theme.Foreground).
			Width(maxWidth)
	}

	return style.Render(content)
}

// getNodeIcon returns the appropriate icon for a node
func (tv *TreeView) getNodeIcon(node *models.TreeNode) string {
	if node.Type == models.TreeNodeTypeTrack {
		return "♪"
	}
	if node.Expanded {
		return "▾"
	}
	return "▸"
}

// buildNodeLabel builds the display label for a node, including metadata
func (tv *TreeView) buildNodeLabel(node *models.TreeNode) string {
	label := node.Label

	dimStyle := lipgloss.NewStyle().Foreground(tv.Theme.Metadata)

	switch node.Type {
	case models.TreeNodeTypeArtist:
		// Show album count
		label += " " + dimStyle.Render(fmt.Sprintf("(%d)", len(node.Children)))

	case models.TreeNodeTypeAlbum:
		count := len(node.Children)
		if count == 0 {
			label += " " + dimStyle.Render("(empty)")
		} else {
			label += " " + dimStyle.Render(fmt.Sprintf("(%d tracks)", count))
		}

	case models.TreeNodeTypeTrack:
		if node.Track != nil {
			if year := node.Track.Tag("year"); year != "" {
				label += " " + dimStyle.Render("("+year+")")
			}
		}
	}

	return label
}

// adjustScrollOffset adjusts the scroll offset to keep the cursor visible
func (tv *TreeView) adjustScrollOffset(totalNodes, viewHeight int) {
	if tv.CursorIndex < tv.ScrollOffset {
		tv.ScrollOffset = tv.CursorIndex
	}
	if tv.CursorIndex >= tv.ScrollOffset+viewHeight {
		tv.ScrollOffset = tv.CursorIndex - viewHeight + 1
	}

	if tv.ScrollOffset < 0 {
		tv.ScrollOffset = 0
	}
	maxScroll := totalNodes - viewHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if tv.ScrollOffset > maxScroll {
		tv.ScrollOffset = maxScroll
	}
}

// addScrollIndicators adds visual indicators for scrollable content
func (tv *TreeView) addScrollIndicators(content string, startIdx, endIdx, total int) string {
	lines := strings.Split(content, "\n")

	if startIdx > 0 && len(lines) > 0 {
		indicator := lipgloss.NewStyle().Foreground(tv.Theme.Info).Render("↑")
		lines[0] = indicator + " " + lines[0]
	}

	if endIdx < total && len(lines) > 0 {
		lastIdx := len(lines) - 1
		indicator := lipgloss.NewStyle().Foreground(tv.Theme.Info).Render("↓")
		lines[lastIdx] = indicator + " " + lines[lastIdx]
	}

	return strings.Join(lines, "\n")
}

// emptyState returns the empty state view
func (tv *TreeView) emptyState() string {
	style := lipgloss.NewStyle().
		Foreground(tv.Theme.Metadata).
		Italic(true).
		Width(tv.Width - 2).
		Align(lipgloss.Center)

	return style.Render("Library is empty")
}

// findNodeIndex finds the index of a node in the flattened list
func (tv *TreeView) findNodeIndex(nodes []*models.TreeNode, target *models.TreeNode) int {
	for i, node := range nodes {
		if node == target {
			return i
		}
	}
	return -1
}

// GetCurrentNode returns the currently selected node
func (tv *TreeView) GetCurrentNode() *models.TreeNode {
	if tv.Root == nil {
		return nil
	}

	visibleNodes := tv.Root.Flatten()
	if tv.CursorIndex < 0 || tv.CursorIndex >= len(visibleNodes) {
		return nil
	}

	return visibleNodes[tv.CursorIndex]
}

// SetCursorToNode sets the cursor to a specific node (by ID)
func (tv *TreeView) SetCursorToNode(nodeID string) bool {
	if tv.Root == nil {
		return false
	}

	visibleNodes := tv.Root.Flatten()
	for i, node := range visibleNodes {
		if node.ID == nodeID {
			tv.CursorIndex = i
			return true
		}
	}

	return false
}
