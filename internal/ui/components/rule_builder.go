package components

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nomarr/nomarr/internal/models"
	"github.com/nomarr/nomarr/internal/rules"
	"github.com/nomarr/nomarr/internal/ui/theme"
)

// ApplyQueryMsg is sent when a rule group should be applied to the library
type ApplyQueryMsg struct {
	Group models.RuleGroup
	Query string
}

// CloseRuleBuilderMsg is sent when the rule builder should close
type CloseRuleBuilderMsg struct{}

// RuleBuilder provides an interactive UI for building tag rule groups
type RuleBuilder struct {
	Width  int
	Height int
	Theme  theme.Theme

	// State
	root            models.RuleGroup
	groupPath       []int  // Indexes into nested Groups, empty means root
	currentIndex    int    // Index in the current group's rules list
	editMode        string // "", "tag", "operator", "value"
	tagInput        string
	operatorIndex   int
	valueInput      string
	validationError string
	statusMessage   string

	// UI elements
	selectedTag  models.TagInfo
	availableOps []models.RuleOperator
	previewQuery string
}

// NewRuleBuilder creates a new rule builder
func NewRuleBuilder(th theme.Theme) *RuleBuilder {
	return &RuleBuilder{
		Width:    80,
		Height:   30,
		Theme:    th,
		root:     models.NewRuleGroup(),
		editMode: "",
	}
}

// SetGroup replaces the rule group being edited
func (rb *RuleBuilder) SetGroup(group models.RuleGroup) {
	rb.root = group
	rb.groupPath = nil
	rb.currentIndex = 0
	rb.updatePreview()
}

// Group returns the rule group being edited
func (rb *RuleBuilder) Group() models.RuleGroup {
	return rb.root
}

// currentGroup resolves the group the cursor is in
func (rb *RuleBuilder) currentGroup() *models.RuleGroup {
	group := &rb.root
	for _, idx := range rb.groupPath {
		if idx < 0 || idx >= len(group.Groups) {
			return group
		}
		group = &group.Groups[idx]
	}
	return group
}

// Update handles keyboard input
func (rb *RuleBuilder) Update(msg tea.KeyMsg) (*RuleBuilder, tea.Cmd) {
	switch rb.editMode {
	case "":
		return rb.handleNavigationMode(msg)
	case "tag":
		return rb.handleTagMode(msg)
	case "operator":
		return rb.handleOperatorMode(msg)
	case "value":
		return rb.handleValueMode(msg)
	}
	return rb, nil
}

// handleNavigationMode handles keys in navigation mode
func (rb *RuleBuilder) handleNavigationMode(msg tea.KeyMsg) (*RuleBuilder, tea.Cmd) {
	group := rb.currentGroup()
	rb.statusMessage = ""

	switch msg.String() {
	case "up", "k":
		if rb.currentIndex > 0 {
			rb.currentIndex--
		}
	case "down", "j":
		if rb.currentIndex < len(group.Rules) {
			rb.currentIndex++
		}
	case "a", "n":
		// Add new rule to the current group
		rb.editMode = "tag"
		rb.tagInput = ""
	case "d", "x":
		// Delete current rule
		if rb.currentIndex < len(group.Rules) {
			group.Rules = append(
				group.Rules[:rb.currentIndex],
				group.Rules[rb.currentIndex+1:]...,
			)
			if rb.currentIndex > 0 && rb.currentIndex >= len(group.Rules) {
				rb.currentIndex--
			}
			rb.updatePreview()
		}
	case "g":
		// Add a nested group and move the cursor into it. The new group
		// sits one level below the current one, so its depth from the
		// root is the path length plus two.
		if len(rb.groupPath)+2 > rules.MaxDepth {
			rb.validationError = fmt.Sprintf(
				"nesting beyond %d levels is not allowed", rules.MaxDepth)
			return rb, nil
		}
		rb.validationError = ""
		group.Groups = append(group.Groups, models.NewRuleGroup())
		rb.groupPath = append(rb.groupPath, len(group.Groups)-1)
		rb.currentIndex = 0
		rb.updatePreview()
	case "u", "backspace":
		// Move up to the parent group
		if len(rb.groupPath) > 0 {
			rb.groupPath = rb.groupPath[:len(rb.groupPath)-1]
			rb.currentIndex = 0
		}
	case "tab":
		// Cycle through child groups of the current group
		if len(group.Groups) > 0 {
			rb.groupPath = append(rb.groupPath, 0)
			rb.currentIndex = 0
		}
	case "L", "o":
		// Toggle the current group's logic
		if group.Logic == models.LogicAll {
			group.Logic = models.LogicAny
		} else {
			group.Logic = models.LogicAll
		}
		rb.updatePreview()
	case "c", "y":
		// Copy the compiled query to the clipboard
		query := rules.Compile(rb.root)
		if query == "" {
			rb.validationError = "Nothing to copy yet"
			return rb, nil
		}
		if err := clipboard.WriteAll(query); err != nil {
			rb.validationError = fmt.Sprintf("Clipboard unavailable: %s", err)
			return rb, nil
		}
		rb.validationError = ""
		rb.statusMessage = "Query copied to clipboard"
	case "enter":
		// Apply rules
		if err := rules.ValidateDepth(rb.root); err != nil {
			rb.validationError = err.Error()
			return rb, nil
		}
		query := rules.Compile(rb.root)
		if query == "" {
			rb.validationError = "Add at least one rule before applying"
			return rb, nil
		}
		rb.validationError = ""
		applied := rb.root
		return rb, func() tea.Msg {
			return ApplyQueryMsg{Group: applied, Query: query}
		}
	case "esc":
		return rb, func() tea.Msg {
			return CloseRuleBuilderMsg{}
		}
	}
	return rb, nil
}

// handleTagMode handles tag selection
func (rb *RuleBuilder) handleTagMode(msg tea.KeyMsg) (*RuleBuilder, tea.Cmd) {
	switch msg.String() {
	case "esc":
		rb.editMode = ""
		rb.tagInput = ""
		rb.validationError = ""
	case "enter":
		name := strings.TrimSpace(rb.tagInput)
		if name == "" {
			rb.validationError = "Type a tag name first"
			return rb, nil
		}
		info, known := models.LookupTag(name)
		if !known {
			// Custom tags are allowed and compared as strings
			info = models.TagInfo{Key: strings.ToLower(name), Kind: models.TagKindString}
		}
		rb.selectedTag = info
		rb.availableOps = rules.OperatorsForKind(rb.selectedTag.Kind)
		rb.editMode = "operator"
		rb.operatorIndex = 0
		rb.validationError = ""
	case "backspace":
		if len(rb.tagInput) > 0 {
			rb.tagInput = rb.tagInput[:len(rb.tagInput)-1]
		}
	default:
		if len(msg.String()) == 1 {
			rb.tagInput += msg.String()
		}
	}
	return rb, nil
}

// handleOperatorMode handles operator selection
func (rb *RuleBuilder) handleOperatorMode(msg tea.KeyMsg) (*RuleBuilder, tea.Cmd) {
	switch msg.String() {
	case "esc":
		rb.editMode = "tag"
	case "up", "k":
		if rb.operatorIndex > 0 {
			rb.operatorIndex--
		}
	case "down", "j":
		if rb.operatorIndex < len(rb.availableOps)-1 {
			rb.operatorIndex++
		}
	case "enter":
		rb.editMode = "value"
		rb.valueInput = ""
	}
	return rb, nil
}

// handleValueMode handles value input
func (rb *RuleBuilder) handleValueMode(msg tea.KeyMsg) (*RuleBuilder, tea.Cmd) {
	switch msg.String() {
	case "esc":
		rb.editMode = "operator"
		rb.valueInput = ""
	case "enter":
		value := strings.TrimSpace(rb.valueInput)
		if value == "" {
			rb.validationError = "Type a value first"
			return rb, nil
		}
		group := rb.currentGroup()
		group.Rules = append(group.Rules, models.Rule{
			TagKey:   rb.selectedTag.Key,
			Operator: rb.availableOps[rb.operatorIndex],
			Value:    value,
		})
		rb.editMode = ""
		rb.valueInput = ""
		rb.validationError = ""
		rb.updatePreview()
	case "backspace":
		if len(rb.valueInput) > 0 {
			rb.valueInput = rb.valueInput[:len(rb.valueInput)-1]
		}
	default:
		if len(msg.String()) == 1 {
			rb.valueInput += msg.String()
		}
	}
	return rb, nil
}

// updatePreview updates the compiled query preview
func (rb *RuleBuilder) updatePreview() {
	rb.previewQuery = rules.Compile(rb.root)
}

// View renders the rule builder
func (rb *RuleBuilder) View() string {
	var sections []string

	titleStyle := lipgloss.NewStyle().
		Foreground(rb.Theme.Foreground).
		Background(rb.Theme.Info).
		Padding(0, 1).
		Bold(true)
	sections = append(sections, titleStyle.Render("Rule Builder"))

	instructionStyle := lipgloss.NewStyle().
		Foreground(rb.Theme.Metadata).
		Padding(0, 1)

	var instructions string
	switch rb.editMode {
	case "tag":
		instructions = "Type tag name, Enter to confirm, Esc to cancel"
	case "operator":
		instructions = "↑↓ Select operator, Enter to confirm, Esc to go back"
	case "value":
		instructions = "Type value, Enter to confirm, Esc to go back"
	default:
		instructions = "a=Add rule g=Group u=Up o=ALL/ANY d=Delete c=Copy Enter=Apply Esc=Cancel"
	}
	sections = append(sections, instructionStyle.Render(instructions))

	if rb.validationError != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(rb.Theme.Error).
			Padding(0, 1).
			Bold(true)
		sections = append(sections, errorStyle.Render("Error: "+rb.validationError))
	}
	if rb.statusMessage != "" {
		statusStyle := lipgloss.NewStyle().
			Foreground(rb.Theme.Success).
			Padding(0, 1)
		sections = append(sections, statusStyle.Render(rb.statusMessage))
	}

	// Current location in the tree
	location := "Group: root"
	if len(rb.groupPath) > 0 {
		parts := make([]string, len(rb.groupPath))
		for i, idx := range rb.groupPath {
			parts[i] = fmt.Sprintf("%d", idx+1)
		}
		location = "Group: root > " + strings.Join(parts, " > ")
	}
	group := rb.currentGroup()
	sections = append(sections, instructionStyle.Render(
		fmt.Sprintf("%s (match %s)", location, group.Logic)))

	// Rules in the current group
	if len(group.Rules) > 0 {
		sections = append(sections, "\nRules:")
		for i, rule := range group.Rules {
			ruleStr := fmt.Sprintf("%s %s %s", rule.TagKey, rule.Operator, rule.Value)

			style := lipgloss.NewStyle().Padding(0, 1)
			if i == rb.currentIndex && rb.editMode == "" {
				style = style.Background(rb.Theme.Selection).Foreground(rb.Theme.Foreground)
			}
			sections = append(sections, style.Render(fmt.Sprintf(" %d. %s", i+1, ruleStr)))
		}
	}
	if len(group.Groups) > 0 {
		sections = append(sections, instructionStyle.Render(
			fmt.Sprintf("%d nested group(s), Tab to enter", len(group.Groups))))
	}

	// Edit area
	if rb.editMode != "" {
		sections = append(sections, "\n")
		switch rb.editMode {
		case "tag":
			sections = append(sections, fmt.Sprintf("Tag: %s_", rb.tagInput))
		case "operator":
			sections = append(sections, fmt.Sprintf("Tag: %s", rb.selectedTag.Key))
			sections = append(sections, "Select operator:")
			for i, op := range rb.availableOps {
				style := lipgloss.NewStyle().Padding(0, 1)
				if i == rb.operatorIndex {
					style = style.Background(rb.Theme.Selection).Foreground(rb.Theme.Foreground)
				}
				sections = append(sections, style.Render(fmt.Sprintf("  %s", op)))
			}
		case "value":
			sections = append(sections, fmt.Sprintf("Tag: %s %s", rb.selectedTag.Key, rb.availableOps[rb.operatorIndex]))
			sections = append(sections, fmt.Sprintf("Value: %s_", rb.valueInput))
		}
	}

	// Query preview
	if rb.previewQuery != "" {
		sections = append(sections, "\nQuery Preview:")
		previewStyle := lipgloss.NewStyle().
			Foreground(rb.Theme.Metadata).
			Background(rb.Theme.Background).
			Padding(0, 1).
			Italic(true)
		sections = append(sections, previewStyle.Render(rb.previewQuery))
	}

	content := strings.Join(sections, "\n")

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(rb.Theme.Border).
		Background(rb.Theme.Background).
		Foreground(rb.Theme.Foreground).
		Width(rb.Width).
		Height(rb.Height).
		Padding(1)

	return containerStyle.Render(content)
}
