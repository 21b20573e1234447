package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nomarr/nomarr/internal/rules"
	"github.com/nomarr/nomarr/internal/ui/theme"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeString(rb *RuleBuilder, s string) *RuleBuilder {
	for _, r := range s {
		rb, _ = rb.Update(keyRune(r))
	}
	return rb
}

// addRule walks the tag → operator → value flow, picking the first
// offered operator
func addRule(rb *RuleBuilder, tag, value string) *RuleBuilder {
	rb, _ = rb.Update(keyRune('a'))
	rb = typeString(rb, tag)
	rb, _ = rb.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rb, _ = rb.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rb = typeString(rb, value)
	rb, _ = rb.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return rb
}

func TestRuleBuilder_AddRuleAndApply(t *testing.T) {
	rb := NewRuleBuilder(theme.DefaultTheme())

	// First string operator offered is "contains"
	rb = addRule(rb, "artist", "Beatles")

	if rb.previewQuery != "tag:artist contains Beatles" {
		t.Errorf("unexpected preview: %q", rb.previewQuery)
	}

	rb, cmd := rb.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("applying should produce a command")
	}

	msg, ok := cmd().(ApplyQueryMsg)
	if !ok {
		t.Fatalf("expected ApplyQueryMsg, got %T", cmd())
	}
	if msg.Query != "tag:artist contains Beatles" {
		t.Errorf("unexpected applied query: %q", msg.Query)
	}
	if len(msg.Group.Rules) != 1 {
		t.Errorf("expected 1 rule in the applied group, got %d", len(msg.Group.Rules))
	}
}

func TestRuleBuilder_ApplyWithoutRulesFails(t *testing.T) {
	rb := NewRuleBuilder(theme.DefaultTheme())

	rb, cmd := rb.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("applying an empty group should not produce a command")
	}
	if rb.validationError == "" {
		t.Error("applying an empty group should set a validation error")
	}
}

func TestRuleBuilder_NestedGroup(t *testing.T) {
	rb := NewRuleBuilder(theme.DefaultTheme())

	rb = addRule(rb, "year", "2000")

	// Create a nested group and add a rule inside it
	rb, _ = rb.Update(keyRune('g'))
	if len(rb.groupPath) != 1 {
		t.Fatalf("cursor should be inside the new group, path %v", rb.groupPath)
	}
	rb = addRule(rb, "genre", "rock")

	query := rules.Compile(rb.Group())
	if query != "tag:year = 2000 AND (tag:genre contains rock)" {
		t.Errorf("unexpected compiled query: %q", query)
	}

	// Moving up returns to the root group
	rb, _ = rb.Update(keyRune('u'))
	if len(rb.groupPath) != 0 {
		t.Errorf("expected to be back at the root, path %v", rb.groupPath)
	}
}

func TestRuleBuilder_ToggleLogic(t *testing.T) {
	rb := NewRuleBuilder(theme.DefaultTheme())

	rb = addRule(rb, "genre", "rock")
	rb = addRule(rb, "genre", "pop")

	rb, _ = rb.Update(keyRune('o'))

	query := rules.Compile(rb.Group())
	if !strings.Contains(query, " OR ") {
		t.Errorf("expected OR after toggling logic, got %q", query)
	}
}

func TestRuleBuilder_NestingLimit(t *testing.T) {
	rb := NewRuleBuilder(theme.DefaultTheme())

	// Descend as deep as allowed
	for i := 0; i < rules.MaxDepth-1; i++ {
		rb, _ = rb.Update(keyRune('g'))
	}
	if len(rb.groupPath) != rules.MaxDepth-1 {
		t.Fatalf("expected path of length %d, got %d", rules.MaxDepth-1, len(rb.groupPath))
	}

	// One more level must be rejected
	rb, _ = rb.Update(keyRune('g'))
	if len(rb.groupPath) != rules.MaxDepth-1 {
		t.Error("nesting beyond the limit should be rejected")
	}
	if rb.validationError == "" {
		t.Error("exceeding the nesting limit should set a validation error")
	}
}

func TestRuleBuilder_DeleteRule(t *testing.T) {
	rb := NewRuleBuilder(theme.DefaultTheme())

	rb = addRule(rb, "artist", "Beatles")
	rb = addRule(rb, "genre", "rock")

	rb, _ = rb.Update(keyRune('d'))

	group := rb.Group()
	if len(group.Rules) != 1 {
		t.Fatalf("expected 1 rule after delete, got %d", len(group.Rules))
	}
	if group.Rules[0].TagKey != "genre" {
		t.Errorf("wrong rule deleted, remaining %q", group.Rules[0].TagKey)
	}
}

func TestRuleBuilder_EscapeCloses(t *testing.T) {
	rb := NewRuleBuilder(theme.DefaultTheme())

	_, cmd := rb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("escape should produce a command")
	}
	if _, ok := cmd().(CloseRuleBuilderMsg); !ok {
		t.Errorf("expected CloseRuleBuilderMsg, got %T", cmd())
	}
}
