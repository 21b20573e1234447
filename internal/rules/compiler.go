package rules

import (
	"fmt"
	"strings"

	"github.com/nomarr/nomarr/internal/models"
)

// MaxDepth is the maximum allowed nesting depth of a rule group tree.
// A group with no child groups has depth 1. The tag-filtering backend
// accepts the same limit; the two must stay in sync.
const MaxDepth = 5

// Depth returns the nesting depth of a rule group tree. A leaf group has
// depth 1; a group with children has 1 + the deepest child's depth.
func Depth(group models.RuleGroup) int {
	deepest := 0
	for _, child := range group.Groups {
		if d := Depth(child); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}

// ValidateDepth checks the tree against MaxDepth. It returns nil when the
// tree is within bounds, or an error naming both the observed depth and the
// limit. The check is advisory: Compile does not enforce it, so callers must
// validate before compiling.
func ValidateDepth(group models.RuleGroup) error {
	if d := Depth(group); d > MaxDepth {
		return fmt.Errorf("rule group nesting depth %d exceeds the maximum of %d", d, MaxDepth)
	}
	return nil
}

// Compile serializes a rule group tree into the flat query string understood
// by the tag-filtering backend. Incomplete rules (empty tag key or value) are
// skipped. Child groups are compiled recursively and wrapped in parentheses
// when non-empty. Terms appear in input order, rules before child groups,
// joined with " AND " for ALL groups and " OR " for ANY groups. An empty
// group compiles to "".
//
// Operators and values pass through verbatim; no quoting or escaping is
// applied, so the output is only well-formed when values are single tokens.
func Compile(group models.RuleGroup) string {
	var terms []string

	for _, rule := range group.Rules {
		if !rule.Complete() {
			continue
		}
		terms = append(terms, fmt.Sprintf("tag:%s %s %s", rule.TagKey, rule.Operator, rule.Value))
	}

	for _, child := range group.Groups {
		if compiled := Compile(child); compiled != "" {
			terms = append(terms, "("+compiled+")")
		}
	}

	joiner := " AND "
	if group.Logic == models.LogicAny {
		joiner = " OR "
	}

	return strings.Join(terms, joiner)
}
