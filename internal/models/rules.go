package models

// GroupLogic determines how the terms of a rule group are combined
type GroupLogic string

const (
	LogicAll GroupLogic = "ALL" // every term must match
	LogicAny GroupLogic = "ANY" // at least one term must match
)

// RuleOperator represents a tag comparison operator
type RuleOperator string

const (
	OpEqual          RuleOperator = "="
	OpNotEqual       RuleOperator = "!="
	OpGreaterThan    RuleOperator = ">"
	OpLessThan       RuleOperator = "<"
	OpGreaterOrEqual RuleOperator = ">="
	OpLessOrEqual    RuleOperator = "<="
	OpContains       RuleOperator = "contains"
	OpNotContains    RuleOperator = "notcontains"
)

// Rule is a single tag comparison inside a rule group.
// A rule only contributes to the compiled query once both TagKey and Value
// are non-empty; incomplete rules are skipped during compilation.
type Rule struct {
	TagKey   string
	Operator RuleOperator
	Value    string
}

// Complete reports whether the rule has enough content to be compiled
func (r Rule) Complete() bool {
	return r.TagKey != "" && r.Value != ""
}

// RuleGroup is a node in the playlist rule tree. Each group exclusively owns
// its rules and child groups; the tree is acyclic by construction.
type RuleGroup struct {
	Logic  GroupLogic
	Rules  []Rule
	Groups []RuleGroup
}

// NewRuleGroup creates an empty conjunctive rule group
func NewRuleGroup() RuleGroup {
	return RuleGroup{
		Logic:  LogicAll,
		Rules:  []Rule{},
		Groups: []RuleGroup{},
	}
}
