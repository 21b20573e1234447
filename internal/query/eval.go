package query

import (
	"strconv"
	"strings"

	"github.com/nomarr/nomarr/internal/models"
)

// Eval evaluates a parsed query tree against a track. A nil node (the empty
// query) matches every track. A comparison against a tag the track does not
// carry is false, including negated comparisons.
func Eval(node *Node, track models.Track) bool {
	if node == nil {
		return true
	}

	if node.Term != nil {
		return evalTerm(node.Term, track)
	}

	switch node.Op {
	case "AND":
		return Eval(node.Left, track) && Eval(node.Right, track)
	case "OR":
		return Eval(node.Left, track) || Eval(node.Right, track)
	default:
		return false
	}
}

// Filter returns the tracks matching a parsed query, preserving input order
func Filter(node *Node, tracks []models.Track) []models.Track {
	var matched []models.Track
	for _, track := range tracks {
		if Eval(node, track) {
			matched = append(matched, track)
		}
	}
	return matched
}

func evalTerm(term *Term, track models.Track) bool {
	tagValue := track.Tag(term.TagKey)
	if tagValue == "" {
		return false
	}

	switch term.Operator {
	case models.OpContains:
		return strings.Contains(strings.ToLower(tagValue), strings.ToLower(term.Value))
	case models.OpNotContains:
		return !strings.Contains(strings.ToLower(tagValue), strings.ToLower(term.Value))
	case models.OpEqual:
		return compareEqual(tagValue, term.Value)
	case models.OpNotEqual:
		return !compareEqual(tagValue, term.Value)
	case models.OpGreaterThan, models.OpGreaterOrEqual, models.OpLessThan, models.OpLessOrEqual:
		return compareNumeric(term.Operator, tagValue, term.Value)
	default:
		return false
	}
}

// compareEqual compares numerically when both sides parse as numbers
// (so "120" equals "120.0" for a bpm tag), and exactly otherwise.
func compareEqual(tagValue, queryValue string) bool {
	a, errA := strconv.ParseFloat(tagValue, 64)
	b, errB := strconv.ParseFloat(queryValue, 64)
	if errA == nil && errB == nil {
		return a == b
	}
	return tagValue == queryValue
}

// compareNumeric handles the ordering operators. Both sides must parse as
// numbers; otherwise the comparison is false.
func compareNumeric(op models.RuleOperator, tagValue, queryValue string) bool {
	a, errA := strconv.ParseFloat(tagValue, 64)
	b, errB := strconv.ParseFloat(queryValue, 64)
	if errA != nil || errB != nil {
		return false
	}

	switch op {
	case models.OpGreaterThan:
		return a > b
	case models.OpGreaterOrEqual:
		return a >= b
	case models.OpLessThan:
		return a < b
	case models.OpLessOrEqual:
		return a <= b
	default:
		return false
	}
}
