package tagdb

import (
	"fmt"
	"strconv"

	"github.com/nomarr/nomarr/internal/models"
	"github.com/nomarr/nomarr/internal/query"
)

// Translate converts a parsed query tree into a SQL predicate over the
// tracks table, with positional arguments. A nil node translates to "TRUE"
// (the empty query matches everything). Each tag term becomes an EXISTS
// probe against track_tags so tracks missing the tag never match, mirroring
// the in-memory evaluator.
func Translate(node *query.Node) (string, []interface{}, error) {
	clause, args, _, err := translateNode(node, 1)
	return clause, args, err
}

func translateNode(node *query.Node, paramIndex int) (string, []interface{}, int, error) {
	if node == nil {
		return "TRUE", nil, paramIndex, nil
	}

	if node.Term != nil {
		return translateTerm(node.Term, paramIndex)
	}

	left, leftArgs, nextParam, err := translateNode(node.Left, paramIndex)
	if err != nil {
		return "", nil, 0, err
	}
	right, rightArgs, nextParam, err := translateNode(node.Right, nextParam)
	if err != nil {
		return "", nil, 0, err
	}

	var op string
	switch node.Op {
	case "AND":
		op = "AND"
	case "OR":
		op = "OR"
	default:
		return "", nil, 0, fmt.Errorf("unsupported boolean operator: %q", node.Op)
	}

	clause := fmt.Sprintf("(%s %s %s)", left, op, right)
	return clause, append(leftArgs, rightArgs...), nextParam, nil
}

func translateTerm(term *query.Term, paramIndex int) (string, []interface{}, int, error) {
	keyParam := paramIndex
	valueParam := paramIndex + 1

	exists := func(pred string) string {
		return fmt.Sprintf(
			"EXISTS (SELECT 1 FROM track_tags tt WHERE tt.track_id = tracks.id AND tt.key = $%d AND %s)",
			keyParam, pred,
		)
	}

	switch term.Operator {
	case models.OpContains:
		clause := exists(fmt.Sprintf("tt.value ILIKE '%%' || $%d || '%%'", valueParam))
		return clause, []interface{}{term.TagKey, term.Value}, paramIndex + 2, nil

	case models.OpNotContains:
		clause := exists(fmt.Sprintf("tt.value NOT ILIKE '%%' || $%d || '%%'", valueParam))
		return clause, []interface{}{term.TagKey, term.Value}, paramIndex + 2, nil

	case models.OpEqual, models.OpNotEqual:
		op := "="
		if term.Operator == models.OpNotEqual {
			op = "<>"
		}
		// Numeric literals compare numerically so "128" matches "128.0"
		if num, err := strconv.ParseFloat(term.Value, 64); err == nil {
			pred := fmt.Sprintf(
				"tt.value ~ '^-?[0-9]+(\\.[0-9]+)?$' AND (tt.value)::numeric %s $%d",
				op, valueParam,
			)
			return exists(pred), []interface{}{term.TagKey, num}, paramIndex + 2, nil
		}
		clause := exists(fmt.Sprintf("tt.value %s $%d", op, valueParam))
		return clause, []interface{}{term.TagKey, term.Value}, paramIndex + 2, nil

	case models.OpGreaterThan, models.OpGreaterOrEqual, models.OpLessThan, models.OpLessOrEqual:
		num, err := strconv.ParseFloat(term.Value, 64)
		if err != nil {
			return "", nil, 0, fmt.Errorf("tag %q: operator %s needs a numeric value, got %q",
				term.TagKey, term.Operator, term.Value)
		}
		pred := fmt.Sprintf(
			"tt.value ~ '^-?[0-9]+(\\.[0-9]+)?$' AND (tt.value)::numeric %s $%d",
			string(term.Operator), valueParam,
		)
		return exists(pred), []interface{}{term.TagKey, num}, paramIndex + 2, nil

	default:
		return "", nil, 0, fmt.Errorf("unsupported operator: %s", term.Operator)
	}
}
