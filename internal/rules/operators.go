package rules

import "github.com/nomarr/nomarr/internal/models"

// OperatorsForKind returns the operators the rule builder offers for a tag
// kind. The compiler itself does not validate operators; it passes whatever
// the rule carries through verbatim.
func OperatorsForKind(kind models.TagKind) []models.RuleOperator {
	switch kind {
	case models.TagKindNumeric:
		return []models.RuleOperator{
			models.OpEqual, models.OpNotEqual,
			models.OpGreaterThan, models.OpGreaterOrEqual,
			models.OpLessThan, models.OpLessOrEqual,
		}
	case models.TagKindString:
		return []models.RuleOperator{
			models.OpContains, models.OpNotContains,
			models.OpEqual, models.OpNotEqual,
		}
	default:
		return []models.RuleOperator{models.OpEqual, models.OpNotEqual}
	}
}
