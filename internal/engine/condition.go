package engine

import (
	"strings"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// AssessCondition normalizes the free-text condition from the vision model
// into a grade, a note and a price-impact multiplier. Rules are checked in
// table order; the trailing empty-substring rule catches everything else.
func (c Config) AssessCondition(id domain.Identification) domain.ConditionAssessment {
	text := strings.ToLower(clean(id.ConditionRaw))
	for _, rule := range c.ConditionRules {
		if rule.Substring != "" && !strings.Contains(text, rule.Substring) {
			continue
		}
		return domain.ConditionAssessment{
			Grade:                  rule.Grade,
			Notes:                  []string{rule.Note},
			PriceImpact:            rule.Multiplier,
			Completeness:           completeness(id),
			AuthenticityConfidence: id.Confidence,
		}
	}
	// unreachable with a well-formed table, but never fail the pipeline
	return domain.ConditionAssessment{
		Grade:                  domain.ConditionGood,
		PriceImpact:            0.75,
		Completeness:           completeness(id),
		AuthenticityConfidence: id.Confidence,
	}
}

// completeness scores how much of the product identity the vision model
// managed to fill in.
func completeness(id domain.Identification) float64 {
	fields := []string{id.Brand, id.Category, id.Model, id.StyleCode, id.Size, id.Colorway}
	filled := 0
	for _, f := range fields {
		if clean(f) != "" && !isPlaceholder(f) {
			filled++
		}
	}
	return float64(filled) / float64(len(fields))
}
