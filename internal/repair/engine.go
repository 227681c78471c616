// Package repair applies bounded, deterministic strategies to malformed
// review output until it validates or the attempt budget runs out.
//
// Strategies only repair structure: they strip wrapper text, balance
// truncated brackets, fill scaffolding defaults, and recompute derived
// counts. No strategy fabricates finding content; shape is safe to repair,
// meaning is not.
package repair

import (
	"github.com/dshills/reviewmend/internal/schema"
)

// DefaultBudget is the default number of validation cycles allowed.
const DefaultBudget = 6

// Result reports the outcome of a repair run. Document is nil when the
// budget was exhausted with violations remaining.
type Result struct {
	Document     map[string]any
	AttemptsUsed int
	StrategyLog  []string
}

// textStrategy rewrites raw text that failed to parse. It returns the
// rewritten text and whether anything changed.
type textStrategy struct {
	name  string
	apply func(string) (string, bool)
}

// docStrategy mutates a parsed document in place, guided by the current
// violation list. It reports whether it changed the document.
type docStrategy struct {
	name  string
	apply func(map[string]any, []schema.Violation) bool
}

// Ordered strategy lists. Text strategies address parse failures; document
// strategies address structural drift in a parsed document.
var (
	textStrategies = []textStrategy{
		{"strip-trailing-content", stripTrailingContent},
		{"strip-leading-content", stripLeadingContent},
		{"strip-trailing-commas", stripTrailingCommas},
		{"balance-brackets", balanceBrackets},
	}
	docStrategies = []docStrategy{
		{"unwrap-structured-output", unwrapStructuredOutput},
		{"default-missing-fields", defaultMissingFields},
		{"recompute-statistics", recomputeStatistics},
		{"filter-low-confidence", filterLowConfidence},
	}
)

// Repair attempts to make raw text schema-valid. The initial validation
// result (from the caller's first validation pass) seeds the strategy
// selection; each re-validation after a strategy changes something counts
// one attempt against the budget. Every strategy is applied at most once.
func Repair(raw string, initial schema.ValidationResult, budget int) Result {
	res := Result{}
	text := raw
	doc := initial.Document
	violations := initial.Violations

	// Phase 1: the text did not parse as a single JSON object.
	if doc == nil {
		for _, s := range textStrategies {
			if res.AttemptsUsed >= budget {
				return res
			}
			next, changed := s.apply(text)
			if !changed {
				continue
			}
			text = next
			res.StrategyLog = append(res.StrategyLog, s.name)
			vr := schema.Validate(text)
			res.AttemptsUsed++
			if vr.Valid {
				res.Document = vr.Document
				return res
			}
			if vr.Document != nil {
				doc = vr.Document
				violations = vr.Violations
				break
			}
		}
		if doc == nil {
			return res
		}
	}

	// Phase 2: the document parses but deviates from the schema.
	for _, s := range docStrategies {
		if res.AttemptsUsed >= budget {
			return res
		}
		if !s.apply(doc, violations) {
			continue
		}
		res.StrategyLog = append(res.StrategyLog, s.name)
		violations = schema.ValidateDocument(doc)
		res.AttemptsUsed++
		if len(violations) == 0 {
			res.Document = doc
			return res
		}
	}

	return res
}
