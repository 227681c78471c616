package report

import "fmt"

// Fallback builds a minimal schema-valid report for raw output that could
// not be repaired. It assembles only literal and derived values, so it
// cannot fail; the reason and a bounded excerpt of the original text are
// carried in the detailed summary as the sole degraded-mode signal.
func Fallback(reason, rawExcerpt string) *ReviewReport {
	detail := fmt.Sprintf(
		"Automated review output could not be validated or repaired: %s. "+
			"No findings are reported. Raw output excerpt for debugging:\n\n%s",
		reason, rawExcerpt)

	issues := Issues{
		Critical:    []Issue{},
		High:        []Issue{},
		Warnings:    []Issue{},
		Suggestions: []Issue{},
	}

	return &ReviewReport{
		Context: Context{
			Change: "Unknown",
			Scope:  "Unknown",
			Impact: ImpactLow,
		},
		Statistics:           ComputeStatistics(issues),
		Issues:               issues,
		PositiveObservations: []PositiveObservation{},
		Summary: Summary{
			Assessment:      AssessmentNeedsWork,
			PriorityFocus:   "Re-run the automated review",
			DetailedSummary: detail,
		},
	}
}
