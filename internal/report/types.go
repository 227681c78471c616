// Package report defines the core types for structured review reports.
package report

// ReviewReport is the canonical output document of a review pass.
type ReviewReport struct {
	Context              Context               `json:"context"`
	Statistics           Statistics            `json:"statistics"`
	Issues               Issues                `json:"issues"`
	PositiveObservations []PositiveObservation `json:"positive_observations"`
	Summary              Summary               `json:"summary"`
}

// Context describes the change under review.
type Context struct {
	Change string `json:"change"`
	Scope  string `json:"scope"`
	Impact Impact `json:"impact"`
}

// Statistics holds per-severity issue counts. All counts are derived from
// the issue lists; Total must equal the sum of the other four.
type Statistics struct {
	Critical    int `json:"critical"`
	High        int `json:"high"`
	Warnings    int `json:"warnings"`
	Suggestions int `json:"suggestions"`
	Total       int `json:"total"`
}

// Issues groups findings by severity. The JSON keys use the plural forms
// "warnings" and "suggestions"; this is part of the external contract and
// must not be normalized.
type Issues struct {
	Critical    []Issue `json:"critical"`
	High        []Issue `json:"high"`
	Warnings    []Issue `json:"warnings"`
	Suggestions []Issue `json:"suggestions"`
}

// Issue is a single finding. Which optional fields are required depends on
// the severity list the issue appears in: critical and high issues carry
// Risk, RemediationPriority, WhyMatters, and Recommendation; warnings carry
// Impact and Suggestion; suggestions carry Benefit and Recommendation.
type Issue struct {
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
	Location    string  `json:"location"`

	Risk                string              `json:"risk,omitempty"`
	RemediationPriority RemediationPriority `json:"remediation_priority,omitempty"`
	WhyMatters          string              `json:"why_matters,omitempty"`
	Recommendation      string              `json:"recommendation,omitempty"`
	Impact              string              `json:"impact,omitempty"`
	Suggestion          string              `json:"suggestion,omitempty"`
	Benefit             string              `json:"benefit,omitempty"`
}

// PositiveObservation records something the reviewer found done well.
type PositiveObservation struct {
	Category    string `json:"category"`
	Observation string `json:"observation"`
}

// Summary holds the overall assessment of the change.
type Summary struct {
	Assessment      Assessment `json:"assessment"`
	PriorityFocus   string     `json:"priority_focus"`
	DetailedSummary string     `json:"detailed_summary"`
}

// BySeverity returns the issue lists paired with their severity, in
// descending severity order. The returned slices alias the report.
func (i *Issues) BySeverity() []SeverityGroup {
	return []SeverityGroup{
		{SeverityCritical, i.Critical},
		{SeverityHigh, i.High},
		{SeverityWarning, i.Warnings},
		{SeveritySuggestion, i.Suggestions},
	}
}

// SeverityGroup pairs a severity with its issue list.
type SeverityGroup struct {
	Severity Severity
	Issues   []Issue
}
