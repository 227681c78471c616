// Package render produces Markdown and HTML output from a review report.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/reviewmend/internal/report"
)

// Markdown renders a report as a Markdown document.
func Markdown(r *report.ReviewReport) string {
	var b strings.Builder

	b.WriteString("# Code Review Report\n\n")

	// Context
	b.WriteString("## Context\n\n")
	fmt.Fprintf(&b, "- **Change**: %s\n", r.Context.Change)
	fmt.Fprintf(&b, "- **Scope**: %s\n", r.Context.Scope)
	fmt.Fprintf(&b, "- **Impact**: %s\n\n", r.Context.Impact)

	// Statistics
	fmt.Fprintf(&b, "**Findings:** %d critical, %d high, %d warnings, %d suggestions (%d total)\n\n",
		r.Statistics.Critical, r.Statistics.High, r.Statistics.Warnings,
		r.Statistics.Suggestions, r.Statistics.Total)

	// Issues by severity
	for _, group := range r.Issues.BySeverity() {
		fmt.Fprintf(&b, "## %s\n\n", sectionTitle(group.Severity))
		if len(group.Issues) == 0 {
			b.WriteString("None found.\n\n")
			continue
		}
		for _, iss := range group.Issues {
			renderIssue(&b, iss, group.Severity)
		}
	}

	// Positive observations
	if len(r.PositiveObservations) > 0 {
		b.WriteString("## Positive Observations\n\n")
		for _, obs := range r.PositiveObservations {
			fmt.Fprintf(&b, "- **%s**: %s\n", obs.Category, obs.Observation)
		}
		b.WriteString("\n")
	}

	// Summary
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Overall Assessment**: %s\n", r.Summary.Assessment)
	fmt.Fprintf(&b, "- **Priority Focus**: %s\n\n", r.Summary.PriorityFocus)
	fmt.Fprintf(&b, "%s\n", r.Summary.DetailedSummary)

	return b.String()
}

func sectionTitle(sev report.Severity) string {
	switch sev {
	case report.SeverityCritical:
		return "Critical Issues"
	case report.SeverityHigh:
		return "High Issues"
	case report.SeverityWarning:
		return "Warnings"
	default:
		return "Suggestions"
	}
}

func renderIssue(b *strings.Builder, iss report.Issue, sev report.Severity) {
	fmt.Fprintf(b, "### %s\n\n", iss.Description)
	fmt.Fprintf(b, "- **Location**: `%s`\n", iss.Location)
	fmt.Fprintf(b, "- **Confidence**: %.1f\n", iss.Confidence)

	switch sev {
	case report.SeverityCritical, report.SeverityHigh:
		if iss.Risk != "" {
			fmt.Fprintf(b, "- **Risk**: %s\n", iss.Risk)
		}
		if iss.RemediationPriority != "" {
			fmt.Fprintf(b, "- **Remediation Priority**: %s\n", iss.RemediationPriority)
		}
		if iss.WhyMatters != "" {
			fmt.Fprintf(b, "- **Why This Matters**: %s\n", iss.WhyMatters)
		}
		if iss.Recommendation != "" {
			fmt.Fprintf(b, "- **Recommendation**: %s\n", iss.Recommendation)
		}
	case report.SeverityWarning:
		if iss.Impact != "" {
			fmt.Fprintf(b, "- **Impact**: %s\n", iss.Impact)
		}
		if iss.Suggestion != "" {
			fmt.Fprintf(b, "- **Suggestion**: %s\n", iss.Suggestion)
		}
	case report.SeveritySuggestion:
		if iss.Benefit != "" {
			fmt.Fprintf(b, "- **Benefit**: %s\n", iss.Benefit)
		}
		if iss.Recommendation != "" {
			fmt.Fprintf(b, "- **Recommendation**: %s\n", iss.Recommendation)
		}
	}
	b.WriteString("\n")
}
