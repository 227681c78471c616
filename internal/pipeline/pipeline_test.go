package pipeline

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/reviewmend/internal/report"
)

func validReport(criticalIssues string, count int) string {
	return fmt.Sprintf(`{
		"context": {"change": "Add retry middleware", "scope": "internal/httpx", "impact": "High"},
		"statistics": {"critical": %d, "high": 0, "warnings": 0, "suggestions": 0, "total": %d},
		"issues": {"critical": [%s], "high": [], "warnings": [], "suggestions": []},
		"positive_observations": [{"category": "testing", "observation": "Retry paths covered by table tests."}],
		"summary": {"assessment": "NeedsWork", "priority_focus": "Bound the retry loop", "detailed_summary": "Retries are unbounded on 5xx responses."}
	}`, count, count, criticalIssues)
}

func criticalIssue(confidence float64) string {
	return fmt.Sprintf(`{
		"description": "Retry loop has no upper bound on attempts.",
		"confidence": %.2f,
		"location": "internal/httpx/retry.go:57",
		"risk": "A persistent 500 pins the worker forever.",
		"remediation_priority": "Immediate",
		"why_matters": "Unbounded retries amplify outages instead of containing them.",
		"recommendation": "Cap attempts and add jittered backoff."
	}`, confidence)
}

func TestProcessValidInput(t *testing.T) {
	out := Process(validReport(criticalIssue(0.95), 1), Options{})
	require.NotNil(t, out.Report)
	assert.Equal(t, PathValidated, out.Path)
	assert.Zero(t, out.AttemptsUsed)
	assert.Empty(t, out.StrategyLog)
	assert.Equal(t, report.AssessmentNeedsWork, out.Report.Summary.Assessment)
	assert.Len(t, out.Report.Issues.Critical, 1)
}

func TestProcessRepairsStatisticsDrift(t *testing.T) {
	out := Process(validReport(criticalIssue(0.95), 7), Options{})
	require.NotNil(t, out.Report)
	assert.Equal(t, PathRepaired, out.Path)
	assert.Equal(t, []string{"recompute-statistics"}, out.StrategyLog)
	assert.Equal(t, 1, out.Report.Statistics.Critical)
	assert.Equal(t, 1, out.Report.Statistics.Total)
}

func TestProcessRepairsTrailingProse(t *testing.T) {
	raw := validReport("", 0) + "\n\nI hope this review is useful."
	out := Process(raw, Options{})
	require.NotNil(t, out.Report)
	assert.Equal(t, PathRepaired, out.Path)
	assert.Equal(t, []string{"strip-trailing-content"}, out.StrategyLog)
}

func TestProcessFiltersLowConfidence(t *testing.T) {
	issues := criticalIssue(0.9) + "," + criticalIssue(0.3)
	out := Process(validReport(issues, 2), Options{})
	require.NotNil(t, out.Report)
	assert.Equal(t, PathRepaired, out.Path)
	assert.Len(t, out.Report.Issues.Critical, 1)
	assert.Equal(t, 1, out.Report.Statistics.Total)
	for _, issue := range out.Report.Issues.Critical {
		assert.GreaterOrEqual(t, issue.Confidence, 0.6)
	}
}

func TestProcessRepairsEmptyRequiredString(t *testing.T) {
	raw := strings.Replace(validReport("", 0), `"scope": "internal/httpx"`, `"scope": ""`, 1)
	out := Process(raw, Options{})
	require.NotNil(t, out.Report)
	assert.Equal(t, PathRepaired, out.Path)
	assert.Equal(t, []string{"default-missing-fields"}, out.StrategyLog)
	assert.Equal(t, "Unknown", out.Report.Context.Scope)
}

func TestProcessTruncatedInputFallsBack(t *testing.T) {
	raw := validReport(criticalIssue(0.95), 1)
	raw = raw[:len(raw)/2]
	out := Process(raw, Options{})
	require.NotNil(t, out.Report)
	assert.Equal(t, PathFallback, out.Path)
	assert.Equal(t, report.AssessmentNeedsWork, out.Report.Summary.Assessment)
	assert.NotEmpty(t, out.Violations)
}

func TestProcessNeverReturnsNilReport(t *testing.T) {
	inputs := []string{
		"",
		"plain prose, no JSON at all",
		"[1, 2, 3]",
		`{"unexpected": true}`,
		"{\"context\": ",
		strings.Repeat("{", 500),
	}
	for _, raw := range inputs {
		out := Process(raw, Options{})
		require.NotNil(t, out.Report, "input %q", raw)
		assert.Equal(t, PathFallback, out.Path, "input %q", raw)
		assert.True(t, out.Report.Statistics.Consistent(out.Report.Issues), "input %q", raw)
	}
}

func TestProcessBudgetZeroSkipsRepair(t *testing.T) {
	raw := validReport("", 0) + " trailing prose"
	out := Process(raw, Options{AttemptBudget: 0})
	assert.Equal(t, PathFallback, out.Path)
	assert.Zero(t, out.AttemptsUsed)
	assert.Empty(t, out.StrategyLog)
}

func TestProcessBudgetBoundsAttempts(t *testing.T) {
	raw := "```json\n" + validReport(criticalIssue(0.2), 9)[:180]
	for budget := 0; budget <= 10; budget++ {
		out := Process(raw, Options{AttemptBudget: budget})
		require.NotNil(t, out.Report, "budget %d", budget)
		assert.LessOrEqual(t, out.AttemptsUsed, budget, "budget %d", budget)
	}
}

func TestProcessValidInputIsStable(t *testing.T) {
	raw := validReport(criticalIssue(0.95), 1)
	first := Process(raw, Options{})
	second := Process(raw, Options{})
	assert.Equal(t, first.Report, second.Report)
	assert.Equal(t, PathValidated, second.Path)
}

func TestProcessFallbackExcerptRedaction(t *testing.T) {
	raw := `broken output api_key="sk-abc123def456ghi789jkl012" end`
	out := Process(raw, Options{Redact: true})
	require.Equal(t, PathFallback, out.Path)
	detail := out.Report.Summary.DetailedSummary
	assert.NotContains(t, detail, "sk-abc123def456ghi789jkl012")
	assert.Contains(t, detail, "broken output")
}

func TestProcessFallbackExcerptLimit(t *testing.T) {
	raw := "not json " + strings.Repeat("x", 2000)
	out := Process(raw, Options{ExcerptLimit: 100})
	require.Equal(t, PathFallback, out.Path)
	assert.Contains(t, out.Report.Summary.DetailedSummary, "[...truncated]")
}
