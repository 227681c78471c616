package zuul

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/reviewmend/internal/report"
)

func sampleReport() *report.ReviewReport {
	issues := report.Issues{
		Critical: []report.Issue{{
			Description:         "SQL built by string concatenation with request input.",
			Confidence:          0.95,
			Location:            "internal/store/query.go:88",
			Risk:                "Injection against the primary database.",
			RemediationPriority: report.PriorityImmediate,
			WhyMatters:          "The endpoint is reachable without authentication.",
			Recommendation:      "Use parameterized queries.",
		}},
		High: []report.Issue{},
		Warnings: []report.Issue{
			{
				Description: "Error from Close is discarded in the hot path.",
				Confidence:  0.7,
				Location:    "internal/store/query.go:41",
				Impact:      "Silent connection leaks under load.",
				Suggestion:  "Check and log the Close error.",
			},
			{
				Description: "Context deadline is not propagated to the driver.",
				Confidence:  0.8,
				Location:    "general",
				Impact:      "Queries outlive the request.",
				Suggestion:  "Pass ctx through QueryContext.",
			},
		},
		Suggestions: []report.Issue{{
			Description:    "Batch the per-row lookups into one query.",
			Confidence:     0.65,
			Location:       "internal/store/batch.go:12-30",
			Benefit:        "One round trip instead of N.",
			Recommendation: "Collect IDs and use IN.",
		}},
	}
	r := &report.ReviewReport{Issues: issues}
	r.Statistics = report.ComputeStatistics(issues)
	return r
}

func TestExtract(t *testing.T) {
	fc := Extract(sampleReport(), nil)

	require.Len(t, fc, 2)
	require.Len(t, fc["internal/store/query.go"], 2)
	require.Len(t, fc["internal/store/batch.go"], 1)

	// Sorted by line within a file.
	comments := fc["internal/store/query.go"]
	assert.Equal(t, 41, comments[0].Line)
	assert.Equal(t, LevelWarning, comments[0].Level)
	assert.Equal(t, 88, comments[1].Line)
	assert.Equal(t, LevelError, comments[1].Level)

	// Range locations anchor to the starting line.
	assert.Equal(t, 12, fc["internal/store/batch.go"][0].Line)
	assert.Equal(t, LevelInfo, fc["internal/store/batch.go"][0].Level)
}

func TestExtractSkipsUnresolvableLocations(t *testing.T) {
	fc := Extract(sampleReport(), nil)
	total := 0
	for _, comments := range fc {
		total += len(comments)
	}
	assert.Equal(t, 3, total, `the "general" location produces no comment`)
}

func TestExtractNormalizesWorkspacePaths(t *testing.T) {
	r := &report.ReviewReport{Issues: report.Issues{
		High: []report.Issue{{
			Description:    "Handler writes the response after returning an error.",
			Confidence:     0.85,
			Location:       "/home/zuul/src/opendev.org/acme/widgets/handlers/api.go:17",
			Risk:           "Duplicate WriteHeader panics under race.",
			Recommendation: "Return immediately after the error write.",
		}},
	}}
	fc := Extract(r, nil)
	require.Contains(t, fc, "handlers/api.go")
}

func TestExtractCustomPrefixes(t *testing.T) {
	r := &report.ReviewReport{Issues: report.Issues{
		Warnings: []report.Issue{{
			Description: "Magic number used for the retry cap.",
			Confidence:  0.7,
			Location:    "/builds/ci/acme/widgets/pkg/retry/retry.go:9",
			Impact:      "Unclear tuning intent.",
			Suggestion:  "Name the constant.",
		}},
	}}
	fc := Extract(r, []string{"/builds/ci/"})
	require.Contains(t, fc, "pkg/retry/retry.go")
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, LevelError, LevelFor(report.SeverityCritical))
	assert.Equal(t, LevelError, LevelFor(report.SeverityHigh))
	assert.Equal(t, LevelWarning, LevelFor(report.SeverityWarning))
	assert.Equal(t, LevelInfo, LevelFor(report.SeveritySuggestion))
}

func TestFormatMessage(t *testing.T) {
	issue := sampleReport().Issues.Critical[0]
	msg := FormatMessage(issue, report.SeverityCritical)

	assert.Contains(t, msg, issue.Description)
	assert.Contains(t, msg, "**Severity**: CRITICAL | **Confidence**:")
	assert.Contains(t, msg, "**Risk**: Injection against the primary database.")
	assert.Contains(t, msg, "**Priority**: Immediate")
	assert.Contains(t, msg, "**Recommendation**:\nUse parameterized queries.")
}

func TestFormatMessageWarningFields(t *testing.T) {
	issue := sampleReport().Issues.Warnings[0]
	msg := FormatMessage(issue, report.SeverityWarning)

	assert.Contains(t, msg, "**Impact**: Silent connection leaks under load.")
	assert.Contains(t, msg, "**Suggestion**:")
	assert.NotContains(t, msg, "**Risk**")
}

func TestBuildReturnValidates(t *testing.T) {
	ret := BuildReturn(sampleReport(), nil)
	assert.Empty(t, ValidateReturn(ret))
	assert.NotNil(t, ret.Zuul.FileComments)
}

func TestValidateReturn(t *testing.T) {
	ret := Return{Zuul: ReturnData{FileComments: map[string][]Comment{
		"a.go": {
			{Line: 0, Message: "", Level: "fatal"},
			{Line: 3, Message: "fine", Level: LevelInfo},
		},
	}}}
	errs := ValidateReturn(ret)
	require.Len(t, errs, 3)

	paths := make([]string, 0, len(errs))
	for _, e := range errs {
		paths = append(paths, e.Path)
	}
	assert.Contains(t, paths, `zuul.file_comments["a.go"][0].line`)
	assert.Contains(t, paths, `zuul.file_comments["a.go"][0].message`)
	assert.Contains(t, paths, `zuul.file_comments["a.go"][0].level`)
}

func TestValidateReturnNilMap(t *testing.T) {
	errs := ValidateReturn(Return{})
	require.Len(t, errs, 1)
	assert.Equal(t, "zuul.file_comments", errs[0].Path)
}

func TestSummarize(t *testing.T) {
	fc := Extract(sampleReport(), nil)
	s := Summarize(fc)
	assert.Equal(t, 2, s.Files)
	assert.Equal(t, 3, s.Comments)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, 1, s.Warnings)
	assert.Equal(t, 1, s.Info)
	assert.Contains(t, s.String(), "3 comments across 2 files")
}
