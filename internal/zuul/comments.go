// Package zuul turns a review report into Zuul inline file comments.
//
// Issues carrying a path:line location become entries in the
// zuul.file_comments structure that a CI job hands to zuul_return; issues
// without a resolvable location are skipped.
package zuul

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/reviewmend/internal/report"
)

// Level is a Zuul comment level.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

func (l Level) Valid() bool {
	switch l {
	case LevelError, LevelWarning, LevelInfo:
		return true
	}
	return false
}

// Comment is a single inline comment anchored to a file line.
type Comment struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
	Level   Level  `json:"level"`
}

// Return is the top-level zuul_return payload.
type Return struct {
	Zuul ReturnData `json:"zuul"`
}

// ReturnData holds the file_comments map keyed by repo-relative path.
type ReturnData struct {
	FileComments map[string][]Comment `json:"file_comments"`
}

// LevelFor maps issue severity to the Zuul comment level.
func LevelFor(sev report.Severity) Level {
	switch sev {
	case report.SeverityCritical, report.SeverityHigh:
		return LevelError
	case report.SeverityWarning:
		return LevelWarning
	default:
		return LevelInfo
	}
}

// Extract collects inline comments from every issue with a parseable
// location. Paths are normalized to be repo-relative; pathPrefixes are
// tried ahead of the built-in CI workspace prefixes. Comments within a
// file are ordered by line.
func Extract(r *report.ReviewReport, pathPrefixes []string) map[string][]Comment {
	fileComments := make(map[string][]Comment)

	for _, group := range r.Issues.BySeverity() {
		for _, issue := range group.Issues {
			loc, ok := report.ParseLocation(issue.Location)
			if !ok {
				continue
			}
			path := report.NormalizePath(loc.Path, pathPrefixes)
			fileComments[path] = append(fileComments[path], Comment{
				Line:    loc.Line,
				Message: FormatMessage(issue, group.Severity),
				Level:   LevelFor(group.Severity),
			})
		}
	}
	for path := range fileComments {
		comments := fileComments[path]
		sort.SliceStable(comments, func(i, j int) bool {
			return comments[i].Line < comments[j].Line
		})
	}
	return fileComments
}

// BuildReturn assembles the complete zuul_return payload for a report.
func BuildReturn(r *report.ReviewReport, pathPrefixes []string) Return {
	return Return{Zuul: ReturnData{FileComments: Extract(r, pathPrefixes)}}
}

// FormatMessage renders an issue as a markdown comment body with the
// severity-specific detail fields.
func FormatMessage(issue report.Issue, sev report.Severity) string {
	var parts []string
	parts = append(parts, issue.Description, "")
	parts = append(parts, fmt.Sprintf("**Severity**: %s | **Confidence**: %.1f",
		strings.ToUpper(sev.Label()), issue.Confidence))
	parts = append(parts, "")

	switch sev {
	case report.SeverityCritical, report.SeverityHigh:
		if issue.Risk != "" {
			parts = append(parts, fmt.Sprintf("**Risk**: %s", issue.Risk), "")
		}
		if issue.RemediationPriority != "" {
			parts = append(parts, fmt.Sprintf("**Priority**: %s", issue.RemediationPriority))
		}
		if issue.WhyMatters != "" {
			parts = append(parts, fmt.Sprintf("**Why This Matters**: %s", issue.WhyMatters), "")
		}
		if issue.Recommendation != "" {
			parts = append(parts, "**Recommendation**:", issue.Recommendation)
		}
	case report.SeverityWarning:
		if issue.Impact != "" {
			parts = append(parts, fmt.Sprintf("**Impact**: %s", issue.Impact), "")
		}
		if issue.Suggestion != "" {
			parts = append(parts, "**Suggestion**:", issue.Suggestion)
		}
	case report.SeveritySuggestion:
		if issue.Benefit != "" {
			parts = append(parts, fmt.Sprintf("**Benefit**: %s", issue.Benefit), "")
		}
		if issue.Recommendation != "" {
			parts = append(parts, "**Recommendation**:", issue.Recommendation)
		}
	}
	return strings.Join(parts, "\n")
}

// Summary counts extracted comments by level.
type Summary struct {
	Files    int
	Comments int
	Errors   int
	Warnings int
	Info     int
}

// Summarize tallies a file_comments map for operator output.
func Summarize(fileComments map[string][]Comment) Summary {
	s := Summary{Files: len(fileComments)}
	for _, comments := range fileComments {
		s.Comments += len(comments)
		for _, c := range comments {
			switch c.Level {
			case LevelError:
				s.Errors++
			case LevelWarning:
				s.Warnings++
			default:
				s.Info++
			}
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("Extracted %d comments across %d files (%d errors, %d warnings, %d info)",
		s.Comments, s.Files, s.Errors, s.Warnings, s.Info)
}
