package schema

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/dshills/reviewmend/internal/report"
)

// Field constraints shared with the repair engine.
const (
	DescriptionMinLen = 10
	DescriptionMaxLen = 300
	ConfidenceFloor   = 0.6
	ConfidenceCeiling = 1.0
)

// severityKeys lists the issue object keys in severity order.
var severityKeys = []string{"critical", "high", "warnings", "suggestions"}

// ValidateDocument walks a decoded document against the report schema and
// collects every deviation. It never stops at the first violation.
func ValidateDocument(doc map[string]any) []Violation {
	var errs []Violation

	errs = append(errs, validateContext(doc)...)
	errs = append(errs, validateIssues(doc)...)
	errs = append(errs, validateStatistics(doc)...)
	errs = append(errs, validateObservations(doc)...)
	errs = append(errs, validateSummary(doc)...)

	return errs
}

func validateContext(doc map[string]any) []Violation {
	var errs []Violation

	ctx, ok := requireObject(doc, "context", &errs)
	if !ok {
		return errs
	}
	requireString(ctx, "context.change", "change", &errs)
	requireString(ctx, "context.scope", "scope", &errs)
	if impact, ok := requireString(ctx, "context.impact", "impact", &errs); ok {
		if !report.Impact(impact).Valid() {
			errs = append(errs, Violation{KindEnumViolation, "context.impact",
				fmt.Sprintf("%q is not one of Low, Medium, High", impact)})
		}
	}
	return errs
}

func validateIssues(doc map[string]any) []Violation {
	var errs []Violation

	issues, ok := requireObject(doc, "issues", &errs)
	if !ok {
		return errs
	}
	for _, key := range severityKeys {
		path := "issues." + key
		raw, present := issues[key]
		if !present {
			errs = append(errs, Violation{KindMissingField, path, "required"})
			continue
		}
		list, ok := raw.([]any)
		if !ok {
			errs = append(errs, Violation{KindTypeMismatch, path,
				fmt.Sprintf("expected array, got %s", jsonTypeName(raw))})
			continue
		}
		for i, entry := range list {
			prefix := fmt.Sprintf("%s[%d]", path, i)
			issue, ok := entry.(map[string]any)
			if !ok {
				errs = append(errs, Violation{KindTypeMismatch, prefix,
					fmt.Sprintf("expected object, got %s", jsonTypeName(entry))})
				continue
			}
			errs = append(errs, validateIssue(prefix, issue, report.Severity(key))...)
		}
	}
	return errs
}

func validateIssue(prefix string, issue map[string]any, sev report.Severity) []Violation {
	var errs []Violation

	if desc, ok := requireString(issue, prefix+".description", "description", &errs); ok {
		if n := len([]rune(desc)); n < DescriptionMinLen || n > DescriptionMaxLen {
			errs = append(errs, Violation{KindRangeViolation, prefix + ".description",
				fmt.Sprintf("length %d outside %d-%d", n, DescriptionMinLen, DescriptionMaxLen)})
		}
	}

	conf, present := issue["confidence"]
	switch {
	case !present:
		errs = append(errs, Violation{KindMissingField, prefix + ".confidence", "required"})
	default:
		num, ok := conf.(float64)
		if !ok {
			errs = append(errs, Violation{KindTypeMismatch, prefix + ".confidence",
				fmt.Sprintf("expected number, got %s", jsonTypeName(conf))})
		} else if num < ConfidenceFloor || num > ConfidenceCeiling {
			errs = append(errs, Violation{KindRangeViolation, prefix + ".confidence",
				fmt.Sprintf("%.2f outside %.1f-%.1f", num, ConfidenceFloor, ConfidenceCeiling)})
		}
	}

	if loc, ok := requireString(issue, prefix+".location", "location", &errs); ok {
		if !report.ValidLocation(loc) {
			errs = append(errs, Violation{KindTypeMismatch, prefix + ".location",
				fmt.Sprintf("%q does not follow the path:line convention", loc)})
		}
	}

	for _, field := range severityFields(sev) {
		requireString(issue, prefix+"."+field, field, &errs)
	}
	if sev == report.SeverityCritical || sev == report.SeverityHigh {
		if pri, ok := issue["remediation_priority"].(string); ok && pri != "" {
			if !report.RemediationPriority(pri).Valid() {
				errs = append(errs, Violation{KindEnumViolation, prefix + ".remediation_priority",
					fmt.Sprintf("%q is not one of Immediate, BeforeMerge, FollowUp", pri)})
			}
		}
	}
	return errs
}

// severityFields lists the extra string fields each severity requires.
func severityFields(sev report.Severity) []string {
	switch sev {
	case report.SeverityCritical, report.SeverityHigh:
		return []string{"risk", "remediation_priority", "why_matters", "recommendation"}
	case report.SeverityWarning:
		return []string{"impact", "suggestion"}
	case report.SeveritySuggestion:
		return []string{"benefit", "recommendation"}
	}
	return nil
}

func validateStatistics(doc map[string]any) []Violation {
	var errs []Violation

	stats, ok := requireObject(doc, "statistics", &errs)
	if !ok {
		return errs
	}

	counts := make(map[string]int, 5)
	allInts := true
	for _, key := range append(append([]string{}, severityKeys...), "total") {
		path := "statistics." + key
		raw, present := stats[key]
		if !present {
			errs = append(errs, Violation{KindMissingField, path, "required"})
			allInts = false
			continue
		}
		num, ok := raw.(float64)
		if !ok || num != math.Trunc(num) {
			errs = append(errs, Violation{KindTypeMismatch, path,
				fmt.Sprintf("expected integer, got %s", jsonTypeName(raw))})
			allInts = false
			continue
		}
		if num < 0 {
			errs = append(errs, Violation{KindRangeViolation, path, "must be >= 0"})
			allInts = false
			continue
		}
		counts[key] = int(num)
	}
	if !allInts {
		return errs
	}

	// Cross-field invariants: total is the sum, and each count matches the
	// length of the corresponding issue list.
	sum := counts["critical"] + counts["high"] + counts["warnings"] + counts["suggestions"]
	if counts["total"] != sum {
		errs = append(errs, Violation{KindInvariantViolation, "statistics.total",
			fmt.Sprintf("declared %d, per-severity counts sum to %d", counts["total"], sum)})
	}
	if issues, ok := doc["issues"].(map[string]any); ok {
		for _, key := range severityKeys {
			list, ok := issues[key].([]any)
			if !ok {
				continue
			}
			if counts[key] != len(list) {
				errs = append(errs, Violation{KindInvariantViolation, "statistics." + key,
					fmt.Sprintf("declared %d, issues.%s has %d entries", counts[key], key, len(list))})
			}
		}
	}
	return errs
}

func validateObservations(doc map[string]any) []Violation {
	var errs []Violation

	raw, present := doc["positive_observations"]
	if !present {
		return []Violation{{KindMissingField, "positive_observations", "required"}}
	}
	list, ok := raw.([]any)
	if !ok {
		return []Violation{{KindTypeMismatch, "positive_observations",
			fmt.Sprintf("expected array, got %s", jsonTypeName(raw))}}
	}
	for i, entry := range list {
		prefix := fmt.Sprintf("positive_observations[%d]", i)
		obs, ok := entry.(map[string]any)
		if !ok {
			errs = append(errs, Violation{KindTypeMismatch, prefix,
				fmt.Sprintf("expected object, got %s", jsonTypeName(entry))})
			continue
		}
		requireString(obs, prefix+".category", "category", &errs)
		requireString(obs, prefix+".observation", "observation", &errs)
	}
	return errs
}

func validateSummary(doc map[string]any) []Violation {
	var errs []Violation

	summary, ok := requireObject(doc, "summary", &errs)
	if !ok {
		return errs
	}
	if assessment, ok := requireString(summary, "summary.assessment", "assessment", &errs); ok {
		if !report.Assessment(assessment).Valid() {
			errs = append(errs, Violation{KindEnumViolation, "summary.assessment",
				fmt.Sprintf("%q is not one of Ready, NeedsWork, Blocked", assessment)})
		}
	}
	requireString(summary, "summary.priority_focus", "priority_focus", &errs)
	requireString(summary, "summary.detailed_summary", "detailed_summary", &errs)
	return errs
}

// requireObject fetches a required object member, appending a violation
// when it is absent or the wrong type.
func requireObject(doc map[string]any, key string, errs *[]Violation) (map[string]any, bool) {
	raw, present := doc[key]
	if !present {
		*errs = append(*errs, Violation{KindMissingField, key, "required"})
		return nil, false
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		*errs = append(*errs, Violation{KindTypeMismatch, key,
			fmt.Sprintf("expected object, got %s", jsonTypeName(raw))})
		return nil, false
	}
	return obj, true
}

// requireString fetches a required string member, appending a violation
// when it is absent, the wrong type, or empty.
func requireString(obj map[string]any, path, key string, errs *[]Violation) (string, bool) {
	raw, present := obj[key]
	if !present {
		*errs = append(*errs, Violation{KindMissingField, path, "required"})
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		*errs = append(*errs, Violation{KindTypeMismatch, path,
			fmt.Sprintf("expected string, got %s", jsonTypeName(raw))})
		return "", false
	}
	if s == "" {
		*errs = append(*errs, Violation{KindMissingField, path, "must not be empty"})
		return "", false
	}
	return s, true
}

// Decode converts a schema-valid document into the typed report. Call it
// only on documents that passed ValidateDocument.
func Decode(doc map[string]any) (*report.ReviewReport, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("schema.Decode: %w", err)
	}
	var r report.ReviewReport
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("schema.Decode: %w", err)
	}
	return &r, nil
}
