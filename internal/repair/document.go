package repair

import (
	"strings"

	"github.com/dshills/reviewmend/internal/schema"
)

// unwrapStructuredOutput replaces the document with its structured_output
// member. CLI agents invoked with a JSON schema wrap the report in a result
// envelope ({"type":"result","structured_output":{...}}).
func unwrapStructuredOutput(doc map[string]any, _ []schema.Violation) bool {
	inner, ok := doc["structured_output"].(map[string]any)
	if !ok {
		return false
	}
	for k := range doc {
		delete(doc, k)
	}
	for k, v := range inner {
		doc[k] = v
	}
	return true
}

// scaffoldDefaults describes the structural members that may be filled in
// when missing: empty lists for issue sequences, zero counts, and "Unknown"
// for required strings with no natural default. Enum-valued fields have no
// safe default and are deliberately absent; finding content is never
// fabricated.
var scaffoldDefaults = map[string]map[string]any{
	"context": {
		"change": "Unknown",
		"scope":  "Unknown",
	},
	"issues": {
		"critical":    []any{},
		"high":        []any{},
		"warnings":    []any{},
		"suggestions": []any{},
	},
	"statistics": {
		"critical":    float64(0),
		"high":        float64(0),
		"warnings":    float64(0),
		"suggestions": float64(0),
		"total":       float64(0),
	},
	"summary": {
		"priority_focus":   "Unknown",
		"detailed_summary": "Unknown",
	},
}

// defaultMissingFields fills absent structural scaffolding when the
// violation list reports top-level missing fields. An empty required string
// counts as absent and takes its scaffold default too. Fields nested inside
// issue or observation entries are content, not scaffolding, and are left
// alone.
func defaultMissingFields(doc map[string]any, violations []schema.Violation) bool {
	applicable := false
	for _, v := range violations {
		if v.Kind == schema.KindMissingField && !strings.Contains(v.Path, "[") {
			applicable = true
			break
		}
	}
	if !applicable {
		return false
	}

	changed := false
	for section, members := range scaffoldDefaults {
		obj, ok := doc[section].(map[string]any)
		if !ok {
			if _, present := doc[section]; present {
				continue // wrong type, not repairable by defaulting
			}
			obj = map[string]any{}
			doc[section] = obj
			changed = true
		}
		for key, def := range members {
			cur, present := obj[key]
			if !present {
				obj[key] = def
				changed = true
				continue
			}
			if s, ok := cur.(string); ok && s == "" {
				if _, isString := def.(string); isString {
					obj[key] = def
					changed = true
				}
			}
		}
	}
	if _, present := doc["positive_observations"]; !present {
		doc["positive_observations"] = []any{}
		changed = true
	}
	return changed
}

// recomputeStatistics overwrites the statistics object with counts derived
// from the actual issue lists. Counts are derived data, so this is always
// safe; it fires only when the remaining violations are all statistics
// invariants, so it never masks unrelated defects.
func recomputeStatistics(doc map[string]any, violations []schema.Violation) bool {
	if len(violations) == 0 {
		return false
	}
	for _, v := range violations {
		if v.Kind != schema.KindInvariantViolation || !strings.HasPrefix(v.Path, "statistics.") {
			return false
		}
	}
	return setStatisticsFromIssues(doc)
}

// filterLowConfidence drops issues whose confidence is below the schema
// floor, then recomputes statistics to match the shortened lists. Dropping
// is the only safe fix: a sub-floor confidence cannot be rewritten without
// misrepresenting what the reviewer found.
func filterLowConfidence(doc map[string]any, violations []schema.Violation) bool {
	applicable := false
	for _, v := range violations {
		if v.Kind == schema.KindRangeViolation && strings.HasSuffix(v.Path, ".confidence") {
			applicable = true
			break
		}
	}
	if !applicable {
		return false
	}

	issues, ok := doc["issues"].(map[string]any)
	if !ok {
		return false
	}
	changed := false
	for key, raw := range issues {
		list, ok := raw.([]any)
		if !ok {
			continue
		}
		kept := list[:0:0]
		for _, entry := range list {
			if issue, ok := entry.(map[string]any); ok {
				if conf, ok := issue["confidence"].(float64); ok && conf < schema.ConfidenceFloor {
					changed = true
					continue
				}
			}
			kept = append(kept, entry)
		}
		if kept == nil {
			kept = []any{}
		}
		issues[key] = kept
	}
	if changed {
		setStatisticsFromIssues(doc)
	}
	return changed
}

func setStatisticsFromIssues(doc map[string]any) bool {
	issues, ok := doc["issues"].(map[string]any)
	if !ok {
		return false
	}
	lengthOf := func(key string) float64 {
		if list, ok := issues[key].([]any); ok {
			return float64(len(list))
		}
		return 0
	}
	critical := lengthOf("critical")
	high := lengthOf("high")
	warnings := lengthOf("warnings")
	suggestions := lengthOf("suggestions")
	doc["statistics"] = map[string]any{
		"critical":    critical,
		"high":        high,
		"warnings":    warnings,
		"suggestions": suggestions,
		"total":       critical + high + warnings + suggestions,
	}
	return true
}
