// Package schema validates raw review output against the report contract.
//
// Validation is pure data production: it never fails part-way, it collects
// every violation it can find so that repair can act on the full defect
// list with a single validator invocation.
package schema

import "fmt"

// ViolationKind classifies a schema violation.
type ViolationKind string

const (
	KindParseError         ViolationKind = "ParseError"
	KindMissingField       ViolationKind = "MissingField"
	KindTypeMismatch       ViolationKind = "TypeMismatch"
	KindEnumViolation      ViolationKind = "EnumViolation"
	KindRangeViolation     ViolationKind = "RangeViolation"
	KindInvariantViolation ViolationKind = "InvariantViolation"
)

// Violation describes a single deviation from the report schema.
type Violation struct {
	Kind    ViolationKind
	Path    string
	Message string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s: %s", v.Kind, v.Path, v.Message)
}

// ValidationResult is the outcome of validating one raw text blob.
// Document is nil when the text did not parse as a single JSON object.
type ValidationResult struct {
	Valid      bool
	Document   map[string]any
	Violations []Violation
}

// Validate parses raw text as a single JSON object and walks it against
// the report schema. The walk is exhaustive; Valid is true only when no
// violations were found.
func Validate(raw string) ValidationResult {
	doc, parseErr := Parse(raw)
	if parseErr != nil {
		return ValidationResult{Violations: []Violation{*parseErr}}
	}
	violations := ValidateDocument(doc)
	return ValidationResult{
		Valid:      len(violations) == 0,
		Document:   doc,
		Violations: violations,
	}
}
