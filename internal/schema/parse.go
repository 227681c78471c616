package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Parse decodes raw text as exactly one JSON object. Trailing non-whitespace
// content, syntax errors, and non-object top-level values all yield a
// ParseError violation carrying the byte offset when the decoder provides one.
func Parse(raw string) (map[string]any, *Violation) {
	if strings.TrimSpace(raw) == "" {
		return nil, &Violation{Kind: KindParseError, Path: "$", Message: "empty input"}
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, parseViolation(err)
	}

	doc, ok := value.(map[string]any)
	if !ok {
		return nil, &Violation{
			Kind:    KindParseError,
			Path:    "$",
			Message: fmt.Sprintf("top-level value must be an object, got %s", jsonTypeName(value)),
		}
	}
	return doc, nil
}

func parseViolation(err error) *Violation {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &Violation{
			Kind:    KindParseError,
			Path:    "$",
			Message: fmt.Sprintf("%s (offset %d)", syntaxErr.Error(), syntaxErr.Offset),
		}
	}
	return &Violation{Kind: KindParseError, Path: "$", Message: err.Error()}
}

// jsonTypeName names a decoded JSON value's type for violation messages.
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
