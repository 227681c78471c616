package repair

import (
	"encoding/json"
	"strings"
)

// stripTrailingContent truncates text after the first complete JSON value,
// dropping the prose some models append after the closing brace.
func stripTrailingContent(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	dec := json.NewDecoder(strings.NewReader(trimmed))
	var v any
	if err := dec.Decode(&v); err != nil {
		return text, false
	}
	offset := int(dec.InputOffset())
	if offset >= len(trimmed) || strings.TrimSpace(trimmed[offset:]) == "" {
		return text, false
	}
	return trimmed[:offset], true
}

// stripLeadingContent removes markdown fences and preamble text before the
// first opening brace.
func stripLeadingContent(text string) (string, bool) {
	s := strings.TrimSpace(text)

	// Fenced block: drop the opening fence line and the closing fence.
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = ""
		}
		if end := strings.LastIndex(s, "```"); end >= 0 {
			s = s[:end]
		}
		s = strings.TrimSpace(s)
	}

	if start := strings.Index(s, "{"); start > 0 {
		s = s[start:]
	}
	if s == strings.TrimSpace(text) {
		return text, false
	}
	return s, true
}

// stripTrailingCommas removes commas that directly precede a closing brace
// or bracket, a frequent model mistake that the JSON grammar rejects.
func stripTrailingCommas(text string) (string, bool) {
	var b strings.Builder
	b.Grow(len(text))
	changed := false
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case c == ',' && !inString:
			j := i + 1
			for j < len(text) && isJSONSpace(text[j]) {
				j++
			}
			if j < len(text) && (text[j] == '}' || text[j] == ']') {
				changed = true
				continue
			}
		}
		b.WriteByte(c)
	}
	if !changed {
		return text, false
	}
	return b.String(), true
}

// balanceBrackets appends the minimal closing sequence to a truncated
// document: a closing quote if the text ends inside a string, then the
// closers for every unmatched brace and bracket. It repairs syntax only;
// missing field values stay missing.
func balanceBrackets(text string) (string, bool) {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{' || c == '[':
			stack = append(stack, c)
		case c == '}' || c == ']':
			if len(stack) == 0 {
				return text, false
			}
			open := stack[len(stack)-1]
			if (c == '}' && open != '{') || (c == ']' && open != '[') {
				return text, false
			}
			stack = stack[:len(stack)-1]
		}
	}

	if !inString && len(stack) == 0 {
		return text, false
	}

	body := strings.TrimRight(text, " \t\r\n")
	if !inString && strings.HasSuffix(body, ",") {
		// A comma right before a synthesized closer would re-break the parse.
		body = strings.TrimSuffix(body, ",")
	}
	var b strings.Builder
	b.WriteString(body)
	if inString {
		b.WriteByte('"')
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String(), true
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
