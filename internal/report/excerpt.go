package report

import "strings"

// DefaultExcerptLimit bounds the raw-text excerpt embedded in fallback
// reports.
const DefaultExcerptLimit = 500

// Excerpt returns at most limit runes of text, appending a truncation
// marker when text was cut. Control characters other than newline and tab
// are replaced so the excerpt is safe to embed in a JSON string field.
func Excerpt(text string, limit int) string {
	if limit <= 0 {
		limit = DefaultExcerptLimit
	}
	var b strings.Builder
	count := 0
	truncated := false
	for _, r := range text {
		if count >= limit {
			truncated = true
			break
		}
		if r < 0x20 && r != '\n' && r != '\t' {
			r = '�'
		}
		b.WriteRune(r)
		count++
	}
	if truncated {
		b.WriteString(" [...truncated]")
	}
	return b.String()
}
