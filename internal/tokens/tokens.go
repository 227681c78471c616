// Package tokens estimates token counts for AI context budgeting.
package tokens

import (
	"regexp"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// encodingName is the BPE encoding used for exact counts.
const encodingName = "cl100k_base"

var whitespace = regexp.MustCompile(`\s+`)

// Stats describes one analyzed text.
type Stats struct {
	Words      int
	Tokens     int
	Characters int
	Lines      int
	// Exact is true when Tokens came from the BPE tokenizer rather than
	// the word-count heuristic.
	Exact bool
}

// Count analyzes text, preferring an exact BPE token count and falling
// back to Estimate when the encoding cannot be loaded (e.g. offline).
func Count(text string) Stats {
	s := baseStats(text)
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		s.Tokens = estimateTokens(s.Words)
		return s
	}
	s.Tokens = len(enc.Encode(text, nil, nil))
	s.Exact = true
	return s
}

// Estimate analyzes text with the word-based approximation only; roughly
// one token per 0.75 words for English text.
func Estimate(text string) Stats {
	s := baseStats(text)
	s.Tokens = estimateTokens(s.Words)
	return s
}

func baseStats(text string) Stats {
	normalized := whitespace.ReplaceAllString(strings.TrimSpace(text), " ")
	words := 0
	if normalized != "" {
		words = len(strings.Split(normalized, " "))
	}
	return Stats{
		Words:      words,
		Characters: len(text),
		Lines:      len(strings.Split(text, "\n")),
	}
}

func estimateTokens(words int) int {
	return int(float64(words) / 0.75)
}
