package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		words  int
		tokens int
		lines  int
	}{
		{"empty", "", 0, 0, 1},
		{"whitespace only", "   \n\t ", 0, 0, 2},
		{"three words", "one two three", 3, 4, 1},
		{"collapsed whitespace", "one\t\ttwo\n three", 3, 4, 2},
		{"six words", "the quick brown fox jumps over", 6, 8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Estimate(tt.input)
			assert.Equal(t, tt.words, s.Words, "words")
			assert.Equal(t, tt.tokens, s.Tokens, "tokens")
			assert.Equal(t, tt.lines, s.Lines, "lines")
			assert.Equal(t, len(tt.input), s.Characters, "characters")
			assert.False(t, s.Exact)
		})
	}
}

func TestCountFallsBackCleanly(t *testing.T) {
	// The encoding may not be loadable in an offline environment; either
	// way the word-derived fields must be populated.
	s := Count("a small piece of text")
	assert.Equal(t, 5, s.Words)
	assert.Positive(t, s.Tokens)
	if !s.Exact {
		assert.Equal(t, Estimate("a small piece of text").Tokens, s.Tokens)
	}
}
