package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripTrailingContent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		changed bool
	}{
		{"prose after brace", "{\"a\": 1}\n\nHope this helps!", `{"a": 1}`, true},
		{"already clean", `{"a": 1}`, `{"a": 1}`, false},
		{"no json", "just prose", "just prose", false},
		{"trailing brace in prose", "{\"a\": \"x\"} see {above}", `{"a": "x"}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := stripTrailingContent(tt.input)
			assert.Equal(t, tt.changed, changed)
			if changed {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStripLeadingContent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		changed bool
	}{
		{"fenced", "```json\n{\"a\": 1}\n```", `{"a": 1}`, true},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`, true},
		{"preamble", "Here is the review:\n{\"a\": 1}", `{"a": 1}`, true},
		{"clean", `{"a": 1}`, `{"a": 1}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := stripLeadingContent(tt.input)
			assert.Equal(t, tt.changed, changed, "changed flag")
			if changed {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStripTrailingCommas(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		changed bool
	}{
		{"object", `{"a": 1,}`, `{"a": 1}`, true},
		{"array", `{"a": [1, 2,]}`, `{"a": [1, 2]}`, true},
		{"with whitespace", "{\"a\": 1,\n}", "{\"a\": 1\n}", true},
		{"comma inside string", `{"a": "one, two,"}`, `{"a": "one, two,"}`, false},
		{"clean", `{"a": [1, 2]}`, `{"a": [1, 2]}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := stripTrailingCommas(tt.input)
			assert.Equal(t, tt.changed, changed, "changed flag")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBalanceBrackets(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		changed bool
	}{
		{"open object", `{"a": 1`, `{"a": 1}`, true},
		{"nested", `{"a": {"b": [1, 2`, `{"a": {"b": [1, 2]}}`, true},
		{"unterminated string", `{"a": "fix bug`, `{"a": "fix bug"}`, true},
		{"dangling comma", `{"a": 1,`, `{"a": 1}`, true},
		{"balanced", `{"a": 1}`, `{"a": 1}`, false},
		{"mismatched", `{"a": ]`, `{"a": ]`, false},
		{"escaped quote", `{"a": "say \"hi`, `{"a": "say \"hi"}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := balanceBrackets(tt.input)
			require.Equal(t, tt.changed, changed, "changed flag")
			assert.Equal(t, tt.want, got)
		})
	}
}
