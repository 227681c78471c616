// Package redact scrubs secret-shaped text before it is embedded in
// fallback reports or CI comments. Raw model output can echo credentials
// from the change under review; excerpts of it must not.
package redact

import "regexp"

var patterns = []*regexp.Regexp{
	// AWS access key IDs
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	// AWS secret access keys after common assignment prefixes
	regexp.MustCompile(`(?i)(aws_secret_access_key|aws_secret)\s*[:=]\s*[A-Za-z0-9/+=]{40}`),
	// Private key blocks
	regexp.MustCompile(`-----BEGIN [A-Z ]+PRIVATE KEY-----[\s\S]*?-----END [A-Z ]+PRIVATE KEY-----`),
	// Bearer tokens
	regexp.MustCompile(`Bearer\s+[A-Za-z0-9\-._~+/]+=*`),
	// Model-provider API keys, which reviewed diffs echo without any
	// assignment prefix (OpenAI/Anthropic sk- style)
	regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{16,}`),
	// GitHub tokens
	regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{36,}`),
	// Generic key/secret/token/password assignments
	regexp.MustCompile(`(?i)(api[_-]?key|api[_-]?secret|secret[_-]?key|token|password|passwd|credentials)\s*[:=]\s*\S+`),
}

// Scrub replaces secret patterns in text with [REDACTED].
func Scrub(text string) string {
	for _, p := range patterns {
		text = p.ReplaceAllString(text, "[REDACTED]")
	}
	return text
}
