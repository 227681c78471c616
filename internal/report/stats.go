package report

// ComputeStatistics derives per-severity counts from the actual issue lists.
// Counts are derived data, never source-of-truth: callers that mutate issue
// lists must recompute statistics afterward.
func ComputeStatistics(issues Issues) Statistics {
	s := Statistics{
		Critical:    len(issues.Critical),
		High:        len(issues.High),
		Warnings:    len(issues.Warnings),
		Suggestions: len(issues.Suggestions),
	}
	s.Total = s.Critical + s.High + s.Warnings + s.Suggestions
	return s
}

// Consistent reports whether the statistics match the issue lists.
func (s Statistics) Consistent(issues Issues) bool {
	return s == ComputeStatistics(issues)
}
