package report

// Impact indicates the blast radius of the change under review.
type Impact string

const (
	ImpactLow    Impact = "Low"
	ImpactMedium Impact = "Medium"
	ImpactHigh   Impact = "High"
)

func (i Impact) Valid() bool {
	switch i {
	case ImpactLow, ImpactMedium, ImpactHigh:
		return true
	}
	return false
}

// Assessment indicates the overall readiness of the change.
type Assessment string

const (
	AssessmentReady     Assessment = "Ready"
	AssessmentNeedsWork Assessment = "NeedsWork"
	AssessmentBlocked   Assessment = "Blocked"
)

func (a Assessment) Valid() bool {
	switch a {
	case AssessmentReady, AssessmentNeedsWork, AssessmentBlocked:
		return true
	}
	return false
}

// RemediationPriority indicates how urgently a critical or high issue
// should be addressed.
type RemediationPriority string

const (
	PriorityImmediate   RemediationPriority = "Immediate"
	PriorityBeforeMerge RemediationPriority = "BeforeMerge"
	PriorityFollowUp    RemediationPriority = "FollowUp"
)

func (p RemediationPriority) Valid() bool {
	switch p {
	case PriorityImmediate, PriorityBeforeMerge, PriorityFollowUp:
		return true
	}
	return false
}

// Severity identifies one of the four issue lists. The values match the
// JSON keys of the issues object, so warnings and suggestions are plural.
type Severity string

const (
	SeverityCritical   Severity = "critical"
	SeverityHigh       Severity = "high"
	SeverityWarning    Severity = "warnings"
	SeveritySuggestion Severity = "suggestions"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityWarning, SeveritySuggestion:
		return true
	}
	return false
}

// Label returns the singular human-readable form used in rendered output.
func (s Severity) Label() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityWarning:
		return "warning"
	case SeveritySuggestion:
		return "suggestion"
	}
	return string(s)
}
