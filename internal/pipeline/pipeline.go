// Package pipeline runs raw review output through validation, bounded
// repair, and fallback synthesis. It always produces a schema-valid report
// and never returns an error to the caller: degradation is communicated
// in-band through the report's summary.
package pipeline

import (
	"fmt"

	"github.com/dshills/reviewmend/internal/redact"
	"github.com/dshills/reviewmend/internal/repair"
	"github.com/dshills/reviewmend/internal/report"
	"github.com/dshills/reviewmend/internal/schema"
)

// Path identifies which pipeline path produced the final report.
type Path string

const (
	PathValidated Path = "validated"
	PathRepaired  Path = "repaired"
	PathFallback  Path = "fallback"
)

// Options tunes a pipeline run. The zero value selects the defaults.
type Options struct {
	// AttemptBudget bounds repair validation cycles. Negative means the
	// default; zero disables repair entirely.
	AttemptBudget int
	// ExcerptLimit bounds the raw-text excerpt embedded in fallback
	// reports. Zero or negative means the default.
	ExcerptLimit int
	// Redact scrubs secret-shaped text from the fallback excerpt.
	Redact bool
}

// Outcome is the result of one pipeline run. Report is always non-nil and
// schema-valid.
type Outcome struct {
	Report       *report.ReviewReport
	Path         Path
	AttemptsUsed int
	StrategyLog  []string
	Violations   []schema.Violation
}

// Process validates raw text, repairs it within the attempt budget, and
// falls back to a minimal degraded report when repair cannot succeed. Each
// invocation is a pure function of its inputs; runs share no state and may
// proceed concurrently.
func Process(raw string, opts Options) Outcome {
	budget := opts.AttemptBudget
	if budget < 0 {
		budget = repair.DefaultBudget
	}

	vr := schema.Validate(raw)
	if vr.Valid {
		if r, err := schema.Decode(vr.Document); err == nil {
			return Outcome{Report: r, Path: PathValidated}
		}
	}

	if budget > 0 {
		res := repair.Repair(raw, vr, budget)
		if res.Document != nil {
			if r, err := schema.Decode(res.Document); err == nil {
				return Outcome{
					Report:       r,
					Path:         PathRepaired,
					AttemptsUsed: res.AttemptsUsed,
					StrategyLog:  res.StrategyLog,
				}
			}
		}
		return fallbackOutcome(raw, vr, res, opts)
	}

	return fallbackOutcome(raw, vr, repair.Result{}, opts)
}

func fallbackOutcome(raw string, vr schema.ValidationResult, res repair.Result, opts Options) Outcome {
	excerpt := raw
	if opts.Redact {
		excerpt = redact.Scrub(excerpt)
	}
	excerpt = report.Excerpt(excerpt, opts.ExcerptLimit)

	return Outcome{
		Report:       report.Fallback(fallbackReason(vr, res), excerpt),
		Path:         PathFallback,
		AttemptsUsed: res.AttemptsUsed,
		StrategyLog:  res.StrategyLog,
		Violations:   vr.Violations,
	}
}

// fallbackReason summarizes why repair gave up, leading with the first
// violation since parse errors and missing sections explain most failures.
func fallbackReason(vr schema.ValidationResult, res repair.Result) string {
	if len(vr.Violations) == 0 {
		return "output did not validate"
	}
	first := vr.Violations[0]
	if len(vr.Violations) == 1 {
		return fmt.Sprintf("%s (after %d repair attempts)", first.Error(), res.AttemptsUsed)
	}
	return fmt.Sprintf("%s and %d more violations (after %d repair attempts)",
		first.Error(), len(vr.Violations)-1, res.AttemptsUsed)
}
