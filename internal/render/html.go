package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/dshills/reviewmend/internal/report"
)

// htmlGroup is the per-severity view model for the HTML template.
type htmlGroup struct {
	Title  string
	Class  string
	Label  string
	Issues []report.Issue
}

type htmlView struct {
	Report *report.ReviewReport
	Groups []htmlGroup
}

// HTML renders a report as a self-contained HTML document with per-severity
// issue cards and a statistics row.
func HTML(r *report.ReviewReport) (string, error) {
	view := htmlView{Report: r}
	for _, group := range r.Issues.BySeverity() {
		view.Groups = append(view.Groups, htmlGroup{
			Title:  sectionTitle(group.Severity),
			Class:  group.Severity.Label(),
			Label:  strings.ToUpper(group.Severity.Label()),
			Issues: group.Issues,
		})
	}

	var b strings.Builder
	if err := htmlTemplate.Execute(&b, view); err != nil {
		return "", fmt.Errorf("render.HTML: %w", err)
	}
	return b.String(), nil
}

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"confidence": func(c float64) string { return fmt.Sprintf("%.1f", c) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Code Review Report</title>
<style>
body { background: #1a1a1a; color: #e0e0e0; font-family: sans-serif; margin: 0; }
.container { max-width: 60rem; margin: 0 auto; padding: 1.5rem; background: #2a2a2a; }
h1, h2 { color: #ffffff; }
h1 { border-bottom: 3px solid #ff6f00; padding-bottom: 0.5rem; }
code { background: #1e1e1e; padding: 0.1rem 0.3rem; }
.stats { display: flex; gap: 1rem; flex-wrap: wrap; margin: 1rem 0; }
.stat { padding: 0.75rem 1.25rem; background: #1e1e1e; text-align: center; }
.stat .num { font-size: 1.5rem; font-weight: bold; color: #ffa726; }
.card { margin: 0.75rem 0; padding: 0.5rem 1rem; border-left: 4px solid #5d4037; }
.card.critical { border-color: #c62828; background: rgba(198, 40, 40, 0.15); }
.card.high { border-color: #c62828; background: rgba(198, 40, 40, 0.10); }
.card.warning { border-color: #d53d0d; background: rgba(213, 61, 13, 0.15); }
.card.suggestion { border-color: #5d4037; background: rgba(93, 64, 55, 0.15); }
.badge { font-weight: bold; margin-right: 0.5rem; }
.positive { border-left: 4px solid #2e7d32; padding-left: 1rem; }
</style>
</head>
<body>
<div class="container" role="main">
<h1>Code Review Report</h1>

<div class="stats" role="region" aria-label="Summary statistics">
<div class="stat"><div class="num">{{.Report.Statistics.Critical}}</div><div>Critical</div></div>
<div class="stat"><div class="num">{{.Report.Statistics.High}}</div><div>High</div></div>
<div class="stat"><div class="num">{{.Report.Statistics.Warnings}}</div><div>Warnings</div></div>
<div class="stat"><div class="num">{{.Report.Statistics.Suggestions}}</div><div>Suggestions</div></div>
<div class="stat"><div class="num">{{.Report.Statistics.Total}}</div><div>Total</div></div>
</div>

<section role="region" aria-label="Review context">
<h2>Context</h2>
<ul>
<li><strong>Change</strong>: {{.Report.Context.Change}}</li>
<li><strong>Scope</strong>: {{.Report.Context.Scope}}</li>
<li><strong>Impact</strong>: {{.Report.Context.Impact}}</li>
</ul>
</section>

{{range .Groups}}
<section role="region" aria-label="{{.Title}}">
<h2>{{.Title}}</h2>
{{if not .Issues}}<p>None found.</p>{{end}}
{{$class := .Class}}{{$label := .Label}}
{{range .Issues}}
<details class="card {{$class}}" open>
<summary><span class="badge">{{$label}}</span> {{.Description}} <em>(confidence {{confidence .Confidence}})</em></summary>
<p><strong>Location</strong>: <code>{{.Location}}</code></p>
{{if .Risk}}<p><strong>Risk</strong>: {{.Risk}}</p>{{end}}
{{if .RemediationPriority}}<p><strong>Remediation Priority</strong>: {{.RemediationPriority}}</p>{{end}}
{{if .WhyMatters}}<p><strong>Why This Matters</strong>: {{.WhyMatters}}</p>{{end}}
{{if .Impact}}<p><strong>Impact</strong>: {{.Impact}}</p>{{end}}
{{if .Suggestion}}<p><strong>Suggestion</strong>: {{.Suggestion}}</p>{{end}}
{{if .Benefit}}<p><strong>Benefit</strong>: {{.Benefit}}</p>{{end}}
{{if .Recommendation}}<p><strong>Recommendation</strong>: {{.Recommendation}}</p>{{end}}
</details>
{{end}}
</section>
{{end}}

{{if .Report.PositiveObservations}}
<section role="region" aria-label="Positive observations">
<h2>Positive Observations</h2>
<div class="positive"><ul>
{{range .Report.PositiveObservations}}<li><strong>{{.Category}}</strong>: {{.Observation}}</li>
{{end}}</ul></div>
</section>
{{end}}

<section role="region" aria-label="Summary">
<h2>Summary</h2>
<ul>
<li><strong>Overall Assessment</strong>: {{.Report.Summary.Assessment}}</li>
<li><strong>Priority Focus</strong>: {{.Report.Summary.PriorityFocus}}</li>
</ul>
<p>{{.Report.Summary.DetailedSummary}}</p>
</section>

</div>
</body>
</html>
`))
