// Package renderer turns engine results into Markdown reports.
//
// Reports with a fixed layout are text/template files embedded in the
// package, assembled from partials by renderTemplate. Tabular reports whose
// columns depend on the data are built with the markdown builder.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"math"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// funcs are the helpers available to every template.
var funcs = template.FuncMap{
	"ratio":  func(f float64) string { return fmt.Sprintf("%.4f", f) },
	"fixed2": func(f float64) string { return fmt.Sprintf("%.2f", f) },
	"bar":    bar,
}

// bar draws count as a row of blocks, max filling width cells.
func bar(count, max float64, width int) string {
	if max <= 0 || count <= 0 {
		return ""
	}
	n := int(math.Round(count / max * float64(width)))
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// RenderAppraisal renders an investment appraisal report.
func RenderAppraisal(a *Appraisal) string {
	partials := map[string]string{
		"appraisal_flows":   "appraisal_flows.md",
		"appraisal_metrics": "appraisal_metrics.md",
	}
	return renderTemplate("appraisal", "appraisal.md", partials, a)
}

// LoanRenderOptions holds configuration for rendering a loan report.
type LoanRenderOptions struct {
	SkipSchedule bool // Only render the loan summary.
}

// RenderLoan renders a loan summary followed by its amortization table.
func RenderLoan(l *Loan, opts LoanRenderOptions) string {
	partials := map[string]string{
		"loan_summary":  "loan_summary.md",
		"loan_schedule": "loan_schedule.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipSchedule {
		partials["loan_schedule"] = ""
	}
	return renderTemplate("loan", "loan.md", partials, l)
}

// RenderRisk renders the summary of a Monte Carlo simulation.
func RenderRisk(r *Risk) string {
	partials := map[string]string{
		"risk_summary":   "risk_summary.md",
		"risk_histogram": "risk_histogram.md",
	}
	return renderTemplate("risk", "risk.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
