package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/autolint/internal/cli/output"
	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

// renderLintResults writes one report per input. JSON output is the bare
// report for a single input and a list of {path, report} otherwise.
func renderLintResults(r *output.Renderer, results []fileReport) error {
	mode := r.EffectiveMode()
	if mode == output.ModeJSON {
		if len(results) == 1 {
			return r.JSON(results[0].Report)
		}
		return r.JSON(results)
	}

	for i, res := range results {
		if i > 0 {
			r.Println("")
		}
		renderReport(r, res.Path, res.Report.Findings, res.Report.Summary, res.Report.AutomationsDetected)
	}
	return nil
}

// renderReport writes the findings of one document as a table followed by a
// summary line. A negative automations count is left out.
func renderReport(r *output.Renderer, path string, findings []core.Finding, summary lint.Summary, automations int) {
	markdown := r.EffectiveMode() == output.ModeMarkdown

	if markdown {
		r.Header(path)
	} else {
		r.Println(r.Styles().Path.Render(path))
	}

	scope := ""
	if automations >= 0 {
		scope = fmt.Sprintf(" in %d automations", automations)
	}

	if len(findings) == 0 {
		r.Success("No issues found" + scope)
		return
	}

	writeFindingsTable(r.Writer(), r.Styles(), findings, markdown)

	line := fmt.Sprintf("%d errors, %d warnings, %d info%s",
		summary.ErrorsCount, summary.WarningsCount, summary.InfoCount, scope)
	if markdown {
		r.Println("")
		r.Println("**Summary:** " + line)
		return
	}
	r.Println(r.Styles().Bold.Render("Summary: ") + line)
}

// writeFindingsTable renders findings with go-pretty.
func writeFindingsTable(w io.Writer, styles *output.Styles, findings []core.Finding, markdown bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Severity", "Rule", "Path", "Message", "Fix"})

	for _, f := range findings {
		sev := f.Severity.String()
		if !markdown {
			sev = styles.SeverityLabel(f.Severity)
		}
		t.AppendRow(table.Row{sev, f.RuleID, f.Path, f.Message, fixLabel(f.SuggestedFix)})
	}

	if markdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

// fixLabel describes a suggested fix in one cell.
func fixLabel(fix *core.SuggestedFix) string {
	if fix == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", fix.Kind, fix.Summary)
}
