package lint

import (
	"cmp"
	"slices"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/render"
)

// Summary counts findings by severity.
type Summary struct {
	ErrorsCount   int `json:"errors_count"`
	WarningsCount int `json:"warnings_count"`
	InfoCount     int `json:"info_count"`
}

// Total returns the number of counted findings.
func (s Summary) Total() int {
	return s.ErrorsCount + s.WarningsCount + s.InfoCount
}

// Summarize counts findings by severity.
func Summarize(findings []core.Finding) Summary {
	var s Summary
	for _, f := range findings {
		switch f.Severity {
		case core.SeverityError:
			s.ErrorsCount++
		case core.SeverityWarn:
			s.WarningsCount++
		case core.SeverityInfo:
			s.InfoCount++
		}
	}
	return s
}

// Report is the result of linting one document.
type Report struct {
	EngineVersion       string         `json:"engine_version"`
	RulesetVersion      string         `json:"ruleset_version"`
	AutomationsDetected int            `json:"automations_detected"`
	Findings            []core.Finding `json:"findings"`
	Summary             Summary        `json:"summary"`
}

// HasErrors reports whether any finding has ERROR severity.
func (r *Report) HasErrors() bool {
	return r.Summary.ErrorsCount > 0
}

// FixResult is the result of fixing one document.
type FixResult struct {
	// FixedText is nil when nothing was applied.
	FixedText    *string        `json:"fixed_text,omitempty"`
	AppliedFixes []string       `json:"applied_fixes"`
	Findings     []core.Finding `json:"findings"`
	Summary      Summary        `json:"summary"`
	Diff         *render.Diff   `json:"diff_summary,omitempty"`
}

// SortFindings orders findings by automation index, then rule id, then path.
// Findings not tied to an automation sort first.
func SortFindings(findings []core.Finding) {
	slices.SortStableFunc(findings, func(a, b core.Finding) int {
		return cmp.Or(
			cmp.Compare(ir.AutomationIndex(a.Path), ir.AutomationIndex(b.Path)),
			cmp.Compare(a.RuleID, b.RuleID),
			cmp.Compare(a.Path, b.Path),
		)
	})
}
