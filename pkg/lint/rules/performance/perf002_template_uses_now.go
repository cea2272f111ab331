package performance

import (
	"regexp"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "PERF002",
		Name:            "template-uses-now",
		Category:        core.CategoryPerformance,
		Description:     "Trigger template calls now().",
		Severity:        core.SeverityWarn,
		Rationale:       templateUsesNowWhy,
		CheckAutomation: checkTemplateUsesNow,
	})
}

const templateUsesNowWhy = "A trigger template that calls now() is re-rendered every minute for as long as the automation is loaded, " +
	"instead of only when a referenced entity changes."

var nowCall = regexp.MustCompile(`\b(?:utc)?now\s*\(`)

func checkTemplateUsesNow(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	var findings []core.Finding
	for _, t := range a.Triggers {
		ir.Walk(t.Raw, t.Path, func(path, _ string, v any) {
			s, ok := v.(string)
			if !ok || !ir.IsTemplate(s) || !nowCall.MatchString(s) {
				return
			}
			findings = append(findings, core.Finding{
				RuleID:       "PERF002",
				Severity:     core.SeverityWarn,
				Message:      "Trigger template calls now() and is re-evaluated every minute",
				WhyItMatters: templateUsesNowWhy,
				Path:         path,
				SuggestedFix: core.ManualFix("Use a time or time_pattern trigger and move the comparison into a condition."),
			})
		})
	}
	return findings
}
