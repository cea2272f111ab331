package schema

import (
	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "SCHEMA007",
		Name:            "trigger-missing-platform",
		Category:        core.CategorySchema,
		Description:     "Trigger does not say what kind of trigger it is.",
		Severity:        core.SeverityError,
		Rationale:       triggerMissingPlatformWhy,
		CheckAutomation: checkTriggerMissingPlatform,
	})
}

const triggerMissingPlatformWhy = "Every trigger needs a platform (or trigger) key naming its type; without it the automation fails to load."

func checkTriggerMissingPlatform(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	var findings []core.Finding
	for _, t := range a.Triggers {
		if t.Fields() == nil || t.Platform != "" {
			continue
		}
		findings = append(findings, core.Finding{
			RuleID:       "SCHEMA007",
			Severity:     core.SeverityError,
			Message:      "Trigger has no platform",
			WhyItMatters: triggerMissingPlatformWhy,
			Path:         t.Path,
			SuggestedFix: core.ManualFix("Add platform: (or trigger:) with the trigger type, e.g. state."),
		})
	}
	return findings
}
