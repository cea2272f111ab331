package schema

import (
	"fmt"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "SCHEMA005",
		Name:            "missing-trigger",
		Category:        core.CategorySchema,
		Description:     "Automation has actions but no trigger.",
		Severity:        core.SeverityError,
		Rationale:       missingTriggerWhy,
		CheckAutomation: checkMissingTrigger,
	})
}

const missingTriggerWhy = "Without a trigger the actions can only run when started by hand, " +
	"which is rarely what an automation is for."

func checkMissingTrigger(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	if len(a.Triggers) > 0 || len(a.Actions) == 0 {
		return nil
	}
	return []core.Finding{{
		RuleID:       "SCHEMA005",
		Severity:     core.SeverityError,
		Message:      fmt.Sprintf("Automation %q has actions but no trigger", a.DisplayName()),
		WhyItMatters: missingTriggerWhy,
		Path:         a.Path,
		SuggestedFix: core.ManualFix("Add a trigger, or move the actions into a script."),
	}}
}
