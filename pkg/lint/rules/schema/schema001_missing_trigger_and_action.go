package schema

import (
	"fmt"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "SCHEMA001",
		Name:            "missing-trigger-and-action",
		Category:        core.CategorySchema,
		Description:     "Automation has neither a trigger nor an action.",
		Severity:        core.SeverityError,
		Rationale:       missingTriggerAndActionWhy,
		CheckAutomation: checkMissingTriggerAndAction,
	})
}

const missingTriggerAndActionWhy = "An automation with no trigger and no action can never run and does nothing. " +
	"This is usually an indentation mistake that detached the automation's body."

func checkMissingTriggerAndAction(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	if len(a.Triggers) > 0 || len(a.Actions) > 0 {
		return nil
	}
	return []core.Finding{{
		RuleID:       "SCHEMA001",
		Severity:     core.SeverityError,
		Message:      fmt.Sprintf("Automation %q has no trigger and no action", a.DisplayName()),
		WhyItMatters: missingTriggerAndActionWhy,
		Path:         a.Path,
		SuggestedFix: core.ManualFix("Add at least one trigger and one action, or remove the automation."),
	}}
}
