package schema

import (
	"fmt"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "SCHEMA006",
		Name:            "missing-action",
		Category:        core.CategorySchema,
		Description:     "Automation has triggers but no action.",
		Severity:        core.SeverityError,
		Rationale:       missingActionWhy,
		CheckAutomation: checkMissingAction,
	})
}

const missingActionWhy = "The automation fires but does nothing, which wastes work on every trigger and hides unfinished configuration."

func checkMissingAction(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	if len(a.Actions) > 0 || len(a.Triggers) == 0 {
		return nil
	}
	return []core.Finding{{
		RuleID:       "SCHEMA006",
		Severity:     core.SeverityError,
		Message:      fmt.Sprintf("Automation %q has triggers but no action", a.DisplayName()),
		WhyItMatters: missingActionWhy,
		Path:         a.Path,
		SuggestedFix: core.ManualFix("Add at least one action."),
	}}
}
