package maintainability

import (
	"fmt"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "MAINT003",
		Name:            "missing-id",
		Category:        core.CategoryMaintainability,
		Description:     "Automation has no id.",
		Severity:        core.SeverityInfo,
		Rationale:       missingIDWhy,
		CheckAutomation: checkMissingID,
	})
}

const missingIDWhy = "Without an id the automation cannot be edited in the UI and its traces are not kept across restarts."

func checkMissingID(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	if a.HasKey("id") {
		return nil
	}
	return []core.Finding{{
		RuleID:       "MAINT003",
		Severity:     core.SeverityInfo,
		Message:      fmt.Sprintf("Automation %q has no id", a.DisplayName()),
		WhyItMatters: missingIDWhy,
		Path:         a.Path,
		SuggestedFix: core.ManualFix("Add an id that is unique across all automations."),
	}}
}
