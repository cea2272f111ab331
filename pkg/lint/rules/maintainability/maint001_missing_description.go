package maintainability

import (
	"fmt"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "MAINT001",
		Name:            "missing-description",
		Category:        core.CategoryMaintainability,
		Description:     "Automation has no description.",
		Severity:        core.SeverityInfo,
		FixSafety:       core.FixSafetyMetadata,
		Rationale:       missingDescriptionWhy,
		CheckAutomation: checkMissingDescription,
	})
}

const missingDescriptionWhy = "A description records what the automation is for, which is what you need when revisiting it months later."

func checkMissingDescription(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	if a.HasKey("description") {
		return nil
	}
	return []core.Finding{{
		RuleID:       "MAINT001",
		Severity:     core.SeverityInfo,
		Message:      fmt.Sprintf("Automation %q has no description", a.DisplayName()),
		WhyItMatters: missingDescriptionWhy,
		Path:         a.Path,
		SuggestedFix: core.SetFieldFix("Add a description field", "description", ""),
	}}
}
