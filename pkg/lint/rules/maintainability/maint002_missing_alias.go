package maintainability

import (
	"fmt"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "MAINT002",
		Name:            "missing-alias",
		Category:        core.CategoryMaintainability,
		Description:     "Automation has no alias.",
		Severity:        core.SeverityInfo,
		FixSafety:       core.FixSafetyMetadata,
		Rationale:       missingAliasWhy,
		CheckAutomation: checkMissingAlias,
	})
}

const missingAliasWhy = "The alias is the name shown in the UI, logbook and traces. Without one the automation is listed by a generated name."

func checkMissingAlias(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	if a.HasKey("alias") {
		return nil
	}
	return []core.Finding{{
		RuleID:       "MAINT002",
		Severity:     core.SeverityInfo,
		Message:      fmt.Sprintf("Automation %q has no alias", a.DisplayName()),
		WhyItMatters: missingAliasWhy,
		Path:         a.Path,
		SuggestedFix: core.SetFieldFix("Add an alias field", "alias", ""),
	}}
}
