package schema

import (
	"fmt"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "SCHEMA012",
		Name:            "non-mapping-item",
		Category:        core.CategorySchema,
		Description:     "Trigger or action list contains an item that is not a mapping.",
		Severity:        core.SeverityError,
		Rationale:       nonMappingItemWhy,
		CheckAutomation: checkNonMappingItem,
	})
}

const nonMappingItemWhy = "Triggers and actions must be mappings. A bare value usually means a missing key or a stray list dash."

func checkNonMappingItem(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	var findings []core.Finding
	report := func(kind, path string, raw any) {
		findings = append(findings, core.Finding{
			RuleID:       "SCHEMA012",
			Severity:     core.SeverityError,
			Message:      fmt.Sprintf("%s item is a %s, expected a mapping", kind, ir.TypeName(raw)),
			WhyItMatters: nonMappingItemWhy,
			Path:         path,
			SuggestedFix: core.ManualFix("Rewrite the item as a mapping with its type key."),
		})
	}
	for _, t := range a.Triggers {
		if t.Fields() == nil {
			report("Trigger", t.Path, t.Raw)
		}
	}
	for _, act := range a.Actions {
		if act.Fields() == nil {
			report("Action", act.Path, act.Raw)
		}
	}
	return findings
}
