package maintainability

import (
	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "MAINT005",
		Name:            "device-id-reference",
		Category:        core.CategoryMaintainability,
		Description:     "Automation refers to a device by device_id.",
		Severity:        core.SeverityInfo,
		Disabled:        true,
		Rationale:       deviceIDReferenceWhy,
		CheckAutomation: checkDeviceIDReference,
	})
}

const deviceIDReferenceWhy = "Device ids are opaque and change when hardware is replaced. Entity ids are readable and can be moved to a new device."

func checkDeviceIDReference(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	var findings []core.Finding
	visit := func(path, key string, v any) {
		if key != "device_id" {
			return
		}
		if _, ok := v.(string); !ok {
			return
		}
		findings = append(findings, core.Finding{
			RuleID:       "MAINT005",
			Severity:     core.SeverityInfo,
			Message:      "Device referenced by device_id",
			WhyItMatters: deviceIDReferenceWhy,
			Path:         path,
			SuggestedFix: core.ManualFix("Use the equivalent entity trigger, condition or action with an entity_id."),
		})
	}
	for _, t := range a.Triggers {
		ir.Walk(t.Raw, t.Path, visit)
	}
	for _, c := range a.Conditions {
		ir.Walk(c.Raw, c.Path, visit)
	}
	for _, act := range a.Actions {
		ir.Walk(act.Raw, act.Path, visit)
	}
	return findings
}
