package schema

import (
	"fmt"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "SCHEMA009",
		Name:            "max-without-queued-mode",
		Category:        core.CategorySchema,
		Description:     "max is set but mode is not queued or parallel.",
		Severity:        core.SeverityWarn,
		Rationale:       maxWithoutQueuedModeWhy,
		CheckAutomation: checkMaxWithoutQueuedMode,
	})
}

const maxWithoutQueuedModeWhy = "max only applies to queued and parallel automations. " +
	"In other modes it is ignored, which usually means the intended mode was never set."

func checkMaxWithoutQueuedMode(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	if !a.HasKey("max") {
		return nil
	}
	mode := ir.ModeSingle
	if a.Mode != nil {
		mode = *a.Mode
	}
	if mode == ir.ModeQueued || mode == ir.ModeParallel || !ir.IsValidMode(mode) {
		return nil
	}
	return []core.Finding{{
		RuleID:       "SCHEMA009",
		Severity:     core.SeverityWarn,
		Message:      fmt.Sprintf("max has no effect in %s mode", mode),
		WhyItMatters: maxWithoutQueuedModeWhy,
		Path:         ir.JoinKey(a.Path, "max"),
		SuggestedFix: core.ManualFix("Set mode to queued or parallel, or remove max."),
	}}
}
