package schema

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "SCHEMA004",
		Name:            "invalid-mode",
		Category:        core.CategorySchema,
		Description:     "mode is not one of single, restart, queued or parallel.",
		Severity:        core.SeverityError,
		Rationale:       invalidModeWhy,
		CheckAutomation: checkInvalidMode,
	})
}

const invalidModeWhy = "The runtime rejects automations with an unknown mode, so the whole automation fails to load."

func checkInvalidMode(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	var got string
	switch {
	case a.Mode != nil:
		if ir.IsValidMode(*a.Mode) {
			return nil
		}
		got = fmt.Sprintf("%q", *a.Mode)
	case a.HasKey("mode"):
		got = "a " + ir.TypeName(a.Extra["mode"])
	default:
		return nil
	}
	return []core.Finding{{
		RuleID:       "SCHEMA004",
		Severity:     core.SeverityError,
		Message:      fmt.Sprintf("mode is %s, expected one of %s", got, strings.Join(ir.Modes(), ", ")),
		WhyItMatters: invalidModeWhy,
		Path:         ir.JoinKey(a.Path, "mode"),
		SuggestedFix: core.ManualFix("Set mode to single, restart, queued or parallel."),
	}}
}
