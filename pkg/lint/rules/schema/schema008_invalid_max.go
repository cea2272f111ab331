package schema

import (
	"fmt"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "SCHEMA008",
		Name:            "invalid-max",
		Category:        core.CategorySchema,
		Description:     "max is not a positive integer.",
		Severity:        core.SeverityError,
		Rationale:       invalidMaxWhy,
		CheckAutomation: checkInvalidMax,
	})
}

const invalidMaxWhy = "max caps concurrent or queued runs and must be a positive integer; other values make the automation fail to load."

func checkInvalidMax(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	var got string
	switch {
	case a.Max != nil:
		if *a.Max > 0 {
			return nil
		}
		got = fmt.Sprintf("%d", *a.Max)
	case a.HasKey("max"):
		if s, ok := ir.ScalarString(a.Extra["max"]); ok {
			got = fmt.Sprintf("%q", s)
		} else {
			got = "a " + ir.TypeName(a.Extra["max"])
		}
	default:
		return nil
	}
	return []core.Finding{{
		RuleID:       "SCHEMA008",
		Severity:     core.SeverityError,
		Message:      fmt.Sprintf("max is %s, expected a positive integer", got),
		WhyItMatters: invalidMaxWhy,
		Path:         ir.JoinKey(a.Path, "max"),
		SuggestedFix: core.ManualFix("Set max to a whole number of at least 1."),
	}}
}
