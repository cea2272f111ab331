package maintainability

import (
	"fmt"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "MAINT004",
		Name:            "long-action-sequence",
		Category:        core.CategoryMaintainability,
		Description:     "Automation has more top-level actions than max_actions.",
		Severity:        core.SeverityInfo,
		ConfigKeys:      []string{"max_actions"},
		Rationale:       longActionSequenceWhy,
		CheckAutomation: checkLongActionSequence,
	})
}

const longActionSequenceWhy = "Long action lists are hard to follow and to test. Moving steps into scripts makes them reusable and traceable."

// DefaultMaxActions is the MAINT004 threshold.
const DefaultMaxActions = 15

type longActionSequenceOptions struct {
	MaxActions int `mapstructure:"max_actions"`
}

func checkLongActionSequence(a *ir.AutomationIR, opts map[string]any) []core.Finding {
	cfg := longActionSequenceOptions{MaxActions: DefaultMaxActions}
	if err := lint.DecodeOptions(opts, &cfg); err != nil || cfg.MaxActions <= 0 {
		cfg.MaxActions = DefaultMaxActions
	}

	if len(a.Actions) <= cfg.MaxActions {
		return nil
	}
	return []core.Finding{{
		RuleID:       "MAINT004",
		Severity:     core.SeverityInfo,
		Message:      fmt.Sprintf("Automation %q has %d actions (threshold: %d)", a.DisplayName(), len(a.Actions), cfg.MaxActions),
		WhyItMatters: longActionSequenceWhy,
		Path:         ir.JoinKey(a.Path, a.ActionKey()),
		SuggestedFix: core.ManualFix("Split the actions into one or more scripts."),
	}}
}
