package performance

import (
	"fmt"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "PERF003",
		Name:            "wait-without-timeout",
		Category:        core.CategoryPerformance,
		Description:     "Wait action has no timeout.",
		Severity:        core.SeverityWarn,
		Rationale:       waitWithoutTimeoutWhy,
		CheckAutomation: checkWaitWithoutTimeout,
	})
}

const waitWithoutTimeoutWhy = "A wait without a timeout can keep a run open forever. " +
	"In single mode that blocks every later trigger until restart."

func checkWaitWithoutTimeout(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	var findings []core.Finding
	for _, act := range a.Actions {
		ir.Walk(act.Raw, act.Path, func(path, _ string, v any) {
			m, ok := v.(map[string]any)
			if !ok {
				return
			}
			if _, ok := m["timeout"]; ok {
				return
			}
			for _, key := range []string{"wait_template", "wait_for_trigger"} {
				if _, ok := m[key]; !ok {
					continue
				}
				findings = append(findings, core.Finding{
					RuleID:       "PERF003",
					Severity:     core.SeverityWarn,
					Message:      fmt.Sprintf("%s has no timeout", key),
					WhyItMatters: waitWithoutTimeoutWhy,
					Path:         path,
					SuggestedFix: core.ManualFix("Add a timeout, and continue_on_timeout if the run should proceed."),
				})
			}
		})
	}
	return findings
}
