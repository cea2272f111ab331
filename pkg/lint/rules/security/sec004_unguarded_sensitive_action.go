package security

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "SEC004",
		Name:            "unguarded-sensitive-action",
		Category:        core.CategorySecurity,
		Description:     "Unlock, disarm or open action runs without any condition.",
		Severity:        core.SeverityWarn,
		Rationale:       unguardedSensitiveActionWhy,
		CheckAutomation: checkUnguardedSensitiveAction,
	})
}

const unguardedSensitiveActionWhy = "Actions that unlock doors, disarm alarms or open covers grant physical access. " +
	"Without a condition, any spurious or spoofed trigger performs them."

var sensitiveServices = map[string]bool{
	"lock.unlock":                      true,
	"lock.open":                        true,
	"alarm_control_panel.alarm_disarm": true,
	"cover.open_cover":                 true,
}

func checkUnguardedSensitiveAction(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	if len(a.Conditions) > 0 {
		return nil
	}
	var findings []core.Finding
	for _, call := range a.ServiceCalls() {
		if !sensitiveServices[call.Service] || guarded(call.Path) {
			continue
		}
		findings = append(findings, core.Finding{
			RuleID:       "SEC004",
			Severity:     core.SeverityWarn,
			Message:      fmt.Sprintf("%s runs without any condition", call.Service),
			WhyItMatters: unguardedSensitiveActionWhy,
			Path:         call.Path,
			SuggestedFix: core.ManualFix("Add a condition (presence, time, alarm state) before the action."),
		})
	}
	return findings
}

// guarded reports whether a call sits inside a choose option or an if/else
// branch, which carry their own conditions.
func guarded(path string) bool {
	return strings.Contains(path, ".choose") || strings.Contains(path, ".then") || strings.Contains(path, ".else")
}
