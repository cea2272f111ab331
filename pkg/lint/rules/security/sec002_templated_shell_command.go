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
		ID:              "SEC002",
		Name:            "templated-shell-command",
		Category:        core.CategorySecurity,
		Description:     "shell_command is called with templated data.",
		Severity:        core.SeverityWarn,
		Rationale:       templatedShellCommandWhy,
		CheckAutomation: checkTemplatedShellCommand,
	})
}

const templatedShellCommandWhy = "Template values come from entity states and events that other devices or users can influence. " +
	"Passing them to a shell command allows command injection."

func checkTemplatedShellCommand(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	var findings []core.Finding
	for _, call := range a.ServiceCalls() {
		if !strings.HasPrefix(call.Service, "shell_command.") {
			continue
		}
		for _, key := range []string{"data", "data_template"} {
			data, ok := call.Fields[key]
			if !ok {
				continue
			}
			ir.Walk(data, ir.JoinKey(call.Path, key), func(path, _ string, v any) {
				s, ok := v.(string)
				if !ok || !ir.IsTemplate(s) {
					return
				}
				findings = append(findings, core.Finding{
					RuleID:       "SEC002",
					Severity:     core.SeverityWarn,
					Message:      fmt.Sprintf("Templated value is passed to %s", call.Service),
					WhyItMatters: templatedShellCommandWhy,
					Path:         path,
					SuggestedFix: core.ManualFix("Pass only fixed values, or validate the input in the script before using it."),
				})
			})
		}
	}
	return findings
}
