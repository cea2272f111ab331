package schema

import (
	"fmt"
	"regexp"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "SCHEMA011",
		Name:            "service-format",
		Category:        core.CategorySchema,
		Description:     "Service call is not in domain.service form.",
		Severity:        core.SeverityError,
		Rationale:       serviceFormatWhy,
		CheckAutomation: checkServiceFormat,
	})
}

const serviceFormatWhy = "Services are addressed as domain.service. A malformed name fails at run time, after the trigger already fired."

var servicePattern = regexp.MustCompile(`^[a-z0-9_]+\.[a-z0-9_]+$`)

func checkServiceFormat(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	var findings []core.Finding
	for _, call := range a.ServiceCalls() {
		if ir.IsTemplate(call.Service) || servicePattern.MatchString(call.Service) {
			continue
		}
		findings = append(findings, core.Finding{
			RuleID:       "SCHEMA011",
			Severity:     core.SeverityError,
			Message:      fmt.Sprintf("Service %q is not in domain.service form", call.Service),
			WhyItMatters: serviceFormatWhy,
			Path:         ir.JoinKey(call.Path, call.Key()),
			SuggestedFix: core.ManualFix("Use the full service name, e.g. light.turn_on."),
		})
	}
	return findings
}
