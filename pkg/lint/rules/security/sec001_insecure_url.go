package security

import (
	"net/url"
	"strings"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "SEC001",
		Name:            "insecure-url",
		Category:        core.CategorySecurity,
		Description:     "Action sends data over plain http:// to a non-local host.",
		Severity:        core.SeverityWarn,
		Rationale:       insecureURLWhy,
		CheckAutomation: checkInsecureURL,
	})
}

const insecureURLWhy = "Plain HTTP exposes payloads and any credentials in them to everyone on the network path."

var localHosts = map[string]bool{"localhost": true, "127.0.0.1": true, "::1": true}

func checkInsecureURL(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	var findings []core.Finding
	for _, act := range a.Actions {
		ir.Walk(act.Raw, act.Path, func(path, _ string, v any) {
			s, ok := v.(string)
			if !ok || !strings.HasPrefix(strings.ToLower(s), "http://") {
				return
			}
			if u, err := url.Parse(s); err == nil && localHosts[u.Hostname()] {
				return
			}
			findings = append(findings, core.Finding{
				RuleID:       "SEC001",
				Severity:     core.SeverityWarn,
				Message:      "Action uses an insecure http:// URL",
				WhyItMatters: insecureURLWhy,
				Path:         path,
				SuggestedFix: core.ManualFix("Use https://, or keep the endpoint on the local host."),
			})
		})
	}
	return findings
}
