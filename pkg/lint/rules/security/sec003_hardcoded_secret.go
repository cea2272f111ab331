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
		ID:              "SEC003",
		Name:            "hardcoded-secret",
		Category:        core.CategorySecurity,
		Description:     "Credential is written inline instead of referenced with !secret.",
		Severity:        core.SeverityError,
		Rationale:       hardcodedSecretWhy,
		CheckAutomation: checkHardcodedSecret,
	})
}

const hardcodedSecretWhy = "Automation files are shared, backed up and pasted into forums. " +
	"Inline credentials leak with them; !secret keeps them in secrets.yaml."

var credentialKeys = map[string]bool{
	"password":      true,
	"passwd":        true,
	"token":         true,
	"api_key":       true,
	"apikey":        true,
	"secret":        true,
	"client_secret": true,
	"access_token":  true,
	"private_key":   true,
	"authorization": true,
}

var credentialSuffixes = []string{"_password", "_token", "_secret", "_api_key"}

func isCredentialKey(key string) bool {
	key = strings.ToLower(key)
	if credentialKeys[key] {
		return true
	}
	for _, suffix := range credentialSuffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return false
}

func checkHardcodedSecret(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	var findings []core.Finding
	ir.Walk(a.Raw, a.Path, func(path, key string, v any) {
		if !isCredentialKey(key) {
			return
		}
		// Tagged values (!secret, !env_var) and templates are references.
		s, ok := v.(string)
		if !ok || s == "" || ir.IsTemplate(s) {
			return
		}
		findings = append(findings, core.Finding{
			RuleID:       "SEC003",
			Severity:     core.SeverityError,
			Message:      fmt.Sprintf("%s is a hardcoded credential", key),
			WhyItMatters: hardcodedSecretWhy,
			Path:         path,
			SuggestedFix: core.ManualFix(fmt.Sprintf("Move the value to secrets.yaml and use %s: !secret <name>.", key)),
		})
	})
	return findings
}
