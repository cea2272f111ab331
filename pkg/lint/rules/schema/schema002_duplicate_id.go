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
		ID:            "SCHEMA002",
		Name:          "duplicate-id",
		Category:      core.CategorySchema,
		Description:   "Two or more automations in the document share an id.",
		Severity:      core.SeverityError,
		Rationale:     duplicateIDWhy,
		CheckDocument: checkDuplicateID,
	})
}

const duplicateIDWhy = "Automation ids key the UI editor, traces and stored state. " +
	"When ids collide only one of the automations can be addressed and the others are silently shadowed."

// checkDuplicateID reports every automation whose id is shared, naming the
// other automations that use it.
func checkDuplicateID(doc *ir.Document, _ map[string]any) []core.Finding {
	byID := make(map[string][]*ir.AutomationIR)
	var order []string
	for _, a := range doc.Automations {
		if a.ID == nil || *a.ID == "" {
			continue
		}
		if _, seen := byID[*a.ID]; !seen {
			order = append(order, *a.ID)
		}
		byID[*a.ID] = append(byID[*a.ID], a)
	}

	var findings []core.Finding
	for _, id := range order {
		sharers := byID[id]
		if len(sharers) < 2 {
			continue
		}
		for _, a := range sharers {
			var others []string
			for _, other := range sharers {
				if other != a {
					others = append(others, other.Path)
				}
			}
			findings = append(findings, core.Finding{
				RuleID:       "SCHEMA002",
				Severity:     core.SeverityError,
				Message:      fmt.Sprintf("Automation id %q is also used by %s", id, strings.Join(others, ", ")),
				WhyItMatters: duplicateIDWhy,
				Path:         ir.JoinKey(a.Path, "id"),
				SuggestedFix: core.ManualFix("Give each automation a unique id."),
			})
		}
	}
	return findings
}
