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
		ID:              "SCHEMA003",
		Name:            "entity-id-format",
		Category:        core.CategorySchema,
		Description:     "entity_id does not have the domain.object_id shape.",
		Severity:        core.SeverityError,
		Rationale:       entityIDFormatWhy,
		CheckAutomation: checkEntityIDFormat,
	})
}

const entityIDFormatWhy = "Entity ids are always domain.object_id in lowercase. " +
	"A malformed id never matches an entity, so the trigger never fires or the action silently does nothing."

var entityIDPattern = regexp.MustCompile(`^[a-z0-9_]+\.[a-z0-9_]+$`)

// Values the runtime accepts in place of an entity id.
var entityIDKeywords = map[string]bool{"all": true, "none": true}

func checkEntityIDFormat(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	var findings []core.Finding
	for _, ref := range a.EntityRefs() {
		if entityIDPattern.MatchString(ref.EntityID) || entityIDKeywords[ref.EntityID] {
			continue
		}
		findings = append(findings, core.Finding{
			RuleID:       "SCHEMA003",
			Severity:     core.SeverityError,
			Message:      fmt.Sprintf("Entity id %q is not in domain.object_id form", ref.EntityID),
			WhyItMatters: entityIDFormatWhy,
			Path:         ref.Path,
			SuggestedFix: core.ManualFix("Use the full entity id, e.g. light.kitchen."),
		})
	}
	return findings
}
