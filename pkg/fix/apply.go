// Package fix applies the AUTO patches carried by lint findings to a copy of
// the automation IR.
package fix

import (
	"sort"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
)

// SafetyLookup returns the fix safety class of a rule.
type SafetyLookup func(ruleID string) core.FixSafety

// Apply applies eligible patches and returns the fixed document with the
// sorted, de-duplicated ids of rules whose patches were applied.
//
// With FixModeNone (or an empty mode) the input is returned as is. SAFE
// applies AUTO patches of rules whose safety is metadata only. AGGRESSIVE is
// reserved and currently behaves like SAFE. A patch that targets an unknown
// automation, uses an unknown operation, or would overwrite a field that is
// already present is skipped. The input document is never mutated.
func Apply(doc *ir.Document, findings []core.Finding, mode core.FixMode, safety SafetyLookup) (*ir.Document, []string) {
	if doc == nil || mode == "" || mode == core.FixModeNone {
		return doc, []string{}
	}

	out := doc.Clone()
	applied := make(map[string]bool)
	for _, f := range findings {
		if !f.AutoFixable() || !allowed(mode, safety, f.RuleID) {
			continue
		}
		a := automationAt(out, f.Path)
		if a == nil {
			continue
		}
		if applyPatch(a, f.SuggestedFix.Patch) {
			applied[f.RuleID] = true
		}
	}

	if len(applied) == 0 {
		return doc, []string{}
	}
	ids := make([]string, 0, len(applied))
	for id := range applied {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return out, ids
}

func allowed(mode core.FixMode, safety SafetyLookup, ruleID string) bool {
	if safety == nil {
		return false
	}
	switch mode {
	case core.FixModeSafe, core.FixModeAggressive:
		return safety(ruleID) == core.FixSafetyMetadata
	default:
		return false
	}
}

func automationAt(doc *ir.Document, path string) *ir.AutomationIR {
	i := ir.AutomationIndex(path)
	if i < 0 || i >= len(doc.Automations) {
		return nil
	}
	return doc.Automations[i]
}

func applyPatch(a *ir.AutomationIR, p *core.Patch) bool {
	switch p.Op {
	case core.PatchSetField:
		return setField(a, p.Field, p.Value)
	default:
		return false
	}
}

// setField sets an absent metadata field. Present fields are left alone, so
// applying the same patch twice changes nothing.
func setField(a *ir.AutomationIR, field string, value any) bool {
	s, ok := value.(string)
	if !ok || a.HasKey(field) {
		return false
	}

	var target **string
	switch field {
	case "id":
		target = &a.ID
	case "alias":
		target = &a.Alias
	case "description":
		target = &a.Description
	case "mode":
		target = &a.Mode
	case "max_exceeded":
		target = &a.MaxExceeded
	default:
		return false
	}

	*target = ir.StringPtr(s)
	if a.Raw == nil {
		a.Raw = make(map[string]any)
	}
	a.Raw[field] = s
	return true
}
