package lint

import (
	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
)

// Rule is the base interface all lint rules implement.
type Rule interface {
	// ID returns the stable identifier, e.g., "SCHEMA001" or "MAINT002"
	ID() string

	// Name returns the human-readable name, e.g., "missing-alias"
	Name() string

	// Category returns the rule family
	Category() core.Category

	// Description returns a one-line description
	Description() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() core.Severity

	// EnabledByDefault reports whether the rule runs without explicit configuration
	EnabledByDefault() bool

	// FixSafety classifies the patches the rule suggests
	FixSafety() core.FixSafety

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Rationale explains what the rule protects against
	Rationale() string
}

// AutomationRule checks one automation at a time.
type AutomationRule interface {
	Rule

	// CheckAutomation analyzes an automation and returns findings.
	// The opts parameter contains rule-specific options from configuration.
	CheckAutomation(a *ir.AutomationIR, opts map[string]any) []core.Finding
}

// DocumentRule checks properties that span automations, such as id uniqueness.
type DocumentRule interface {
	Rule

	// CheckDocument analyzes the whole document and returns findings.
	CheckDocument(doc *ir.Document, opts map[string]any) []core.Finding
}

// AutomationCheckFunc analyzes a single automation.
type AutomationCheckFunc func(a *ir.AutomationIR, opts map[string]any) []core.Finding

// DocumentCheckFunc analyzes a whole document.
type DocumentCheckFunc func(doc *ir.Document, opts map[string]any) []core.Finding

// RuleDef is a data-driven rule definition. Exactly one of CheckAutomation
// and CheckDocument is set. Checks are stateless: all context comes via
// their parameters.
type RuleDef struct {
	ID          string
	Name        string
	Category    core.Category
	Description string
	Severity    core.Severity
	FixSafety   core.FixSafety
	ConfigKeys  []string
	Rationale   string

	// Disabled marks rules that only run when enabled explicitly.
	Disabled bool

	CheckAutomation AutomationCheckFunc
	CheckDocument   DocumentCheckFunc
}

// WrapRuleDef turns a RuleDef into an AutomationRule or DocumentRule.
func WrapRuleDef(def RuleDef) Rule {
	if def.CheckDocument != nil {
		return &documentRuleDef{ruleDef: ruleDef{def: def}}
	}
	return &automationRuleDef{ruleDef: ruleDef{def: def}}
}

type ruleDef struct {
	def RuleDef
}

func (w *ruleDef) ID() string                     { return w.def.ID }
func (w *ruleDef) Name() string                   { return w.def.Name }
func (w *ruleDef) Category() core.Category        { return w.def.Category }
func (w *ruleDef) Description() string            { return w.def.Description }
func (w *ruleDef) DefaultSeverity() core.Severity { return w.def.Severity }
func (w *ruleDef) EnabledByDefault() bool         { return !w.def.Disabled }
func (w *ruleDef) FixSafety() core.FixSafety      { return w.def.FixSafety }
func (w *ruleDef) ConfigKeys() []string           { return w.def.ConfigKeys }
func (w *ruleDef) Rationale() string              { return w.def.Rationale }

type automationRuleDef struct{ ruleDef }

func (w *automationRuleDef) CheckAutomation(a *ir.AutomationIR, opts map[string]any) []core.Finding {
	if w.def.CheckAutomation == nil {
		return nil
	}
	return w.def.CheckAutomation(a, opts)
}

type documentRuleDef struct{ ruleDef }

func (w *documentRuleDef) CheckDocument(doc *ir.Document, opts map[string]any) []core.Finding {
	return w.def.CheckDocument(doc, opts)
}

// GetRuleInfo extracts catalog metadata from a Rule.
func GetRuleInfo(r Rule) core.RuleInfo {
	return core.RuleInfo{
		RuleID:      r.ID(),
		Name:        r.Name(),
		Severity:    r.DefaultSeverity(),
		Category:    r.Category(),
		Enabled:     r.EnabledByDefault(),
		Description: r.Description(),
		Rationale:   r.Rationale(),
		ConfigKeys:  r.ConfigKeys(),
	}
}
