package core

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// Findings
// =============================================================================

// ParseRuleID is the rule id carried by the single fatal finding emitted when
// a document cannot be parsed. It is not a registered rule.
const ParseRuleID = "PARSE"

// Finding is one issue reported against a path in the document.
type Finding struct {
	RuleID       string        `json:"rule_id"`
	Severity     Severity      `json:"severity"`
	Message      string        `json:"message"`
	WhyItMatters string        `json:"why_it_matters"`
	Path         string        `json:"path"`
	SuggestedFix *SuggestedFix `json:"suggested_fix,omitempty"`
}

// AutoFixable reports whether the finding carries a patch the fixer may apply.
func (f Finding) AutoFixable() bool {
	return f.SuggestedFix != nil && f.SuggestedFix.Kind == FixKindAuto && f.SuggestedFix.Patch != nil
}

// =============================================================================
// Suggested fixes
// =============================================================================

// FixKind tags whether a suggested fix can be applied mechanically.
type FixKind string

// Fix kinds.
const (
	FixKindAuto   FixKind = "AUTO"
	FixKindManual FixKind = "MANUAL"
)

// SuggestedFix is a finding's proposed remediation.
type SuggestedFix struct {
	Kind    FixKind `json:"kind"`
	Summary string  `json:"summary"`
	Patch   *Patch  `json:"-"` // consumed only by the fixer
}

// PatchOp names the IR rewrite a patch performs.
type PatchOp string

// Patch operations.
const (
	// PatchSetField sets a top-level automation field that is currently absent.
	PatchSetField PatchOp = "set_field"
)

// Patch is the machine-readable part of an AUTO fix.
type Patch struct {
	Op    PatchOp
	Field string
	Value any
}

// ManualFix builds a MANUAL suggested fix.
func ManualFix(summary string) *SuggestedFix {
	return &SuggestedFix{Kind: FixKindManual, Summary: summary}
}

// SetFieldFix builds an AUTO suggested fix that sets a missing field.
func SetFieldFix(summary, field string, value any) *SuggestedFix {
	return &SuggestedFix{
		Kind:    FixKindAuto,
		Summary: summary,
		Patch:   &Patch{Op: PatchSetField, Field: field, Value: value},
	}
}

// FixSafety classifies what applying a rule's AUTO fix can change.
type FixSafety int

// Fix safety tiers.
const (
	// FixSafetyNone means the rule never offers an AUTO fix.
	FixSafetyNone FixSafety = iota
	// FixSafetyMetadata means the fix only adds descriptive metadata.
	FixSafetyMetadata
	// FixSafetyBehavioral means the fix can change what the automation does.
	FixSafetyBehavioral
)

// =============================================================================
// Fix modes
// =============================================================================

// ErrInvalidFixMode is returned when a fix mode string cannot be parsed.
var ErrInvalidFixMode = errors.New("invalid fix mode")

// FixMode controls how aggressively the fixer may rewrite a document.
type FixMode string

// Fix modes.
const (
	FixModeNone       FixMode = "NONE"
	FixModeSafe       FixMode = "SAFE"
	FixModeAggressive FixMode = "AGGRESSIVE"
)

// ParseFixMode converts a string to a FixMode. An empty string means NONE.
func ParseFixMode(s string) (FixMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE":
		return FixModeNone, nil
	case "SAFE":
		return FixModeSafe, nil
	case "AGGRESSIVE":
		return FixModeAggressive, nil
	default:
		return FixModeNone, fmt.Errorf("%w: %q (expected none, safe or aggressive)", ErrInvalidFixMode, s)
	}
}
