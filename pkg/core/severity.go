package core

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// Severity
// =============================================================================

// ErrInvalidSeverity is returned when a severity string cannot be parsed.
var ErrInvalidSeverity = errors.New("invalid severity")

// Severity indicates the importance of a finding.
// Lower values are more severe, so thresholds compare with <=.
type Severity int

// Severity levels for findings.
const (
	// SeverityError indicates the automation is broken or unsafe.
	SeverityError Severity = iota
	// SeverityWarn indicates a likely problem that should be reviewed.
	SeverityWarn
	// SeverityInfo indicates a best-practice suggestion.
	SeverityInfo
)

// String returns the wire representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarn:
		return "WARN"
	case SeverityInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(b []byte) error {
	sev, ok := ParseSeverity(string(b))
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSeverity, string(b))
	}
	*s = sev
	return nil
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityWarn and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, true
	case "warn", "warning":
		return SeverityWarn, true
	case "info":
		return SeverityInfo, true
	default:
		return SeverityWarn, false
	}
}

// =============================================================================
// Category
// =============================================================================

// Category groups rules by the kind of problem they detect.
type Category string

// Rule categories.
const (
	CategorySchema          Category = "schema"
	CategoryMaintainability Category = "maintainability"
	CategoryPerformance     Category = "performance"
	CategorySecurity        Category = "security"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategorySchema, CategoryMaintainability, CategoryPerformance, CategorySecurity}
}

// =============================================================================
// RuleInfo
// =============================================================================

// RuleInfo is the catalog entry for a rule, as exposed by the rules endpoint.
// This is a DTO (Data Transfer Object) - it carries data without behavior.
type RuleInfo struct {
	RuleID   string   `json:"rule_id"`
	Name     string   `json:"name"`
	Severity Severity `json:"severity"`
	Category Category `json:"category"`
	Enabled  bool     `json:"enabled"`

	// Documentation fields, omitted from the catalog wire shape
	Description string   `json:"-"`
	Rationale   string   `json:"-"`
	ConfigKeys  []string `json:"-"`
}
