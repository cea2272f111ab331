package lint

import (
	"maps"

	"github.com/leapstack-labs/autolint/pkg/core"
)

// Config controls which rules are enabled, their severity and their options.
// A per-request enable map passed to Lint or Fix takes precedence over it.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// EnabledRules turns on rules that are off by default
	EnabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]core.Severity

	// RuleOptions holds rule-specific thresholds keyed by rule ID
	RuleOptions map[string]map[string]any
}

// NewConfig creates a default configuration.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		EnabledRules:      make(map[string]bool),
		SeverityOverrides: make(map[string]core.Severity),
		RuleOptions:       make(map[string]map[string]any),
	}
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	delete(c.EnabledRules, ruleID)
	c.DisabledRules[ruleID] = true
	return c
}

// Enable enables a rule by ID.
func (c *Config) Enable(ruleID string) *Config {
	delete(c.DisabledRules, ruleID)
	c.EnabledRules[ruleID] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity core.Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetRuleOptions sets rule-specific options.
func (c *Config) SetRuleOptions(ruleID string, opts map[string]any) *Config {
	c.RuleOptions[ruleID] = opts
	return c
}

// GetRuleOptions returns the options for a rule, or nil.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity core.Severity) core.Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// IsEnabled resolves whether a rule runs: the request map wins, then this
// config, then the rule's default.
func (c *Config) IsEnabled(rule Rule, requested map[string]bool) bool {
	if on, ok := requested[rule.ID()]; ok {
		return on
	}
	if c != nil {
		if c.DisabledRules[rule.ID()] {
			return false
		}
		if c.EnabledRules[rule.ID()] {
			return true
		}
	}
	return rule.EnabledByDefault()
}

// ReferencedIDs returns every rule ID the config mentions.
func (c *Config) ReferencedIDs() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool)
	for id := range c.DisabledRules {
		seen[id] = true
	}
	for id := range c.EnabledRules {
		seen[id] = true
	}
	for id := range c.SeverityOverrides {
		seen[id] = true
	}
	for id := range c.RuleOptions {
		seen[id] = true
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	return ids
}

// Clone returns a copy whose maps can be changed independently.
func (c *Config) Clone() *Config {
	if c == nil {
		return NewConfig()
	}
	out := &Config{
		DisabledRules:     maps.Clone(c.DisabledRules),
		EnabledRules:      maps.Clone(c.EnabledRules),
		SeverityOverrides: maps.Clone(c.SeverityOverrides),
		RuleOptions:       make(map[string]map[string]any, len(c.RuleOptions)),
	}
	for id, opts := range c.RuleOptions {
		out.RuleOptions[id] = maps.Clone(opts)
	}
	if out.DisabledRules == nil {
		out.DisabledRules = make(map[string]bool)
	}
	if out.EnabledRules == nil {
		out.EnabledRules = make(map[string]bool)
	}
	if out.SeverityOverrides == nil {
		out.SeverityOverrides = make(map[string]core.Severity)
	}
	return out
}
