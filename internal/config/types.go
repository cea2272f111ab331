// Package config provides the configuration types shared by the CLI and the
// HTTP server. Loading from flags and environment lives in internal/cli/config;
// this package only knows the shape of the file and how to turn it into
// engine settings.
package config

import (
	"time"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

// LintConfig holds rule configuration.
type LintConfig struct {
	// Rules enables (true) or disables (false) rules by id
	Rules map[string]bool `koanf:"rules"`

	// Severity maps rule id to an override (error, warn, info)
	Severity map[string]string `koanf:"severity"`

	// Options holds rule-specific thresholds keyed by rule id
	Options map[string]map[string]any `koanf:"options"`

	// Strict escalates warnings to errors
	Strict bool `koanf:"strict"`
}

// FixConfig holds auto-fix settings.
type FixConfig struct {
	Mode string `koanf:"mode"` // none, safe, aggressive
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"`
	APIToken        string        `koanf:"api_token"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Config is the full autolint configuration.
type Config struct {
	Output  string       `koanf:"output"`
	Verbose bool         `koanf:"verbose"`
	Jobs    int          `koanf:"jobs"`
	Lint    LintConfig   `koanf:"lint"`
	Fix     FixConfig    `koanf:"fix"`
	Server  ServerConfig `koanf:"server"`

	// ProjectRoot is the directory the config file was found in, or the
	// working directory.
	ProjectRoot string `koanf:"-"`
}

// ToLintConfig converts the file representation into an engine config.
// Severity strings must already be validated.
func (c *LintConfig) ToLintConfig() *lint.Config {
	cfg := lint.NewConfig()
	if c == nil {
		return cfg
	}
	for id, on := range c.Rules {
		if on {
			cfg.Enable(id)
		} else {
			cfg.Disable(id)
		}
	}
	for id, s := range c.Severity {
		if sev, ok := core.ParseSeverity(s); ok {
			cfg.SetSeverity(id, sev)
		}
	}
	for id, opts := range c.Options {
		cfg.SetRuleOptions(id, opts)
	}
	return cfg
}

// FixMode returns the parsed fix mode.
func (c *Config) FixMode() (core.FixMode, error) {
	return core.ParseFixMode(c.Fix.Mode)
}
