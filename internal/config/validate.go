package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/autolint/pkg/core"
)

var outputFormats = []string{"auto", "text", "markdown", "json"}

// Validate checks values that can be checked without a rule registry.
// Unknown rule ids are reported by the engine when it is created.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(outputFormats, strings.ToLower(c.Output)) {
		errs = append(errs, fmt.Errorf("output: invalid format %q (expected %s)", c.Output, strings.Join(outputFormats, ", ")))
	}
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs: must not be negative, got %d", c.Jobs))
	}
	if _, err := c.FixMode(); err != nil {
		errs = append(errs, fmt.Errorf("fix.mode: %w", err))
	}
	for _, id := range sortedKeys(c.Lint.Severity) {
		if _, ok := core.ParseSeverity(c.Lint.Severity[id]); !ok {
			errs = append(errs, fmt.Errorf("lint.severity.%s: %w: %q", id, core.ErrInvalidSeverity, c.Lint.Severity[id]))
		}
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes: must be positive, got %d", c.Server.MaxBodyBytes))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout: must not be negative"))
	}

	return errors.Join(errs...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
