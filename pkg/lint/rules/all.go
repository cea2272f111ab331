package rules

import (
	"log/slog"
	"sync"

	"github.com/leapstack-labs/autolint/pkg/lint"
	"github.com/leapstack-labs/autolint/pkg/lint/rules/maintainability"
	"github.com/leapstack-labs/autolint/pkg/lint/rules/performance"
	"github.com/leapstack-labs/autolint/pkg/lint/rules/schema"
	"github.com/leapstack-labs/autolint/pkg/lint/rules/security"
)

var builtin = sync.OnceValue(func() *lint.Registry {
	reg := lint.NewRegistry()
	for _, defs := range [][]lint.RuleDef{
		schema.Rules(),
		maintainability.Rules(),
		performance.Rules(),
		security.Rules(),
	} {
		for _, def := range defs {
			reg.RegisterDef(def)
		}
	}
	reg.Freeze()
	return reg
})

// Registry returns the built-in rule registry. It is built once and frozen.
func Registry() *lint.Registry {
	return builtin()
}

// NewEngine creates an engine over the built-in ruleset.
func NewEngine(cfg *lint.Config, logger *slog.Logger) (*lint.Engine, error) {
	return lint.NewEngine(Registry(), cfg, lint.WithLogger(logger))
}
