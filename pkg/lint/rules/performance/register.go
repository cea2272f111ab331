package performance

import (
	"slices"

	"github.com/leapstack-labs/autolint/pkg/lint"
)

var defs []lint.RuleDef

func register(def lint.RuleDef) {
	defs = append(defs, def)
}

// Rules returns the performance rule definitions.
func Rules() []lint.RuleDef {
	return slices.Clone(defs)
}
