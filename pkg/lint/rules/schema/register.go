package schema

import (
	"slices"

	"github.com/leapstack-labs/autolint/pkg/lint"
)

var defs []lint.RuleDef

func register(def lint.RuleDef) {
	defs = append(defs, def)
}

// Rules returns the schema rule definitions.
func Rules() []lint.RuleDef {
	return slices.Clone(defs)
}
