package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

// FindRuleDef returns the definition with the given id from defs.
func FindRuleDef(t testing.TB, defs []lint.RuleDef, id string) lint.RuleDef {
	t.Helper()
	for _, def := range defs {
		if def.ID == id {
			return def
		}
	}
	t.Fatalf("rule %s not registered", id)
	return lint.RuleDef{}
}

// CheckRule parses text and runs one rule definition over it, once per
// automation or once for the document, without severity overrides or
// sorting.
func CheckRule(t testing.TB, def lint.RuleDef, text string, opts map[string]any) []core.Finding {
	t.Helper()
	doc, err := ir.Parse(text)
	require.NoError(t, err)

	if def.CheckDocument != nil {
		return def.CheckDocument(doc, opts)
	}
	var findings []core.Finding
	for _, a := range doc.Automations {
		findings = append(findings, def.CheckAutomation(a, opts)...)
	}
	return findings
}

// Paths returns the path of every finding, never nil.
func Paths(findings []core.Finding) []string {
	out := []string{}
	for _, f := range findings {
		out = append(out, f.Path)
	}
	return out
}
