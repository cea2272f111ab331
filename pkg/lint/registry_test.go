package lint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
)

func noop(*ir.AutomationIR, map[string]any) []core.Finding { return nil }

func testDef(id string) RuleDef {
	return RuleDef{
		ID:              id,
		Name:            "test-" + id,
		Category:        core.CategorySchema,
		Severity:        core.SeverityWarn,
		CheckAutomation: noop,
	}
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterDef(testDef("B002"))
	reg.RegisterDef(testDef("A001"))

	assert.Equal(t, 2, reg.Count())

	rule, ok := reg.Get("A001")
	require.True(t, ok)
	assert.Equal(t, "test-A001", rule.Name())

	_, ok = reg.Get("C003")
	assert.False(t, ok)

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, "A001", all[0].ID())
	assert.Equal(t, "B002", all[1].ID())
}

func TestRegistry_Panics(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Registry)
	}{
		{"duplicate id", func(r *Registry) {
			r.RegisterDef(testDef("A001"))
			r.RegisterDef(testDef("A001"))
		}},
		{"empty id", func(r *Registry) {
			r.RegisterDef(testDef(""))
		}},
		{"frozen", func(r *Registry) {
			r.Freeze()
			r.RegisterDef(testDef("A001"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { tt.setup(NewRegistry()) })
		})
	}
}

func TestRegistry_ByCategoryAndCatalog(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterDef(testDef("S002"))
	sec := testDef("X001")
	sec.Category = core.CategorySecurity
	sec.Disabled = true
	reg.RegisterDef(sec)
	reg.RegisterDef(testDef("S001"))

	schema := reg.ByCategory(core.CategorySchema)
	require.Len(t, schema, 2)
	assert.Equal(t, "S001", schema[0].ID())
	assert.Empty(t, reg.ByCategory(core.CategoryPerformance))

	catalog := reg.Catalog()
	require.Len(t, catalog, 3)
	assert.Equal(t, []string{"S001", "S002", "X001"},
		[]string{catalog[0].RuleID, catalog[1].RuleID, catalog[2].RuleID})
	assert.True(t, catalog[0].Enabled)
	assert.False(t, catalog[2].Enabled)
	assert.Equal(t, core.CategorySecurity, catalog[2].Category)
}

func TestRegistry_ValidateRuleConfig(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterDef(testDef("A001"))

	assert.NoError(t, reg.ValidateRuleConfig(nil))
	assert.NoError(t, reg.ValidateRuleConfig(map[string]bool{"A001": false}))

	err := reg.ValidateRuleConfig(map[string]bool{"A001": true, "Z9": true, "B7": false})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownRule))

	var unknown *UnknownRuleError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []string{"B7", "Z9"}, unknown.IDs)
	assert.Contains(t, err.Error(), "B7")
}

func TestRegistry_FixSafety(t *testing.T) {
	reg := NewRegistry()
	def := testDef("M001")
	def.FixSafety = core.FixSafetyMetadata
	reg.RegisterDef(def)
	reg.RegisterDef(testDef("M002"))

	assert.Equal(t, core.FixSafetyMetadata, reg.FixSafety("M001"))
	assert.Equal(t, core.FixSafetyNone, reg.FixSafety("M002"))
	assert.Equal(t, core.FixSafetyNone, reg.FixSafety("missing"))
}

func TestWrapRuleDef(t *testing.T) {
	rule := WrapRuleDef(testDef("A001"))
	_, isAutomation := rule.(AutomationRule)
	_, isDocument := rule.(DocumentRule)
	assert.True(t, isAutomation)
	assert.False(t, isDocument)

	def := testDef("D001")
	def.CheckAutomation = nil
	def.CheckDocument = func(*ir.Document, map[string]any) []core.Finding { return nil }
	rule = WrapRuleDef(def)
	_, isDocument = rule.(DocumentRule)
	assert.True(t, isDocument)

	info := GetRuleInfo(rule)
	assert.Equal(t, "D001", info.RuleID)
	assert.Equal(t, core.SeverityWarn, info.Severity)
	assert.True(t, info.Enabled)
}

func TestConfig_IsEnabled(t *testing.T) {
	on := WrapRuleDef(testDef("A001"))
	offDef := testDef("B001")
	offDef.Disabled = true
	off := WrapRuleDef(offDef)

	tests := []struct {
		name      string
		cfg       *Config
		requested map[string]bool
		rule      Rule
		want      bool
	}{
		{"default on", NewConfig(), nil, on, true},
		{"default off", NewConfig(), nil, off, false},
		{"config disables", NewConfig().Disable("A001"), nil, on, false},
		{"config enables", NewConfig().Enable("B001"), nil, off, true},
		{"request overrides config", NewConfig().Disable("A001"), map[string]bool{"A001": true}, on, true},
		{"request disables", NewConfig(), map[string]bool{"A001": false}, on, false},
		{"nil config", nil, nil, on, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.IsEnabled(tt.rule, tt.requested))
		})
	}
}

func TestConfig_CloneIsIndependent(t *testing.T) {
	cfg := NewConfig().Disable("A001").SetRuleOptions("A002", map[string]any{"n": 1})
	clone := cfg.Clone()
	clone.Enable("A001")
	clone.RuleOptions["A002"]["n"] = 2

	assert.True(t, cfg.DisabledRules["A001"])
	assert.Equal(t, 1, cfg.RuleOptions["A002"]["n"])
	assert.ElementsMatch(t, []string{"A001", "A002"}, cfg.ReferencedIDs())
}
