package fix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
)

func metadataOnly(ruleID string) core.FixSafety {
	switch ruleID {
	case "MAINT001", "MAINT002":
		return core.FixSafetyMetadata
	case "BEHAVE":
		return core.FixSafetyBehavioral
	default:
		return core.FixSafetyNone
	}
}

func parse(t *testing.T, text string) *ir.Document {
	t.Helper()
	doc, err := ir.Parse(text)
	require.NoError(t, err)
	return doc
}

func aliasFinding(path string) core.Finding {
	return core.Finding{
		RuleID:       "MAINT002",
		Severity:     core.SeverityInfo,
		Path:         path,
		SuggestedFix: core.SetFieldFix("Add an alias", "alias", ""),
	}
}

func descriptionFinding(path string) core.Finding {
	return core.Finding{
		RuleID:       "MAINT001",
		Severity:     core.SeverityInfo,
		Path:         path,
		SuggestedFix: core.SetFieldFix("Add a description", "description", ""),
	}
}

func TestApply_NoneReturnsInput(t *testing.T) {
	doc := parse(t, "trigger: []\naction: []\n")
	findings := []core.Finding{aliasFinding("automations[0]")}

	for _, mode := range []core.FixMode{core.FixModeNone, ""} {
		out, applied := Apply(doc, findings, mode, metadataOnly)
		assert.Same(t, doc, out)
		assert.Empty(t, applied)
		assert.NotNil(t, applied)
	}
}

func TestApply_SafeSetsMissingMetadata(t *testing.T) {
	doc := parse(t, `
- trigger: []
  action: []
- alias: has alias
  trigger: []
  action: []
`)
	findings := []core.Finding{
		aliasFinding("automations[0]"),
		descriptionFinding("automations[0]"),
		descriptionFinding("automations[1]"),
	}

	out, applied := Apply(doc, findings, core.FixModeSafe, metadataOnly)
	assert.Equal(t, []string{"MAINT001", "MAINT002"}, applied)

	require.NotNil(t, out.Automations[0].Alias)
	assert.Equal(t, "", *out.Automations[0].Alias)
	require.NotNil(t, out.Automations[0].Description)
	require.NotNil(t, out.Automations[1].Description)
	assert.Equal(t, "has alias", *out.Automations[1].Alias)

	// input untouched
	assert.Nil(t, doc.Automations[0].Alias)
	assert.Nil(t, doc.Automations[0].Description)
	assert.NotContains(t, doc.Automations[0].Raw, "alias")
}

func TestApply_AggressiveMatchesSafe(t *testing.T) {
	doc := parse(t, "trigger: []\naction: []\n")
	findings := []core.Finding{aliasFinding("automations[0]")}

	safeDoc, safeApplied := Apply(doc, findings, core.FixModeSafe, metadataOnly)
	aggrDoc, aggrApplied := Apply(doc, findings, core.FixModeAggressive, metadataOnly)
	assert.Equal(t, safeApplied, aggrApplied)
	assert.Equal(t, safeDoc, aggrDoc)
}

func TestApply_Skips(t *testing.T) {
	doc := parse(t, "alias: kept\ntrigger: []\naction: []\n")

	tests := []struct {
		name    string
		finding core.Finding
	}{
		{
			name: "manual fix",
			finding: core.Finding{
				RuleID:       "MAINT003",
				Path:         "automations[0]",
				SuggestedFix: core.ManualFix("Add an id"),
			},
		},
		{
			name:    "conflict with present field",
			finding: aliasFinding("automations[0]"),
		},
		{
			name:    "unknown automation",
			finding: descriptionFinding("automations[7]"),
		},
		{
			name:    "root path",
			finding: descriptionFinding(ir.RootPath),
		},
		{
			name: "behavioral safety",
			finding: core.Finding{
				RuleID:       "BEHAVE",
				Path:         "automations[0]",
				SuggestedFix: core.SetFieldFix("Set mode", "mode", "queued"),
			},
		},
		{
			name: "unknown op",
			finding: core.Finding{
				RuleID: "MAINT001",
				Path:   "automations[0]",
				SuggestedFix: &core.SuggestedFix{
					Kind:  core.FixKindAuto,
					Patch: &core.Patch{Op: "delete_field", Field: "alias"},
				},
			},
		},
		{
			name: "unsupported field",
			finding: core.Finding{
				RuleID:       "MAINT001",
				Path:         "automations[0]",
				SuggestedFix: core.SetFieldFix("Set trace", "trace", ""),
			},
		},
		{
			name: "auto without patch",
			finding: core.Finding{
				RuleID:       "MAINT001",
				Path:         "automations[0]",
				SuggestedFix: &core.SuggestedFix{Kind: core.FixKindAuto},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, applied := Apply(doc, []core.Finding{tt.finding}, core.FixModeSafe, metadataOnly)
			assert.Empty(t, applied)
			assert.Same(t, doc, out)
		})
	}
}

func TestApply_ConflictWithExtraValue(t *testing.T) {
	// A non-scalar description lives in Extra; it still counts as present.
	doc := parse(t, "description: [a, b]\ntrigger: []\naction: []\n")
	out, applied := Apply(doc, []core.Finding{descriptionFinding("automations[0]")}, core.FixModeSafe, metadataOnly)
	assert.Empty(t, applied)
	assert.Same(t, doc, out)
}

func TestApply_Idempotent(t *testing.T) {
	doc := parse(t, "trigger: []\naction: []\n")
	findings := []core.Finding{aliasFinding("automations[0]"), aliasFinding("automations[0]")}

	once, applied := Apply(doc, findings, core.FixModeSafe, metadataOnly)
	assert.Equal(t, []string{"MAINT002"}, applied)

	twice, applied := Apply(once, findings, core.FixModeSafe, metadataOnly)
	assert.Empty(t, applied)
	assert.Equal(t, once, twice)
}

func TestApply_NilSafetyAppliesNothing(t *testing.T) {
	doc := parse(t, "trigger: []\naction: []\n")
	_, applied := Apply(doc, []core.Finding{aliasFinding("automations[0]")}, core.FixModeSafe, nil)
	assert.Empty(t, applied)
}
