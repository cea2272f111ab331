package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffSummary(t *testing.T) {
	tests := []struct {
		name     string
		original string
		fixed    string
		want     Diff
	}{
		{"identical", "a\nb\n", "a\nb\n", Diff{}},
		{"modified", "a\nb\n", "a\nc\n", Diff{Modified: 1}},
		{"added", "a\n", "a\nb\n", Diff{Added: 1}},
		{"removed", "a\nb\n", "a\n", Diff{Removed: 1}},
		{"uneven replace", "a\nb\nz\n", "a\nx\ny\nw\nz\n", Diff{Modified: 1, Added: 2}},
		{"from empty", "", "a\nb\n", Diff{Added: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffSummary(tt.original, tt.fixed)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == Diff{}, got.Empty())
		})
	}
}

func TestDiffString(t *testing.T) {
	assert.Equal(t, "2 added, 0 removed, 1 modified", Diff{Added: 2, Modified: 1}.String())
}

func TestUnifiedDiff(t *testing.T) {
	out, err := UnifiedDiff("alias: a\nmode: single\n", "alias: a\nmode: restart\n", "automations.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "--- a/automations.yaml")
	assert.Contains(t, out, "+++ b/automations.yaml")
	assert.Contains(t, out, "-mode: single")
	assert.Contains(t, out, "+mode: restart")

	out, err = UnifiedDiff("same\n", "same\n", "x.yaml")
	require.NoError(t, err)
	assert.Empty(t, out)
}
