package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOptions(t *testing.T) {
	var out struct {
		MaxActions int    `mapstructure:"max_actions"`
		Label      string `mapstructure:"label"`
	}
	out.MaxActions = 15

	require.NoError(t, DecodeOptions(nil, &out))
	assert.Equal(t, 15, out.MaxActions)

	require.NoError(t, DecodeOptions(map[string]any{"max_actions": "4", "label": "x"}, &out))
	assert.Equal(t, 4, out.MaxActions)
	assert.Equal(t, "x", out.Label)

	require.NoError(t, DecodeOptions(map[string]any{"max_actions": float64(12)}, &out))
	assert.Equal(t, 12, out.MaxActions, "JSON numbers decode into ints")

	assert.Error(t, DecodeOptions(map[string]any{"max_actions": "many"}, &out))
	assert.Error(t, DecodeOptions(map[string]any{"max_actions": map[string]any{"a": 1}}, &out))
}
