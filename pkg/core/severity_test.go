package core

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in     string
		want   Severity
		wantOK bool
	}{
		{"error", SeverityError, true},
		{"ERROR", SeverityError, true},
		{"warn", SeverityWarn, true},
		{"Warning", SeverityWarn, true},
		{" info ", SeverityInfo, true},
		{"hint", SeverityWarn, false},
		{"", SeverityWarn, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSeverity(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverity_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		S Severity `json:"s"`
	}{SeverityWarn})
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"WARN"}`, string(b))

	var got struct {
		S Severity `json:"s"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"s":"info"}`), &got))
	assert.Equal(t, SeverityInfo, got.S)

	err = json.Unmarshal([]byte(`{"s":"loud"}`), &got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSeverity))
}

func TestParseFixMode(t *testing.T) {
	mode, err := ParseFixMode("")
	require.NoError(t, err)
	assert.Equal(t, FixModeNone, mode)

	mode, err = ParseFixMode("safe")
	require.NoError(t, err)
	assert.Equal(t, FixModeSafe, mode)

	mode, err = ParseFixMode("Aggressive")
	require.NoError(t, err)
	assert.Equal(t, FixModeAggressive, mode)

	_, err = ParseFixMode("yolo")
	assert.ErrorIs(t, err, ErrInvalidFixMode)
}

func TestFinding_AutoFixable(t *testing.T) {
	assert.False(t, Finding{}.AutoFixable())
	assert.False(t, Finding{SuggestedFix: ManualFix("do it by hand")}.AutoFixable())
	assert.True(t, Finding{SuggestedFix: SetFieldFix("add alias", "alias", "")}.AutoFixable())

	// AUTO without patch data cannot be applied
	assert.False(t, Finding{SuggestedFix: &SuggestedFix{Kind: FixKindAuto}}.AutoFixable())
}

func TestSuggestedFix_PatchNotSerialized(t *testing.T) {
	b, err := json.Marshal(SetFieldFix("add alias", "alias", ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"AUTO","summary":"add alias"}`, string(b))
}
