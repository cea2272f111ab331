package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/autolint/pkg/core"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())

	mode, err := Default().FixMode()
	require.NoError(t, err)
	assert.Equal(t, core.FixModeSafe, mode)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad output", func(c *Config) { c.Output = "xml" }, "output"},
		{"negative jobs", func(c *Config) { c.Jobs = -1 }, "jobs"},
		{"bad fix mode", func(c *Config) { c.Fix.Mode = "yolo" }, "fix.mode"},
		{"bad severity", func(c *Config) { c.Lint.Severity = map[string]string{"MAINT001": "fatal"} }, "lint.severity.MAINT001"},
		{"zero body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }, "server.max_body_bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_SeverityIsSentinel(t *testing.T) {
	cfg := Default()
	cfg.Lint.Severity = map[string]string{"PERF001": "loud"}
	assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidSeverity)
}

func TestToLintConfig(t *testing.T) {
	lc := &LintConfig{
		Rules:    map[string]bool{"MAINT005": true, "PERF001": false},
		Severity: map[string]string{"MAINT002": "warn"},
		Options:  map[string]map[string]any{"MAINT004": {"max_actions": 20}},
	}
	cfg := lc.ToLintConfig()

	assert.True(t, cfg.EnabledRules["MAINT005"])
	assert.True(t, cfg.DisabledRules["PERF001"])
	assert.Equal(t, core.SeverityWarn, cfg.SeverityOverrides["MAINT002"])
	assert.Equal(t, 20, cfg.RuleOptions["MAINT004"]["max_actions"])

	var nilCfg *LintConfig
	assert.NotNil(t, nilCfg.ToLintConfig())
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	assert.Empty(t, FindProjectRoot(nested))

	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileNameAlt), []byte("output: json\n"), 0o600))
	assert.Equal(t, root, FindProjectRoot(nested))
	assert.Equal(t, filepath.Join(root, ConfigFileNameAlt), FindConfigFile(root))

	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("output: json\n"), 0o600))
	assert.Equal(t, filepath.Join(root, ConfigFileName), FindConfigFile(root), "yaml wins over yml")
}
