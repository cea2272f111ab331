package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/autolint/internal/cli/config"
)

func execRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	config.ResetConfig()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"lint", "fix", "rules", "serve", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}

	for _, flag := range []string{"config", "verbose", "output"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRootCmd_VersionFlag(t *testing.T) {
	out, _, err := execRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "autolint "+Version)
	assert.Contains(t, out, "built "+BuildDate)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\nverbose: true\n"), 0o600))

	_, stderr, err := execRoot(t, "--config", path, "version")
	require.NoError(t, err)
	assert.Equal(t, path, config.GetConfigFileUsed())
	require.NotNil(t, config.GetCurrentConfig())
	assert.Equal(t, "json", config.GetCurrentConfig().Output)
	assert.Contains(t, stderr, "using config file")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autolint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fix:\n  mode: reckless\n"), 0o600))

	_, _, err := execRoot(t, "--config", path, "rules")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRootCmd_HelpSkipsConfig(t *testing.T) {
	_, _, err := execRoot(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "help")
	require.NoError(t, err)
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, _, err := execRoot(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "autolint")
		})
	}

	_, _, err := execRoot(t, "completion", "tcsh")
	require.Error(t, err)
}
