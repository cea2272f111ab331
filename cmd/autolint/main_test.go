// Package main provides end-to-end tests for the autolint CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/autolint/internal/cli"
	"github.com/leapstack-labs/autolint/internal/cli/commands"
	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/lint"
	"github.com/leapstack-labs/autolint/pkg/lint/rules"
)

const clean = `id: porch_light
alias: Porch light at sunset
description: Turns the porch light on at sunset.
trigger:
  - platform: sun
    event: sunset
action:
  - service: light.turn_on
    target:
      entity_id: light.porch
`

const inert = "alias: Inert\ndescription: nothing\nid: inert\n"

// One PERF001 warning and nothing else.
const warnOnly = `id: hall_light
alias: Hall light
description: Hall light follows motion.
trigger:
  - platform: state
    entity_id: binary_sensor.motion
action:
  - service: light.turn_on
    target:
      entity_id: light.hall
`

const missingMetadata = `id: porch_light
trigger:
  - platform: sun
    event: sunset
action:
  - service: light.turn_on
    target:
      entity_id: light.porch
`

const fixedMetadata = `id: porch_light
alias: ""
description: ""
trigger:
  - platform: sun
    event: sunset
action:
  - service: light.turn_on
    target:
      entity_id: light.porch
`

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the root command in an empty working directory so no stray
// autolint.yaml is picked up.
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersionCommand(t *testing.T) {
	res := run(t, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "autolint v"+cli.Version)
	assert.Contains(t, res.stdout, lint.EngineVersion)
	assert.Contains(t, res.stdout, lint.RulesetVersion)
}

func TestHelpCommand(t *testing.T) {
	res := run(t, "", "--help")
	require.NoError(t, res.err)
	for _, name := range []string{"lint", "fix", "rules", "serve", "version", "completion"} {
		assert.Contains(t, res.stdout, name)
	}
}

func TestLintCommand(t *testing.T) {
	dir := t.TempDir()
	cleanPath := writeFile(t, dir, "clean.yaml", clean)
	inertPath := writeFile(t, dir, "inert.yaml", inert)
	warnPath := writeFile(t, dir, "warn.yaml", warnOnly)

	t.Run("clean file as json", func(t *testing.T) {
		res := run(t, "", "lint", "--format", "json", cleanPath)
		require.NoError(t, res.err)

		var report lint.Report
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
		assert.Equal(t, 1, report.AutomationsDetected)
		assert.Empty(t, report.Findings)
	})

	t.Run("errors fail the run", func(t *testing.T) {
		res := run(t, "", "lint", "-f", "json", inertPath)
		require.ErrorIs(t, res.err, commands.ErrLintFailed)

		var report lint.Report
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
		assert.Equal(t, "SCHEMA001", report.Findings[0].RuleID)
	})

	t.Run("warnings pass unless strict", func(t *testing.T) {
		require.NoError(t, run(t, "", "lint", warnPath).err)
		require.ErrorIs(t, run(t, "", "lint", "--strict", warnPath).err, commands.ErrLintFailed)
	})

	t.Run("stdin", func(t *testing.T) {
		res := run(t, inert, "lint", "-o", "json")
		require.ErrorIs(t, res.err, commands.ErrLintFailed)
		assert.Contains(t, res.stdout, `"rule_id": "SCHEMA001"`)
	})

	t.Run("several files keep argument order", func(t *testing.T) {
		res := run(t, "", "lint", "-f", "json", "-j", "2", warnPath, cleanPath, inertPath)
		require.ErrorIs(t, res.err, commands.ErrLintFailed)

		var reports []struct {
			Path   string      `json:"path"`
			Report lint.Report `json:"report"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &reports))
		require.Len(t, reports, 3)
		assert.Equal(t, []string{warnPath, cleanPath, inertPath}, []string{reports[0].Path, reports[1].Path, reports[2].Path})
		assert.Equal(t, 1, reports[0].Report.Summary.WarningsCount)
		assert.Empty(t, reports[1].Report.Findings)
	})

	t.Run("markdown when piped", func(t *testing.T) {
		res := run(t, "", "lint", inertPath)
		require.ErrorIs(t, res.err, commands.ErrLintFailed)
		assert.Contains(t, res.stdout, "## "+inertPath)
		assert.Contains(t, res.stdout, "| SCHEMA001 |")
		assert.Contains(t, res.stdout, "**Summary:** 1 errors")
	})

	t.Run("disable and enable for one run", func(t *testing.T) {
		require.NoError(t, run(t, "", "lint", "--strict", "--disable", "PERF001", warnPath).err)

		res := run(t, "", "lint", "-f", "json", "--enable", "MAINT005", cleanPath)
		require.NoError(t, res.err)
	})

	t.Run("unknown rule", func(t *testing.T) {
		res := run(t, "", "lint", "--enable", "NOPE001", cleanPath)
		require.ErrorIs(t, res.err, lint.ErrUnknownRule)
	})

	t.Run("missing file", func(t *testing.T) {
		res := run(t, "", "lint", filepath.Join(dir, "absent.yaml"))
		require.Error(t, res.err)
		assert.NotErrorIs(t, res.err, commands.ErrLintFailed)
	})

	t.Run("watch needs files", func(t *testing.T) {
		require.Error(t, run(t, clean, "lint", "--watch").err)
	})
}

func TestLintCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	warnPath := writeFile(t, dir, "warn.yaml", warnOnly)
	cfgPath := writeFile(t, dir, "autolint.yaml", `lint:
  strict: true
  rules:
    PERF001: false
`)

	require.NoError(t, run(t, "", "--config", cfgPath, "lint", warnPath).err)

	badCfg := writeFile(t, dir, "bad.yaml", "lint:\n  rules:\n    NOPE001: true\n")
	res := run(t, "", "--config", badCfg, "lint", warnPath)
	require.ErrorIs(t, res.err, lint.ErrUnknownRule)
}

func TestLintCommand_EnvStrict(t *testing.T) {
	warnPath := writeFile(t, t.TempDir(), "warn.yaml", warnOnly)
	t.Setenv("AUTOLINT_LINT_STRICT", "true")

	require.ErrorIs(t, run(t, "", "lint", warnPath).err, commands.ErrLintFailed)
}

func TestFixCommand(t *testing.T) {
	t.Run("prints fixed document", func(t *testing.T) {
		res := run(t, missingMetadata, "fix")
		require.NoError(t, res.err)
		assert.Equal(t, fixedMetadata, res.stdout)
	})

	t.Run("mode none passes input through", func(t *testing.T) {
		res := run(t, missingMetadata, "fix", "--mode", "none")
		require.NoError(t, res.err)
		assert.Equal(t, missingMetadata, res.stdout)
	})

	t.Run("mode from env", func(t *testing.T) {
		t.Setenv("AUTOLINT_FIX_MODE", "none")
		res := run(t, missingMetadata, "fix")
		require.NoError(t, res.err)
		assert.Equal(t, missingMetadata, res.stdout)
	})

	t.Run("invalid mode", func(t *testing.T) {
		res := run(t, missingMetadata, "fix", "--mode", "reckless")
		require.ErrorIs(t, res.err, core.ErrInvalidFixMode)
	})

	t.Run("write in place", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "auto.yaml", missingMetadata)
		res := run(t, "", "fix", "--write", path)
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Applied 2 fixes (MAINT001, MAINT002)")

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, fixedMetadata, string(got))

		res = run(t, "", "fix", "--write", path)
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "No fixes to apply")
	})

	t.Run("write needs a file", func(t *testing.T) {
		require.Error(t, run(t, missingMetadata, "fix", "--write").err)
	})

	t.Run("diff", func(t *testing.T) {
		res := run(t, missingMetadata, "fix", "--diff")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "```diff")
		assert.Contains(t, res.stdout, "+alias: \"\"\n")
		assert.Contains(t, res.stdout, "+description: \"\"\n")
		assert.Contains(t, res.stdout, "2 added, 0 removed, 0 modified")
	})

	t.Run("json", func(t *testing.T) {
		res := run(t, missingMetadata, "fix", "-f", "json")
		require.NoError(t, res.err)

		var fr lint.FixResult
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &fr))
		assert.Equal(t, []string{"MAINT001", "MAINT002"}, fr.AppliedFixes)
		require.NotNil(t, fr.FixedText)
		assert.Equal(t, fixedMetadata, *fr.FixedText)
	})
}

func TestRulesCommand(t *testing.T) {
	t.Run("json catalog", func(t *testing.T) {
		res := run(t, "", "rules", "-f", "json")
		require.NoError(t, res.err)

		var catalog []core.RuleInfo
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &catalog))
		assert.Len(t, catalog, rules.Registry().Count())
	})

	t.Run("category filter", func(t *testing.T) {
		res := run(t, "", "rules", "-f", "json", "--category", "security")
		require.NoError(t, res.err)

		var catalog []core.RuleInfo
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &catalog))
		require.NotEmpty(t, catalog)
		for _, r := range catalog {
			assert.Equal(t, core.CategorySecurity, r.Category)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		require.Error(t, run(t, "", "rules", "--category", "style").err)
	})

	t.Run("markdown tables by category", func(t *testing.T) {
		res := run(t, "", "rules")
		require.NoError(t, res.err)
		for _, heading := range []string{"### Schema", "### Maintainability", "### Performance", "### Security"} {
			assert.Contains(t, res.stdout, heading)
		}
		assert.Contains(t, res.stdout, "| MAINT005 |")
	})

	t.Run("config enables opt-in rule", func(t *testing.T) {
		cfgPath := writeFile(t, t.TempDir(), "autolint.yaml", "lint:\n  rules:\n    MAINT005: true\n")
		res := run(t, "", "--config", cfgPath, "rules", "-f", "json")
		require.NoError(t, res.err)

		var catalog []core.RuleInfo
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &catalog))
		for _, r := range catalog {
			if r.RuleID == "MAINT005" {
				assert.True(t, r.Enabled)
			}
		}
	})

	t.Run("single rule", func(t *testing.T) {
		res := run(t, "", "rules", "sec003")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "## SEC003: ")
		assert.Contains(t, res.stdout, "### Why it matters")
	})

	t.Run("unknown rule", func(t *testing.T) {
		res := run(t, "", "rules", "NOPE001")
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "not found")
	})
}

func TestInvalidConfig(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "autolint.yaml", "output: xml\n")
	res := run(t, "", "--config", cfgPath, "version")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid configuration")
}
