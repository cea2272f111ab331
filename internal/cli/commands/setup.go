package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/autolint/internal/cli/config"
	"github.com/leapstack-labs/autolint/internal/cli/output"
	intconfig "github.com/leapstack-labs/autolint/internal/config"
	"github.com/leapstack-labs/autolint/pkg/lint"
	"github.com/leapstack-labs/autolint/pkg/lint/rules"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *lint.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with an engine over the
// built-in ruleset. format, when set, overrides the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	eng, err := rules.NewEngine(cfg.Lint.ToLintConfig(), logger)
	if err != nil {
		return nil, err
	}

	r, err := newRenderer(cmd, cfg, format)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Engine:   eng,
		Renderer: r,
	}, nil
}

// Helper functions shared across commands

// getConfig returns the loaded configuration, or defaults when the command
// runs outside the root command.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return intconfig.Default()
}

func newRenderer(cmd *cobra.Command, cfg *config.Config, format string) (*output.Renderer, error) {
	raw := cfg.Output
	if format != "" {
		raw = format
	}
	mode, err := output.ParseMode(raw)
	if err != nil {
		return nil, err
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode), nil
}

// ruleOverrides builds a per-request enable map from --enable and --disable.
// A rule named in both is disabled.
func ruleOverrides(enable, disable []string) map[string]bool {
	if len(enable) == 0 && len(disable) == 0 {
		return nil
	}
	m := make(map[string]bool, len(enable)+len(disable))
	for _, id := range enable {
		if id = strings.TrimSpace(id); id != "" {
			m[id] = true
		}
	}
	for _, id := range disable {
		if id = strings.TrimSpace(id); id != "" {
			m[id] = false
		}
	}
	return m
}

// stdinPath is the argument that reads a document from standard input.
const stdinPath = "-"

// readInput reads a file, or stdin for "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == stdinPath {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path) //nolint:gosec // user-supplied path is the point
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

// displayPath names an input in output.
func displayPath(path string) string {
	if path == stdinPath {
		return "<stdin>"
	}
	return path
}
