package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/autolint/pkg/lint"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display autolint, engine and ruleset versions.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "autolint v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "engine %s, ruleset %s\n", lint.EngineVersion, lint.RulesetVersion)
		},
	}
}
