package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/autolint/internal/cli/output"
	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
	"github.com/leapstack-labs/autolint/pkg/render"
)

// FixOptions holds options for the fix command.
type FixOptions struct {
	Format  string   // Output format: text, markdown, json
	Mode    string   // Fix mode: none, safe, aggressive
	Write   bool     // Rewrite the file in place
	Diff    bool     // Show a unified diff instead of the fixed document
	Strict  bool     // Escalate warnings to errors
	Enable  []string // Rule IDs to enable for this run
	Disable []string // Rule IDs to disable for this run
}

// NewFixCommand creates the fix command.
func NewFixCommand() *cobra.Command {
	opts := &FixOptions{}
	cmd := &cobra.Command{
		Use:   "fix [file]",
		Short: "Apply automatic fixes to an automation document",
		Long: `Lint a document, apply the automatic fixes the mode allows and print
the fixed document.

Only fixes marked AUTO are applied. In safe mode only fixes that never
change behavior run (adding missing alias or description fields); the
aggressive mode is reserved and currently behaves like safe. The fixed
document is re-rendered in canonical form, so comments are not preserved.

Reads standard input when no file is given or the file is "-".`,
		Example: `  # Print the fixed document
  autolint fix automations.yaml

  # Preview the changes as a diff
  autolint fix --diff automations.yaml

  # Rewrite the file in place
  autolint fix --write automations.yaml

  # Full result as JSON
  autolint fix --format json automations.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := stdinPath
			if len(args) > 0 {
				path = args[0]
			}
			return runFix(cmd, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "Fix mode: none, safe, aggressive (default from config: safe)")
	cmd.Flags().BoolVar(&opts.Write, "write", false, "Write the fixed document back to the file")
	cmd.Flags().BoolVarP(&opts.Diff, "diff", "d", false, "Show a unified diff of the changes")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Escalate WARN findings to ERROR")
	cmd.Flags().StringSliceVar(&opts.Enable, "enable", nil, "Rule IDs to enable for this run")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable for this run")

	_ = cmd.RegisterFlagCompletionFunc("mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"none", "safe", "aggressive"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runFix(cmd *cobra.Command, path string, opts *FixOptions) error {
	if opts.Write && path == stdinPath {
		return fmt.Errorf("--write needs a file argument")
	}

	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	rawMode := cmdCtx.Cfg.Fix.Mode
	if opts.Mode != "" {
		rawMode = opts.Mode
	}
	mode, err := core.ParseFixMode(rawMode)
	if err != nil {
		return err
	}

	text, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	result, err := cmdCtx.Engine.Fix(text, lint.FixOptions{
		Mode:       mode,
		Strict:     opts.Strict || cmdCtx.Cfg.Lint.Strict,
		RuleConfig: ruleOverrides(opts.Enable, opts.Disable),
	})
	if err != nil {
		return err
	}

	if opts.Write && result.FixedText != nil {
		if err := writeInPlace(path, *result.FixedText); err != nil {
			return err
		}
		cmdCtx.Logger.Info("wrote fixed document", "path", path, "fixes", len(result.AppliedFixes))
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(result)
	}

	switch {
	case opts.Diff:
		return renderFixDiff(r, path, text, result)
	case opts.Write:
		renderFixSummary(r, path, result)
		return nil
	default:
		// Print the document as a formatter would; unchanged input passes through.
		fixed := text
		if result.FixedText != nil {
			fixed = *result.FixedText
		}
		r.Printf("%s", fixed)
		return nil
	}
}

func renderFixDiff(r *output.Renderer, path, text string, result *lint.FixResult) error {
	if result.FixedText == nil {
		r.Success("No fixes to apply")
		return nil
	}

	// Diff against the canonical rendering of the input so only the fixes
	// show, not formatting changes.
	before := text
	if doc, err := ir.Parse(text); err == nil {
		if rendered, err := render.Render(doc); err == nil {
			before = rendered
		}
	}
	diff, err := render.UnifiedDiff(before, *result.FixedText, displayPath(path))
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println("```diff")
		r.Printf("%s", diff)
		r.Println("```")
	} else {
		// Style line by line; lipgloss pads multi-line strings to a block.
		for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
			switch {
			case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
				r.Println(r.Styles().Bold.Render(line))
			case strings.HasPrefix(line, "+"):
				r.Println(r.Styles().Added.Render(line))
			case strings.HasPrefix(line, "-"):
				r.Println(r.Styles().Removed.Render(line))
			default:
				r.Println(line)
			}
		}
	}
	renderFixSummary(r, path, result)
	return nil
}

func renderFixSummary(r *output.Renderer, path string, result *lint.FixResult) {
	if len(result.AppliedFixes) == 0 {
		r.Success("No fixes to apply")
	} else {
		msg := fmt.Sprintf("Applied %d fixes (%s)", len(result.AppliedFixes), strings.Join(result.AppliedFixes, ", "))
		if result.Diff != nil {
			msg += ": " + result.Diff.String()
		}
		r.Success(msg)
	}
	if len(result.Findings) > 0 {
		r.Println("")
		renderReport(r, displayPath(path), result.Findings, result.Summary, -1)
	}
}

// writeInPlace replaces path's contents, keeping its permissions.
func writeInPlace(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
