package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/autolint/pkg/lint"
)

// ErrLintFailed is returned when any linted document has ERROR findings.
var ErrLintFailed = errors.New("lint found errors")

// watchDebounce is how long to wait after the last change before re-linting.
const watchDebounce = 100 * time.Millisecond

// LintOptions holds options for the lint command.
type LintOptions struct {
	Format  string   // Output format: text, markdown, json
	Strict  bool     // Escalate warnings to errors
	Enable  []string // Rule IDs to enable for this run
	Disable []string // Rule IDs to disable for this run
	Jobs    int      // Files linted in parallel
	Watch   bool     // Re-lint on change
}

// fileReport pairs an input with its report.
type fileReport struct {
	Path   string       `json:"path"`
	Report *lint.Report `json:"report"`
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [files...]",
		Short: "Lint automation documents",
		Long: `Analyze automation documents for schema, maintainability, performance
and security issues.

Reads standard input when no file is given or the file is "-". Rules are
configured in autolint.yaml; --enable and --disable apply to this run only.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format

Exits with an error when any ERROR finding is reported.`,
		Example: `  # Lint a file
  autolint lint automations.yaml

  # Lint several files, four at a time
  autolint lint -j 4 automations/*.yaml

  # Treat warnings as errors
  autolint lint --strict automations.yaml

  # Turn on an opt-in rule and silence another
  autolint lint --enable MAINT005 --disable PERF001 automations.yaml

  # Lint from stdin as JSON
  cat automations.yaml | autolint lint --format json

  # Re-lint whenever the file changes
  autolint lint --watch automations.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Escalate WARN findings to ERROR")
	cmd.Flags().StringSliceVar(&opts.Enable, "enable", nil, "Rule IDs to enable for this run")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable for this run")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Files to lint in parallel (default: number of CPUs)")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-lint files when they change")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, opts *LintOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{stdinPath}
	}
	if opts.Watch && slices.Contains(paths, stdinPath) {
		return fmt.Errorf("--watch needs file arguments")
	}

	lintOpts := lint.LintOptions{
		Strict:     opts.Strict || cmdCtx.Cfg.Lint.Strict,
		RuleConfig: ruleOverrides(opts.Enable, opts.Disable),
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = cmdCtx.Cfg.Jobs
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results, err := lintFiles(cmd, cmdCtx.Engine, paths, lintOpts, jobs)
	if err != nil {
		return err
	}
	if err := renderLintResults(cmdCtx.Renderer, results); err != nil {
		return err
	}

	if opts.Watch {
		return watchFiles(cmd.Context(), cmdCtx, paths, func(changed []string) {
			results, err := lintFiles(cmd, cmdCtx.Engine, changed, lintOpts, jobs)
			if err != nil {
				cmdCtx.Renderer.Error(err.Error())
				return
			}
			_ = renderLintResults(cmdCtx.Renderer, results)
		})
	}

	for _, res := range results {
		if res.Report.HasErrors() {
			return ErrLintFailed
		}
	}
	return nil
}

// lintFiles lints every path with at most jobs in flight. Results keep the
// order of paths.
func lintFiles(cmd *cobra.Command, eng *lint.Engine, paths []string, opts lint.LintOptions, jobs int) ([]fileReport, error) {
	results := make([]fileReport, len(paths))

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			text, err := readInput(cmd, path)
			if err != nil {
				return err
			}
			report, err := eng.Lint(text, opts)
			if err != nil {
				return err
			}
			results[i] = fileReport{Path: displayPath(path), Report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// watchFiles calls onChange with the files written since the last call until
// ctx is cancelled. Directories are watched rather than files so editors that
// replace files on save are still seen.
func watchFiles(ctx context.Context, cmdCtx *CommandContext, paths []string, onChange func([]string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = p
		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			dirs[dir] = true
		}
	}

	cmdCtx.Renderer.Muted("Watching for changes. Press Ctrl+C to stop.")

	var (
		mu            sync.Mutex
		runMu         sync.Mutex // serializes onChange
		pending       = make(map[string]bool)
		debounceTimer *time.Timer
	)
	flush := func() {
		mu.Lock()
		changed := make([]string, 0, len(pending))
		for p := range pending {
			changed = append(changed, p)
		}
		clear(pending)
		mu.Unlock()

		if len(changed) == 0 {
			return
		}
		slices.Sort(changed)
		cmdCtx.Logger.Debug("change detected", "files", changed)

		runMu.Lock()
		defer runMu.Unlock()
		onChange(changed)
	}

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			orig, ok := watched[filepath.Clean(event.Name)]
			if !ok {
				continue
			}

			mu.Lock()
			pending[orig] = true
			mu.Unlock()

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, flush)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmdCtx.Logger.Warn("watcher error", "error", err)
		}
	}
}
