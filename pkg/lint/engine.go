package lint

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/fix"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/render"
)

// Version stamps carried by every report.
const (
	EngineVersion  = "1.4.0"
	RulesetVersion = "2026.10.0"
)

// LintOptions are per-request lint settings.
type LintOptions struct {
	// Strict escalates WARN findings to ERROR. INFO is unchanged.
	Strict bool
	// RuleConfig enables or disables rules by id for this request only.
	RuleConfig map[string]bool
}

// FixOptions are per-request fix settings.
type FixOptions struct {
	Mode       core.FixMode
	Strict     bool
	RuleConfig map[string]bool
}

// Engine runs registered rules over automation documents. It holds no
// per-request state and is safe for concurrent use.
type Engine struct {
	registry *Registry
	config   *Config
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used to report rule failures.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine over a registry. The config is copied; every
// rule id it references must be registered.
func NewEngine(registry *Registry, cfg *Config, opts ...EngineOption) (*Engine, error) {
	if registry == nil {
		return nil, fmt.Errorf("lint: registry is required")
	}
	if err := registry.ValidateRuleIDs(cfg.ReferencedIDs()...); err != nil {
		return nil, fmt.Errorf("lint config: %w", err)
	}
	e := &Engine{
		registry: registry,
		config:   cfg.Clone(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Registry returns the engine's rule registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Catalog returns rule metadata with Enabled resolved against the engine's
// configuration.
func (e *Engine) Catalog() []core.RuleInfo {
	return e.catalog(e.registry.All())
}

// CategoryCatalog is Catalog restricted to one category.
func (e *Engine) CategoryCatalog(category core.Category) []core.RuleInfo {
	return e.catalog(e.registry.ByCategory(category))
}

func (e *Engine) catalog(rules []Rule) []core.RuleInfo {
	infos := make([]core.RuleInfo, len(rules))
	for i, rule := range rules {
		infos[i] = GetRuleInfo(rule)
		infos[i].Enabled = e.config.IsEnabled(rule, nil)
		infos[i].Severity = e.config.GetSeverity(rule.ID(), rule.DefaultSeverity())
	}
	return infos
}

// Lint parses text and runs every enabled rule. The returned error is
// non-nil only when opts.RuleConfig names an unknown rule; problems with the
// document itself are reported as findings.
func (e *Engine) Lint(text string, opts LintOptions) (*Report, error) {
	if err := e.registry.ValidateRuleConfig(opts.RuleConfig); err != nil {
		return nil, err
	}

	doc, err := ir.Parse(text)
	if err != nil {
		return e.report(0, []core.Finding{parseFailure(err)}), nil
	}
	findings := e.run(doc, opts.RuleConfig, opts.Strict)
	return e.report(len(doc.Automations), findings), nil
}

// Fix lints text, applies eligible AUTO patches according to opts.Mode and
// re-lints the result. Findings describe the fixed document when anything
// was applied, otherwise the input.
func (e *Engine) Fix(text string, opts FixOptions) (*FixResult, error) {
	if err := e.registry.ValidateRuleConfig(opts.RuleConfig); err != nil {
		return nil, err
	}

	doc, err := ir.Parse(text)
	if err != nil {
		findings := []core.Finding{parseFailure(err)}
		return &FixResult{AppliedFixes: []string{}, Findings: findings, Summary: Summarize(findings)}, nil
	}

	findings := e.run(doc, opts.RuleConfig, opts.Strict)
	fixed, applied := fix.Apply(doc, findings, opts.Mode, e.registry.FixSafety)
	if len(applied) == 0 {
		return &FixResult{AppliedFixes: applied, Findings: findings, Summary: Summarize(findings)}, nil
	}

	before, err := render.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("render original: %w", err)
	}
	after, err := render.Render(fixed)
	if err != nil {
		return nil, fmt.Errorf("render fixed: %w", err)
	}
	diff := render.DiffSummary(before, after)

	remaining := e.run(fixed, opts.RuleConfig, opts.Strict)
	e.logger.Debug("applied fixes", slog.Any("rules", applied), slog.String("diff", diff.String()))
	return &FixResult{
		FixedText:    &after,
		AppliedFixes: applied,
		Findings:     remaining,
		Summary:      Summarize(remaining),
		Diff:         &diff,
	}, nil
}

func (e *Engine) report(automations int, findings []core.Finding) *Report {
	if findings == nil {
		findings = []core.Finding{}
	}
	return &Report{
		EngineVersion:       EngineVersion,
		RulesetVersion:      RulesetVersion,
		AutomationsDetected: automations,
		Findings:            findings,
		Summary:             Summarize(findings),
	}
}

// run executes enabled rules: automation rules over every automation in
// declaration order, document rules once. A rule that panics is reported
// once and not run over the remaining automations.
func (e *Engine) run(doc *ir.Document, requested map[string]bool, strict bool) []core.Finding {
	findings := []core.Finding{}
	for _, rule := range e.registry.All() {
		if !e.config.IsEnabled(rule, requested) {
			continue
		}
		opts := e.config.GetRuleOptions(rule.ID())

		switch r := rule.(type) {
		case DocumentRule:
			findings = append(findings, e.checkDocument(r, doc, opts)...)
		case AutomationRule:
			for _, a := range doc.Automations {
				found, ok := e.checkAutomation(r, a, opts)
				findings = append(findings, found...)
				if !ok {
					break
				}
			}
		}
	}

	if strict {
		for i := range findings {
			if findings[i].Severity == core.SeverityWarn {
				findings[i].Severity = core.SeverityError
			}
		}
	}
	SortFindings(findings)
	return findings
}

func (e *Engine) checkAutomation(rule AutomationRule, a *ir.AutomationIR, opts map[string]any) (findings []core.Finding, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			findings, ok = []core.Finding{e.ruleFailure(rule, a.Path, r)}, false
		}
	}()
	return e.applySeverity(rule, rule.CheckAutomation(a, opts)), true
}

func (e *Engine) checkDocument(rule DocumentRule, doc *ir.Document, opts map[string]any) (findings []core.Finding) {
	defer func() {
		if r := recover(); r != nil {
			findings = []core.Finding{e.ruleFailure(rule, ir.RootPath, r)}
		}
	}()
	return e.applySeverity(rule, rule.CheckDocument(doc, opts))
}

func (e *Engine) applySeverity(rule Rule, findings []core.Finding) []core.Finding {
	sev, ok := e.config.SeverityOverrides[rule.ID()]
	if !ok {
		return findings
	}
	for i := range findings {
		findings[i].Severity = sev
	}
	return findings
}

func (e *Engine) ruleFailure(rule Rule, path string, recovered any) core.Finding {
	e.logger.Error("rule execution failed",
		slog.String("rule_id", rule.ID()),
		slog.String("path", path),
		slog.Any("panic", recovered),
	)
	return core.Finding{
		RuleID:       rule.ID(),
		Severity:     core.SeverityError,
		Message:      fmt.Sprintf("rule execution failure: %v", recovered),
		WhyItMatters: "The rule could not complete, so this automation was not fully checked.",
		Path:         path,
	}
}

func parseFailure(err error) core.Finding {
	return core.Finding{
		RuleID:       core.ParseRuleID,
		Severity:     core.SeverityError,
		Message:      err.Error(),
		WhyItMatters: "The document could not be read as automation YAML, so no rules were run.",
		Path:         ir.RootPath,
		SuggestedFix: core.ManualFix("Fix the YAML so the root is a mapping or a list of mappings."),
	}
}
