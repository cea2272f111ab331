// Package lint provides the rule framework and engine for automation linting.
//
// # Architecture
//
//  1. Root package (pkg/lint/): rule contracts, the Registry, Config and the Engine
//  2. Rule packages (pkg/lint/rules/...): the built-in ruleset, one file per rule
//  3. pkg/fix and pkg/render: patch application and YAML output used by Engine.Fix
//
// # Rules
//
// A rule is either an AutomationRule, checked once per automation, or a
// DocumentRule, checked once per document. Most rules are declared as a
// RuleDef and wrapped:
//
//	reg := lint.NewRegistry()
//	reg.RegisterDef(lint.RuleDef{
//		ID:              "MAINT002",
//		Name:            "missing-alias",
//		Category:        core.CategoryMaintainability,
//		Severity:        core.SeverityInfo,
//		FixSafety:       core.FixSafetyMetadata,
//		CheckAutomation: checkMissingAlias,
//	})
//	reg.Freeze()
//
// Registration is append-only; a duplicate id panics.
//
// # Configuration
//
// Config controls which rules are enabled, their severity and their options:
//
//	cfg := lint.NewConfig()
//	cfg.Disable("MAINT001")
//	cfg.Enable("MAINT005")
//	cfg.SetSeverity("PERF002", core.SeverityError)
//	cfg.SetRuleOptions("MAINT004", map[string]any{"max_actions": 20})
//
// # Running
//
//	eng, err := lint.NewEngine(reg, cfg, lint.WithLogger(logger))
//	report, err := eng.Lint(text, lint.LintOptions{Strict: true})
//
// A panicking rule is isolated: it yields one ERROR finding under its own id
// and the remaining rules still run.
package lint
