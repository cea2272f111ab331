// Package rules assembles the built-in automation ruleset.
//
// Rules are organized by category:
//   - schema: structural errors the runtime would reject (SCHEMA001-SCHEMA012)
//   - maintainability: naming and documentation (MAINT001-MAINT005)
//   - performance: triggers and waits that run too often or too long (PERF001-PERF003)
//   - security: credentials, transport and physical access (SEC001-SEC004)
//
// Registry returns the frozen registry of every built-in rule:
//
//	eng, err := lint.NewEngine(rules.Registry(), cfg)
//
// Rule ids are never renumbered or reused. A retired rule stays registered
// with Disabled set and RulesetVersion is bumped.
package rules
