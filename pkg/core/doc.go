// Package core defines the shared language of the autolint system.
//
// This package contains:
//   - Severity levels and rule categories
//   - Findings and suggested fixes (including the patch data the fixer consumes)
//   - Fix modes and fix safety tiers
//   - RuleInfo, the rule catalog entry
//
// The Golden Rule: pkg/core imports ONLY the standard library.
// All other packages depend on core, not the reverse.
package core
