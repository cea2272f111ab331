package schema

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "SCHEMA010",
		Name:            "invalid-max-exceeded",
		Category:        core.CategorySchema,
		Description:     "max_exceeded is not a log level.",
		Severity:        core.SeverityError,
		Rationale:       invalidMaxExceededWhy,
		CheckAutomation: checkInvalidMaxExceeded,
	})
}

const invalidMaxExceededWhy = "max_exceeded chooses the log level used when a run is dropped; an unknown level makes the automation fail to load."

var logLevels = []string{"silent", "critical", "fatal", "error", "warning", "warn", "info", "debug", "notset"}

func checkInvalidMaxExceeded(a *ir.AutomationIR, _ map[string]any) []core.Finding {
	var got string
	switch {
	case a.MaxExceeded != nil:
		for _, level := range logLevels {
			if strings.EqualFold(*a.MaxExceeded, level) {
				return nil
			}
		}
		got = fmt.Sprintf("%q", *a.MaxExceeded)
	case a.HasKey("max_exceeded"):
		got = "a " + ir.TypeName(a.Extra["max_exceeded"])
	default:
		return nil
	}
	return []core.Finding{{
		RuleID:       "SCHEMA010",
		Severity:     core.SeverityError,
		Message:      fmt.Sprintf("max_exceeded is %s, expected one of %s", got, strings.Join(logLevels, ", ")),
		WhyItMatters: invalidMaxExceededWhy,
		Path:         ir.JoinKey(a.Path, "max_exceeded"),
		SuggestedFix: core.ManualFix("Use a log level such as warning or silent."),
	}}
}
