package performance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/ir"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

func init() {
	register(lint.RuleDef{
		ID:              "PERF001",
		Name:            "high-frequency-trigger",
		Category:        core.CategoryPerformance,
		Description:     "Trigger can fire far more often than intended.",
		Severity:        core.SeverityWarn,
		ConfigKeys:      []string{"min_interval_seconds"},
		Rationale:       highFrequencyTriggerWhy,
		CheckAutomation: checkHighFrequencyTrigger,
	})
}

const highFrequencyTriggerWhy = "A state trigger without to/from/attribute/for fires on every attribute update, " +
	"and a fast time_pattern fires continuously. Both can flood the event bus and run actions far more often than intended."

// DefaultMinIntervalSeconds is the PERF001 time_pattern threshold.
const DefaultMinIntervalSeconds = 60

type highFrequencyOptions struct {
	MinIntervalSeconds int `mapstructure:"min_interval_seconds"`
}

// Keys that narrow a state trigger to specific changes.
var stateFilters = []string{"to", "from", "attribute", "for", "not_to", "not_from"}

func checkHighFrequencyTrigger(a *ir.AutomationIR, opts map[string]any) []core.Finding {
	cfg := highFrequencyOptions{MinIntervalSeconds: DefaultMinIntervalSeconds}
	if err := lint.DecodeOptions(opts, &cfg); err != nil || cfg.MinIntervalSeconds <= 0 {
		cfg.MinIntervalSeconds = DefaultMinIntervalSeconds
	}

	var findings []core.Finding
	for _, t := range a.Triggers {
		fields := t.Fields()
		if fields == nil {
			continue
		}
		var msg string
		switch t.Platform {
		case "state":
			if hasAny(fields, stateFilters) {
				continue
			}
			msg = "State trigger has no to, from, attribute or for filter and fires on every update"
		case "time_pattern":
			interval, ok := patternInterval(fields)
			if !ok || interval >= cfg.MinIntervalSeconds {
				continue
			}
			msg = fmt.Sprintf("time_pattern trigger fires every %ds (threshold: %ds)", interval, cfg.MinIntervalSeconds)
		default:
			continue
		}
		findings = append(findings, core.Finding{
			RuleID:       "PERF001",
			Severity:     core.SeverityWarn,
			Message:      msg,
			WhyItMatters: highFrequencyTriggerWhy,
			Path:         t.Path,
			SuggestedFix: core.ManualFix("Filter the trigger with to/from/for, or use a longer interval."),
		})
	}
	return findings
}

func hasAny(fields map[string]any, keys []string) bool {
	for _, k := range keys {
		if _, ok := fields[k]; ok {
			return true
		}
	}
	return false
}

// patternInterval estimates how often a time_pattern trigger fires, in
// seconds. Fixed values only narrow the period; the most granular wildcard or
// /n field decides it. Unset fields finer than the first set one are zero,
// coarser ones match everything.
func patternInterval(fields map[string]any) (int, bool) {
	units := []struct {
		key    string
		period int // seconds per step of this field
	}{
		{"seconds", 1},
		{"minutes", 60},
		{"hours", 3600},
	}
	set := false
	for _, u := range units {
		v, ok := fields[u.key]
		if !ok {
			if set {
				return u.period, true
			}
			continue
		}
		set = true
		s, ok := ir.ScalarString(v)
		if !ok {
			return 0, false
		}
		s = strings.TrimSpace(s)
		switch {
		case s == "*":
			return u.period, true
		case strings.HasPrefix(s, "/"):
			n, err := strconv.Atoi(strings.TrimPrefix(s, "/"))
			if err != nil || n <= 0 {
				return 0, false
			}
			return n * u.period, true
		}
	}
	if !set {
		return 0, false
	}
	return 86400, true
}
