package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/autolint/internal/testutil"
)

func TestPerformanceRules(t *testing.T) {
	tests := []struct {
		name string
		rule string
		yaml string
		opts map[string]any
		want []string
	}{
		{"filtered state trigger", "PERF001", "trigger: [{platform: state, entity_id: sensor.a, to: 'on'}]\n", nil, []string{}},
		{"attribute filter", "PERF001", "trigger: [{platform: state, entity_id: sensor.a, attribute: battery}]\n", nil, []string{}},
		{"unfiltered state trigger", "PERF001", "trigger: [{platform: state, entity_id: sensor.a}]\n", nil, []string{"automations[0].trigger[0]"}},
		{"every ten seconds", "PERF001", "trigger: [{platform: time_pattern, seconds: '/10'}]\n", nil, []string{"automations[0].trigger[0]"}},
		{"every second", "PERF001", "trigger: [{platform: time_pattern, seconds: '*'}]\n", nil, []string{"automations[0].trigger[0]"}},
		{"every five minutes", "PERF001", "trigger: [{platform: time_pattern, minutes: '/5'}]\n", nil, []string{}},
		{"fixed second repeats each minute", "PERF001", "trigger: [{platform: time_pattern, seconds: 30}]\n", nil, []string{}},
		{"fixed minute and second hourly", "PERF001", "trigger: [{platform: time_pattern, seconds: 0, minutes: 0, hours: '*'}]\n",
			map[string]any{"min_interval_seconds": 1800}, []string{}},
		{"custom threshold", "PERF001", "trigger: [{platform: time_pattern, minutes: '/5'}]\n",
			map[string]any{"min_interval_seconds": 600}, []string{"automations[0].trigger[0]"}},
		{"trigger key form", "PERF001", "triggers: [{trigger: state, entity_id: sensor.a}]\n", nil, []string{"automations[0].triggers[0]"}},

		{"template without now", "PERF002", "trigger: [{platform: template, value_template: \"{{ is_state('sun.sun', 'below_horizon') }}\"}]\n", nil, []string{}},
		{"template with now", "PERF002", "trigger: [{platform: template, value_template: \"{{ now().hour == 7 }}\"}]\n", nil,
			[]string{"automations[0].trigger[0].value_template"}},
		{"utcnow", "PERF002", "trigger: [{platform: template, value_template: \"{{ utcnow () > x }}\"}]\n", nil,
			[]string{"automations[0].trigger[0].value_template"}},
		{"now in actions is fine", "PERF002", "action: [{service: notify.x, data: {message: \"{{ now() }}\"}}]\n", nil, []string{}},

		{"wait with timeout", "PERF003", "action: [{wait_template: \"{{ x }}\", timeout: '00:01:00'}]\n", nil, []string{}},
		{"wait without timeout", "PERF003", "action: [{delay: 1}, {wait_for_trigger: [{platform: state, entity_id: sensor.a}]}]\n", nil,
			[]string{"automations[0].action[1]"}},
		{"nested wait", "PERF003", `
action:
  - repeat:
      count: 3
      sequence:
        - wait_template: "{{ is_state('light.a', 'off') }}"
`, nil, []string{"automations[0].action[0].repeat.sequence[0]"}},
	}

	for _, tt := range tests {
		t.Run(tt.rule+"/"+tt.name, func(t *testing.T) {
			def := testutil.FindRuleDef(t, Rules(), tt.rule)
			assert.Equal(t, tt.want, testutil.Paths(testutil.CheckRule(t, def, tt.yaml, tt.opts)))
		})
	}
}

func TestPatternInterval(t *testing.T) {
	tests := []struct {
		fields map[string]any
		want   int
		ok     bool
	}{
		{map[string]any{"seconds": "*"}, 1, true},
		{map[string]any{"seconds": "/15"}, 15, true},
		{map[string]any{"minutes": "/2"}, 120, true},
		{map[string]any{"hours": "*"}, 3600, true},
		{map[string]any{"hours": 6}, 86400, true},
		{map[string]any{"seconds": 30}, 60, true},
		{map[string]any{"seconds": 0, "minutes": 0, "hours": "*"}, 3600, true},
		{map[string]any{"seconds": 0, "minutes": "/5"}, 300, true},
		{map[string]any{"seconds": 0, "minutes": 30}, 3600, true},
		{map[string]any{"minutes": 0, "hours": "/2"}, 7200, true},
		{map[string]any{"seconds": 0, "minutes": 0, "hours": 7}, 86400, true},
		{map[string]any{"seconds": "/0"}, 0, false},
		{map[string]any{"minutes": "/x"}, 0, false},
		{map[string]any{}, 0, false},
	}

	for _, tt := range tests {
		got, ok := patternInterval(tt.fields)
		assert.Equal(t, tt.ok, ok, tt.fields)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.fields)
		}
	}
}
