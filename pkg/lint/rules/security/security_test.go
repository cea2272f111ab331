package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/autolint/internal/testutil"
	"github.com/leapstack-labs/autolint/pkg/core"
)

func check(t *testing.T, id, text string) []core.Finding {
	t.Helper()
	return testutil.CheckRule(t, testutil.FindRuleDef(t, Rules(), id), text, nil)
}

func TestSecurityRules(t *testing.T) {
	tests := []struct {
		name string
		rule string
		yaml string
		want []string
	}{
		{"https is fine", "SEC001", `
action:
  - service: rest_command.call
    data: {url: "https://api.example.com/hook"}
`, []string{}},
		{"plain http", "SEC001", `
action:
  - service: rest_command.call
    data: {url: "http://api.example.com/hook"}
`, []string{"automations[0].action[0].data.url"}},
		{"loopback http", "SEC001", `
action:
  - service: rest_command.call
    data: {url: "http://127.0.0.1:8123/api", other: "http://localhost/x"}
`, []string{}},

		{"fixed shell command", "SEC002", "action: [{service: shell_command.backup, data: {target: nas}}]\n", []string{}},
		{"templated shell command", "SEC002", `
action:
  - service: shell_command.play
    data:
      file: "{{ trigger.to_state.state }}"
`, []string{"automations[0].action[0].data.file"}},
		{"templates in other services", "SEC002", `
action: [{service: notify.phone, data: {message: "{{ states('sensor.t') }}"}}]
`, []string{}},

		{"secret reference", "SEC003", `
action:
  - service: rest_command.call
    data:
      password: !secret router_password
      api_token: "{{ states('input_text.token') }}"
`, []string{}},
		{"hardcoded credentials", "SEC003", `
action:
  - service: rest_command.call
    data:
      password: hunter2
      Router_API_Key: abc123
      username: admin
`, []string{"automations[0].action[0].data.Router_API_Key", "automations[0].action[0].data.password"}},

		{"unguarded unlock", "SEC004", "trigger: [{platform: sun}]\naction: [{service: lock.unlock, target: {entity_id: lock.front}}]\n",
			[]string{"automations[0].action[0]"}},
		{"automation conditions guard", "SEC004", `
trigger: [{platform: sun}]
condition: [{condition: state, entity_id: person.me, state: home}]
action: [{service: lock.unlock}]
`, []string{}},
		{"choose guards", "SEC004", `
trigger: [{platform: sun}]
action:
  - choose:
      conditions: [{condition: state, entity_id: person.me, state: home}]
      sequence: [{service: alarm_control_panel.alarm_disarm}]
`, []string{}},
		{"if guards", "SEC004", `
trigger: [{platform: sun}]
action:
  - if: [{condition: state, entity_id: person.me, state: home}]
    then: [{action: cover.open_cover}]
`, []string{}},
		{"harmless service", "SEC004", "trigger: [{platform: sun}]\naction: [{service: lock.lock}]\n", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.rule+"/"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, testutil.Paths(check(t, tt.rule, tt.yaml)))
		})
	}
}

func TestHardcodedSecretSeverity(t *testing.T) {
	findings := check(t, "SEC003", "action: [{service: x.y, data: {token: abc}}]\n")
	require.Len(t, findings, 1)
	assert.Equal(t, core.SeverityError, findings[0].Severity)
	require.NotNil(t, findings[0].SuggestedFix)
	assert.Equal(t, core.FixKindManual, findings[0].SuggestedFix.Kind)
}

func TestIsCredentialKey(t *testing.T) {
	for _, key := range []string{"password", "TOKEN", "client_secret", "github_token", "my_api_key"} {
		assert.True(t, isCredentialKey(key), key)
	}
	for _, key := range []string{"username", "entity_id", "tokens_left", "url"} {
		assert.False(t, isCredentialKey(key), key)
	}
}
