// Package maintainability provides rules that keep automations readable and
// editable over time.
//
//   - MAINT001: Missing Description (auto-fixable)
//   - MAINT002: Missing Alias (auto-fixable)
//   - MAINT003: Missing ID
//   - MAINT004: Long Action Sequence - more than max_actions top-level actions
//   - MAINT005: Device ID Reference - device_id instead of entity_id (off by default)
//
// The auto-fixes set the missing field to an empty string. The rules check
// whether the key is present, so a fixed automation is not reported again.
package maintainability
