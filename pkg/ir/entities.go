package ir

import "strings"

// EntityRef is an entity_id reference found somewhere in an automation.
type EntityRef struct {
	EntityID string
	Path     string
}

// IsTemplate reports whether s contains Jinja template markup.
func IsTemplate(s string) bool {
	return strings.Contains(s, "{{") || strings.Contains(s, "{%")
}

// EntityRefs returns every literal entity_id value referenced by the
// automation's triggers, conditions and actions, including nested action
// blocks, in path order. Template values are skipped.
func (a *AutomationIR) EntityRefs() []EntityRef {
	var refs []EntityRef
	visit := func(path, key string, v any) {
		if key != "entity_id" {
			return
		}
		s, ok := v.(string)
		if !ok || IsTemplate(s) {
			return
		}
		refs = append(refs, EntityRef{EntityID: s, Path: path})
	}
	for _, t := range a.Triggers {
		Walk(t.Raw, t.Path, visit)
	}
	for _, c := range a.Conditions {
		Walk(c.Raw, c.Path, visit)
	}
	for _, act := range a.Actions {
		Walk(act.Raw, act.Path, visit)
	}
	return refs
}

// ServiceCall is a service invocation found in an action tree.
type ServiceCall struct {
	Service string
	Fields  map[string]any // the mapping that holds the call
	Path    string         // path of that mapping
}

// Key returns the key naming the service: "service" or "action".
func (c ServiceCall) Key() string {
	if _, ok := c.Fields["service"]; ok {
		return "service"
	}
	return "action"
}

// ServiceCalls returns every service call in the automation's actions,
// including calls nested in choose/if/repeat/parallel/sequence blocks.
// Service data is not searched, so notification payloads that happen to
// carry an "action" key are not reported.
func (a *AutomationIR) ServiceCalls() []ServiceCall {
	var calls []ServiceCall
	for _, act := range a.Actions {
		collectCalls(act.Raw, act.Path, &calls)
	}
	return calls
}

func collectCalls(v any, path string, calls *[]ServiceCall) {
	m, ok := v.(map[string]any)
	if !ok {
		return
	}
	if s, ok := m["service"].(string); ok {
		*calls = append(*calls, ServiceCall{Service: s, Fields: m, Path: path})
	} else if s, ok := m["action"].(string); ok {
		*calls = append(*calls, ServiceCall{Service: s, Fields: m, Path: path})
	}

	for _, key := range SortedKeys(m) {
		switch key {
		case "sequence", "default", "then", "else", "parallel", "choose":
			nested := JoinKey(path, key)
			switch block := m[key].(type) {
			case []any:
				for i, elem := range block {
					collectCalls(elem, JoinIndex(nested, i), calls)
				}
			case map[string]any:
				collectCalls(block, nested, calls)
			}
		case "repeat":
			collectCalls(m[key], JoinKey(path, key), calls)
		}
	}
}
