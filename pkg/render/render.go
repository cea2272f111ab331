// Package render serializes automation IR back to YAML and summarizes the
// difference between two renderings.
//
// Output is byte-deterministic: automation keys follow a fixed canonical
// order, nested mappings are emitted with sorted keys, and the container
// shape (single mapping or list) matches what was parsed.
package render

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/autolint/pkg/ir"
)

const indentSize = 2

// canonicalOrder is the key order for automation mappings. Collection keys
// are written in the singular or plural form the document used.
var canonicalOrder = []string{
	"id",
	"alias",
	"description",
	"mode",
	"max",
	"max_exceeded",
	"trigger",
	"condition",
	"action",
}

// Leading keys for collection items; the remaining keys follow sorted.
var (
	triggerLead   = []string{"platform", "trigger"}
	conditionLead = []string{"condition"}
	actionLead    = []string{"service", "action", "target", "data"}
)

// Render serializes a document to YAML.
func Render(doc *ir.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("render: nil document")
	}

	var root *yaml.Node
	if doc.Shape == ir.ShapeSingle && len(doc.Automations) == 1 {
		n, err := automationNode(doc.Automations[0])
		if err != nil {
			return "", err
		}
		root = n
	} else {
		root = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, a := range doc.Automations {
			n, err := automationNode(a)
			if err != nil {
				return "", err
			}
			root.Content = append(root.Content, n)
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indentSize)
	if err := enc.Encode(root); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return buf.String(), nil
}

func automationNode(a *ir.AutomationIR) (*yaml.Node, error) {
	m := &mappingBuilder{node: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}

	emitted := make(map[string]bool, len(canonicalOrder))
	for _, key := range canonicalOrder {
		emitted[key] = true
		switch key {
		case "id":
			m.stringField(key, a.ID, a)
		case "alias":
			m.stringField(key, a.Alias, a)
		case "description":
			m.stringField(key, a.Description, a)
		case "mode":
			m.stringField(key, a.Mode, a)
		case "max_exceeded":
			m.stringField(key, a.MaxExceeded, a)
		case "max":
			if a.Max != nil {
				m.add(key, *a.Max)
			} else if v, ok := a.Extra[key]; ok {
				m.add(key, v)
			}
		case "trigger":
			if a.HasTrigger {
				items := make([]any, len(a.Triggers))
				for i, t := range a.Triggers {
					items[i] = t.Raw
				}
				m.addItems(a.TriggerKey(), items, triggerLead)
			}
		case "condition":
			if a.HasCondition {
				items := make([]any, len(a.Conditions))
				for i, c := range a.Conditions {
					items[i] = c.Raw
				}
				m.addItems(a.ConditionKey(), items, conditionLead)
			}
		case "action":
			if a.HasAction {
				items := make([]any, len(a.Actions))
				for i, act := range a.Actions {
					items[i] = act.Raw
				}
				m.addItems(a.ActionKey(), items, actionLead)
			}
		}
	}
	// Plural forms are covered by their canonical slot.
	emitted["triggers"], emitted["conditions"], emitted["actions"] = true, true, true

	for _, key := range ir.SortedKeys(a.Extra) {
		if emitted[key] {
			continue
		}
		m.add(key, a.Extra[key])
	}
	return m.node, m.err
}

// mappingBuilder appends key/value pairs to a mapping node, keeping the
// first error.
type mappingBuilder struct {
	node *yaml.Node
	err  error
}

func (m *mappingBuilder) add(key string, v any) {
	m.addNode(key, func() (*yaml.Node, error) { return valueNode(v) })
}

func (m *mappingBuilder) addItems(key string, items []any, lead []string) {
	m.addNode(key, func() (*yaml.Node, error) {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range items {
			n, err := itemNode(item, lead)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	})
}

func (m *mappingBuilder) addNode(key string, build func() (*yaml.Node, error)) {
	if m.err != nil {
		return
	}
	v, err := build()
	if err != nil {
		m.err = fmt.Errorf("render %s: %w", key, err)
		return
	}
	m.node.Content = append(m.node.Content, keyNode(key), v)
}

// stringField renders a metadata field, preferring the typed value and
// falling back to a non-scalar value kept in Extra.
func (m *mappingBuilder) stringField(key string, v *string, a *ir.AutomationIR) {
	if v != nil {
		if tag, ok := a.FieldTags[key]; ok {
			m.add(key, ir.Tagged{Tag: tag, Value: *v})
			return
		}
		m.add(key, *v)
		return
	}
	if extra, ok := a.Extra[key]; ok {
		m.add(key, extra)
	}
}

func keyNode(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}

// itemNode renders a trigger/condition/action item with its lead keys first.
func itemNode(v any, lead []string) (*yaml.Node, error) {
	fields, ok := v.(map[string]any)
	if !ok {
		return valueNode(v)
	}
	m := &mappingBuilder{node: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
	used := make(map[string]bool, len(lead))
	for _, k := range lead {
		if val, ok := fields[k]; ok {
			used[k] = true
			m.add(k, val)
		}
	}
	for _, k := range ir.SortedKeys(fields) {
		if !used[k] {
			m.add(k, fields[k])
		}
	}
	return m.node, m.err
}

// valueNode renders an arbitrary value tree with sorted mapping keys.
func valueNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case map[string]any:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range ir.SortedKeys(val) {
			child, err := valueNode(val[k])
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, keyNode(k), child)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elem := range val {
			child, err := valueNode(elem)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	case ir.Tagged:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: val.Tag, Value: val.Value}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(val)}, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(val); err != nil {
			return nil, err
		}
		return n, nil
	}
}

// formatFloat writes a float so it reads back as a float: whole values keep
// a ".0" suffix.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
