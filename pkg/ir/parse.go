package ir

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseError is returned when a document is not structurally valid or its
// root has the wrong shape. It is distinct from lint findings.
type ParseError struct {
	Line    int // 1-based; 0 when unknown
	Column  int // 1-based; 0 when unknown
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
	}
	return "parse error: " + e.Message
}

func newParseError(n *yaml.Node, format string, args ...any) *ParseError {
	e := &ParseError{Message: fmt.Sprintf(format, args...)}
	if n != nil {
		e.Line, e.Column = n.Line, n.Column
	}
	return e
}

// Aliases may expand a document to at most this many times its source node
// count, plus a fixed allowance for small documents.
const (
	aliasExpansionFactor = 10
	minExpansionBudget   = 10000
)

// yamlLineRe extracts the line from yaml.v3 syntax errors ("yaml: line 3: ...").
var yamlLineRe = regexp.MustCompile(`^yaml: line (\d+): (.*)$`)

func syntaxError(err error) *ParseError {
	msg := err.Error()
	if m := yamlLineRe.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return &ParseError{Line: line, Message: m[2]}
	}
	return &ParseError{Message: strings.TrimPrefix(msg, "yaml: ")}
}

// Parse builds the IR for a document containing either one automation
// mapping or a sequence of automation mappings. Declaration order is
// preserved. Documents whose aliases expand far beyond their source size are
// rejected.
func Parse(text string) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader([]byte(text)))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Message: "document is empty"}
		}
		return nil, syntaxError(err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); err == nil {
		return nil, newParseError(&extra, "multiple YAML documents are not supported")
	} else if !errors.Is(err, io.EOF) {
		return nil, syntaxError(err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, &ParseError{Message: "document is empty"}
		}
		node = node.Content[0]
	}
	node = resolveAlias(node)
	c := newConverter(node)

	switch node.Kind {
	case yaml.MappingNode:
		a, err := c.buildAutomation(node, AutomationPath(0))
		if err != nil {
			return nil, err
		}
		return &Document{Shape: ShapeSingle, Automations: []*AutomationIR{a}}, nil

	case yaml.SequenceNode:
		doc := &Document{Shape: ShapeList, Automations: make([]*AutomationIR, 0, len(node.Content))}
		for i, item := range node.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.MappingNode {
				return nil, newParseError(item, "automations[%d] is a %s, expected a mapping", i, kindName(item))
			}
			a, err := c.buildAutomation(item, AutomationPath(i))
			if err != nil {
				return nil, err
			}
			doc.Automations = append(doc.Automations, a)
		}
		return doc, nil

	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil, newParseError(node, "document is empty")
		}
		return nil, newParseError(node, "document root is a scalar (%q), expected an automation mapping or a list of automations", node.Value)

	default:
		return nil, newParseError(node, "document root is a %s, expected an automation mapping or a list of automations", kindName(node))
	}
}

func (c *converter) buildAutomation(n *yaml.Node, path string) (*AutomationIR, error) {
	raw, err := c.toValue(n)
	if err != nil {
		return nil, err
	}
	fields := raw.(map[string]any)
	keys, err := c.mappingKeys(n)
	if err != nil {
		return nil, err
	}

	a := &AutomationIR{Path: path, Raw: fields}

	for _, key := range keys {
		v := fields[key]
		switch key {
		case "id":
			a.ID = scalarField(a, key, v)
		case "alias":
			a.Alias = scalarField(a, key, v)
		case "description":
			a.Description = scalarField(a, key, v)
		case "mode":
			a.Mode = scalarField(a, key, v)
		case "max_exceeded":
			a.MaxExceeded = scalarField(a, key, v)
		case "max":
			if n, ok := v.(int); ok {
				a.Max = &n
			} else if v != nil {
				a.setExtra(key, v)
			}
		case "trigger", "triggers":
			a.HasTrigger = true
			a.PluralKeys = a.PluralKeys || key == "triggers"
			for i, item := range items(v) {
				a.Triggers = append(a.Triggers, newTrigger(item, JoinIndex(JoinKey(path, key), i)))
			}
		case "condition", "conditions":
			a.HasCondition = true
			a.PluralKeys = a.PluralKeys || key == "conditions"
			for i, item := range items(v) {
				a.Conditions = append(a.Conditions, newCondition(item, JoinIndex(JoinKey(path, key), i)))
			}
		case "action", "actions":
			a.HasAction = true
			a.PluralKeys = a.PluralKeys || key == "actions"
			for i, item := range items(v) {
				a.Actions = append(a.Actions, newAction(item, JoinIndex(JoinKey(path, key), i)))
			}
		default:
			a.setExtra(key, v)
		}
	}

	// Raw is an opaque copy; typed fields must not alias it.
	a.Raw = CloneMap(fields)
	return a, nil
}

func (a *AutomationIR) setExtra(key string, v any) {
	if a.Extra == nil {
		a.Extra = make(map[string]any)
	}
	a.Extra[key] = v
}

// scalarField converts a scalar to a string field. Nulls are absent; tagged
// scalars keep their tag in FieldTags; non-scalar values are kept in Extra so
// they still render.
func scalarField(a *AutomationIR, key string, v any) *string {
	if v == nil {
		return nil
	}
	if t, ok := v.(Tagged); ok {
		if a.FieldTags == nil {
			a.FieldTags = make(map[string]string)
		}
		a.FieldTags[key] = t.Tag
	}
	if s, ok := ScalarString(v); ok {
		return &s
	}
	a.setExtra(key, v)
	return nil
}

// items normalizes a trigger/condition/action collection to a list. A single
// mapping or scalar counts as a one-element list, null as an empty one.
func items(v any) []any {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		return val
	default:
		return []any{val}
	}
}

func newTrigger(item any, path string) TriggerIR {
	t := TriggerIR{Raw: item, Path: path}
	if m, ok := item.(map[string]any); ok {
		if p, ok := m["platform"].(string); ok {
			t.Platform = p
		} else if p, ok := m["trigger"].(string); ok {
			t.Platform = p
		}
	}
	return t
}

func newCondition(item any, path string) ConditionIR {
	c := ConditionIR{Raw: item, Path: path}
	switch val := item.(type) {
	case map[string]any:
		if s, ok := val["condition"].(string); ok {
			c.Condition = s
		}
	case string:
		c.Condition = "template"
	}
	return c
}

func newAction(item any, path string) ActionIR {
	a := ActionIR{Raw: item, Path: path, Kind: "unknown"}
	m, ok := item.(map[string]any)
	if !ok {
		return a
	}
	if s, ok := m["service"].(string); ok {
		a.Service = s
	} else if s, ok := m["action"].(string); ok {
		a.Service = s
	}
	if a.Service != "" {
		a.Kind = "service"
	} else {
		for _, k := range actionKinds {
			if _, ok := m[k]; ok {
				a.Kind = k
				break
			}
		}
	}
	a.Target, _ = m["target"].(map[string]any)
	if d, ok := m["data"].(map[string]any); ok {
		a.Data = d
	} else if d, ok := m["data_template"].(map[string]any); ok {
		a.Data = d
	}
	return a
}

// =============================================================================
// yaml.Node conversion
// =============================================================================

// converter turns yaml.Nodes into generic values while charging every
// produced node against a budget shared by the whole document.
type converter struct {
	remaining int
}

func newConverter(root *yaml.Node) *converter {
	return &converter{remaining: countNodes(root)*aliasExpansionFactor + minExpansionBudget}
}

// countNodes counts the nodes written in the source. Aliases count once and
// are not followed.
func countNodes(n *yaml.Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, child := range n.Content {
		count += countNodes(child)
	}
	return count
}

func (c *converter) spend(n *yaml.Node) error {
	c.remaining--
	if c.remaining < 0 {
		return newParseError(n, "document expands too many aliases")
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}

// mappingKeys returns the keys of a mapping node in source order, with merge
// keys expanded in place.
func (c *converter) mappingKeys(n *yaml.Node) ([]string, error) {
	var keys []string
	seen := make(map[string]bool)
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if k.ShortTag() == "!!merge" {
			for _, src := range mergeSources(n.Content[i+1]) {
				if err := c.spend(src); err != nil {
					return nil, err
				}
				merged, err := c.mappingKeys(src)
				if err != nil {
					return nil, err
				}
				for _, mk := range merged {
					add(mk)
				}
			}
			continue
		}
		add(k.Value)
	}
	return keys, nil
}

func mergeSources(v *yaml.Node) []*yaml.Node {
	v = resolveAlias(v)
	switch v.Kind {
	case yaml.MappingNode:
		return []*yaml.Node{v}
	case yaml.SequenceNode:
		out := make([]*yaml.Node, 0, len(v.Content))
		for _, item := range v.Content {
			if item = resolveAlias(item); item.Kind == yaml.MappingNode {
				out = append(out, item)
			}
		}
		return out
	}
	return nil
}

// toValue converts a yaml.Node into the generic value tree. Local tags
// (!secret, !input, !include ...) become Tagged values.
func (c *converter) toValue(n *yaml.Node) (any, error) {
	n = resolveAlias(n)
	if err := c.spend(n); err != nil {
		return nil, err
	}
	switch n.Kind {
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		// Explicit keys win over merged ones regardless of position.
		var merges []*yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.ShortTag() == "!!merge" {
				merges = append(merges, mergeSources(v)...)
				continue
			}
			val, err := c.toValue(v)
			if err != nil {
				return nil, err
			}
			out[k.Value] = val
		}
		for _, src := range merges {
			merged, err := c.toValue(src)
			if err != nil {
				return nil, err
			}
			for k, v := range merged.(map[string]any) {
				if _, exists := out[k]; !exists {
					out[k] = v
				}
			}
		}
		return out, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			val, err := c.toValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
		return out, nil

	case yaml.ScalarNode:
		return scalarValue(n)

	default:
		return nil, newParseError(n, "unsupported YAML node")
	}
}

func scalarValue(n *yaml.Node) (any, error) {
	tag := n.Tag
	if strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!") {
		return Tagged{Tag: tag, Value: n.Value}, nil
	}
	switch n.ShortTag() {
	case "!!str", "!!timestamp", "!!binary":
		return n.Value, nil
	case "!!null":
		return nil, nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, newParseError(n, "invalid scalar %q: %v", n.Value, err)
	}
	return v, nil
}
