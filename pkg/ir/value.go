package ir

import (
	"sort"
	"strconv"
)

// Tagged is a scalar carrying a local YAML tag such as !secret or !input.
// The tag is kept so that rendering reproduces it.
type Tagged struct {
	Tag   string // including the leading "!"
	Value string
}

// String returns the YAML form of the tagged scalar.
func (t Tagged) String() string {
	return t.Tag + " " + t.Value
}

// CloneValue deep-copies a value tree made of maps, slices and scalars.
func CloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = CloneValue(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = CloneValue(elem)
		}
		return out
	default:
		return val
	}
}

// CloneMap deep-copies a mapping, returning nil for nil.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return CloneValue(m).(map[string]any)
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ScalarString renders a scalar value as text. Tagged values render their
// value without the tag. Non-scalars return false.
func ScalarString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	case Tagged:
		return val.Value, true
	default:
		return "", false
	}
}

// Walk visits every node of a value tree in deterministic order, calling fn
// with the node's path and its containing key. List items inherit the key
// of their list, so both forms of `entity_id: x` and `entity_id: [x]` report
// "entity_id". The root reports "".
func Walk(v any, path string, fn func(path, key string, value any)) {
	walk(v, path, "", fn)
}

func walk(v any, path, key string, fn func(path, key string, value any)) {
	fn(path, key, v)
	switch val := v.(type) {
	case map[string]any:
		for _, k := range SortedKeys(val) {
			walk(val[k], JoinKey(path, k), k, fn)
		}
	case []any:
		for i, elem := range val {
			walk(elem, JoinIndex(path, i), key, fn)
		}
	}
}

// TypeName describes the YAML type of a value for messages.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "mapping"
	case []any:
		return "list"
	case string, Tagged:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	default:
		return "scalar"
	}
}
