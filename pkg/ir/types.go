package ir

// Mode values accepted by the automation runtime.
const (
	ModeSingle   = "single"
	ModeRestart  = "restart"
	ModeQueued   = "queued"
	ModeParallel = "parallel"
)

// Modes returns the fixed mode enumeration.
func Modes() []string {
	return []string{ModeSingle, ModeRestart, ModeQueued, ModeParallel}
}

// IsValidMode reports whether m is one of the fixed mode values.
func IsValidMode(m string) bool {
	switch m {
	case ModeSingle, ModeRestart, ModeQueued, ModeParallel:
		return true
	}
	return false
}

// Shape records the root container of a parsed document.
type Shape int

// Document shapes.
const (
	// ShapeList is a sequence of automation mappings.
	ShapeList Shape = iota
	// ShapeSingle is a single automation mapping at the root.
	ShapeSingle
)

// Document is the parsed form of one automation document.
type Document struct {
	Shape       Shape
	Automations []*AutomationIR
}

// AutomationIR is the typed form of one automation mapping.
//
// Scalar metadata fields are pointers so that an absent key can be told apart
// from an explicitly empty value. A null value is treated as absent.
type AutomationIR struct {
	ID          *string
	Alias       *string
	Description *string
	Mode        *string
	Max         *int // a non-integer max is kept verbatim in Extra["max"]
	MaxExceeded *string

	Triggers   []TriggerIR
	Conditions []ConditionIR
	Actions    []ActionIR

	HasTrigger   bool // trigger key present, even if empty
	HasCondition bool
	HasAction    bool

	// PluralKeys is set when the document used triggers/conditions/actions.
	PluralKeys bool

	// Extra holds keys the IR does not model, for lossless rendering.
	Extra map[string]any

	// FieldTags records local YAML tags (e.g. !input) on metadata fields.
	FieldTags map[string]string

	// Path addresses the automation within its document, e.g. "automations[2]".
	Path string

	// Raw is an opaque copy of the source mapping. Rules must not mutate it.
	Raw map[string]any
}

// TriggerKey returns the key used for the trigger collection.
func (a *AutomationIR) TriggerKey() string {
	if a.PluralKeys {
		return "triggers"
	}
	return "trigger"
}

// ConditionKey returns the key used for the condition collection.
func (a *AutomationIR) ConditionKey() string {
	if a.PluralKeys {
		return "conditions"
	}
	return "condition"
}

// ActionKey returns the key used for the action collection.
func (a *AutomationIR) ActionKey() string {
	if a.PluralKeys {
		return "actions"
	}
	return "action"
}

// HasKey reports whether the source mapping set key to a non-null value.
func (a *AutomationIR) HasKey(key string) bool {
	if _, ok := a.Extra[key]; ok {
		return true
	}
	switch key {
	case "id":
		return a.ID != nil
	case "alias":
		return a.Alias != nil
	case "description":
		return a.Description != nil
	case "mode":
		return a.Mode != nil
	case "max":
		return a.Max != nil
	case "max_exceeded":
		return a.MaxExceeded != nil
	}
	return false
}

// DisplayName returns the alias, the id, or the path, whichever is set first.
func (a *AutomationIR) DisplayName() string {
	if a.Alias != nil && *a.Alias != "" {
		return *a.Alias
	}
	if a.ID != nil && *a.ID != "" {
		return *a.ID
	}
	return a.Path
}

// TriggerIR is one entry of an automation's trigger list.
type TriggerIR struct {
	// Platform is the trigger type from "platform:" or "trigger:".
	Platform string
	// Raw is the source item; a mapping for well-formed triggers.
	Raw  any
	Path string
}

// Fields returns the trigger mapping, or nil when the item is not a mapping.
func (t TriggerIR) Fields() map[string]any {
	m, _ := t.Raw.(map[string]any)
	return m
}

// ConditionIR is one entry of an automation's condition list.
type ConditionIR struct {
	// Condition is the condition type; template shorthand strings report "template".
	Condition string
	Raw       any
	Path      string
}

// Fields returns the condition mapping, or nil for shorthand conditions.
func (c ConditionIR) Fields() map[string]any {
	m, _ := c.Raw.(map[string]any)
	return m
}

// ActionIR is one entry of an automation's action list.
type ActionIR struct {
	// Service is the called service from "service:" or "action:", if any.
	Service string
	Target  map[string]any
	Data    map[string]any
	// Kind is "service" for service calls, otherwise the action's type key
	// (delay, choose, wait_template, ...), or "unknown".
	Kind string
	Raw  any
	Path string
}

// Fields returns the action mapping, or nil when the item is not a mapping.
func (a ActionIR) Fields() map[string]any {
	m, _ := a.Raw.(map[string]any)
	return m
}

// actionKinds lists the non-service action type keys in detection order.
var actionKinds = []string{
	"delay",
	"wait_template",
	"wait_for_trigger",
	"event",
	"choose",
	"if",
	"repeat",
	"parallel",
	"sequence",
	"stop",
	"variables",
	"scene",
	"condition",
	"device_id",
	"set_conversation_response",
}
