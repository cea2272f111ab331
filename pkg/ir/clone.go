package ir

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{Shape: d.Shape, Automations: make([]*AutomationIR, len(d.Automations))}
	for i, a := range d.Automations {
		out.Automations[i] = a.Clone()
	}
	return out
}

// Clone returns a deep copy of the automation.
func (a *AutomationIR) Clone() *AutomationIR {
	if a == nil {
		return nil
	}
	out := &AutomationIR{
		ID:           cloneString(a.ID),
		Alias:        cloneString(a.Alias),
		Description:  cloneString(a.Description),
		Mode:         cloneString(a.Mode),
		MaxExceeded:  cloneString(a.MaxExceeded),
		HasTrigger:   a.HasTrigger,
		HasCondition: a.HasCondition,
		HasAction:    a.HasAction,
		PluralKeys:   a.PluralKeys,
		Extra:        CloneMap(a.Extra),
		Path:         a.Path,
		Raw:          CloneMap(a.Raw),
	}
	if a.Max != nil {
		m := *a.Max
		out.Max = &m
	}
	if a.FieldTags != nil {
		out.FieldTags = make(map[string]string, len(a.FieldTags))
		for k, v := range a.FieldTags {
			out.FieldTags[k] = v
		}
	}
	for _, t := range a.Triggers {
		out.Triggers = append(out.Triggers, newTrigger(CloneValue(t.Raw), t.Path))
	}
	for _, c := range a.Conditions {
		out.Conditions = append(out.Conditions, newCondition(CloneValue(c.Raw), c.Path))
	}
	for _, act := range a.Actions {
		out.Actions = append(out.Actions, newAction(CloneValue(act.Raw), act.Path))
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
