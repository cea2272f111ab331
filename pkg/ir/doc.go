// Package ir provides the typed intermediate representation of automation
// documents and the builder that produces it from YAML text.
//
// A document is either a single automation mapping or a sequence of them:
//
//	doc, err := ir.Parse(text)
//	var perr *ir.ParseError
//	if errors.As(err, &perr) {
//		// not YAML, or the root is neither a mapping nor a list of mappings
//	}
//	for _, a := range doc.Automations {
//		fmt.Println(a.Path, a.DisplayName())
//	}
//
// Every automation gets a unique path ("automations[0]", "automations[1]",
// ...). Nested nodes extend it: "automations[1].action[0].target.entity_id".
//
// IR values are read-only for rules. The fixer works on a Clone.
package ir
