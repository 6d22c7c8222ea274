package genschema

// RequiredComparator computes the required keyword as the intersection of
// every evidence source's opinion on which keys are mandatory (spec
// §4.B.3): keys present in every example object, intersected with every
// schema fragment's declared required list.
type RequiredComparator struct{}

func (RequiredComparator) Name() string { return "required" }

func (RequiredComparator) CanProcess(ctx *ProcessingContext, path string, node *SchemaNode) bool {
	// Pseudo-array detection happens during object descent, after the
	// comparator chain runs, and clears Required itself when it fires
	// (see Walker.runPseudoArray). Nothing here needs to anticipate it.
	if node.Type == "object" {
		return true
	}
	if node.Type == "" {
		return true
	}
	return len(ctx.Examples) == 0
}

func (RequiredComparator) Process(ctx *ProcessingContext, path string, node *SchemaNode) ([]*SchemaNode, error) {
	for _, e := range ctx.Examples {
		if _, ok := e.Content.(map[string]any); !ok {
			return nil, nil
		}
	}

	var sets []map[string]struct{}

	var objects []map[string]any
	for _, e := range ctx.Examples {
		objects = append(objects, e.Content.(map[string]any))
	}
	if len(objects) > 0 {
		keys := make(map[string]struct{})
		for _, obj := range objects {
			for k := range obj {
				keys[k] = struct{}{}
			}
		}
		present := make(map[string]struct{})
		for k := range keys {
			all := true
			for _, obj := range objects {
				if _, ok := obj[k]; !ok {
					all = false
					break
				}
			}
			if all {
				present[k] = struct{}{}
			}
		}
		sets = append(sets, present)
	}

	for _, s := range ctx.Schemas {
		m, ok := s.schemaContent()
		if !ok {
			continue
		}
		reqList, ok := m["required"].([]any)
		if !ok {
			continue
		}
		set := make(map[string]struct{}, len(reqList))
		for _, v := range reqList {
			if name, ok := v.(string); ok {
				set[name] = struct{}{}
			}
		}
		sets = append(sets, set)
	}

	if len(sets) == 0 {
		return nil, nil
	}

	intersection := sets[0]
	for _, set := range sets[1:] {
		next := make(map[string]struct{})
		for k := range intersection {
			if _, ok := set[k]; ok {
				next[k] = struct{}{}
			}
		}
		intersection = next
	}

	if len(intersection) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(intersection))
	for k := range intersection {
		names = append(names, k)
	}
	node.Required = sortStrings(names)
	return nil, nil
}
