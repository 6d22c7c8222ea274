package genschema

// inferSchemaTypes returns an ordered, duplicate-free list of types
// declarable by a schema fragment (spec §4.C):
//   - s.type as a string -> [s.type]
//   - s.type as a list of strings -> the list, de-duplicated preserving order
//   - else collected from anyOf/oneOf (concatenation of recursive calls) and
//     from allOf (set intersection across children, contributed sorted)
//   - else "object" if properties present, "array" if items present, else
//     empty.
func inferSchemaTypes(s map[string]any) []string {
	if t, ok := s["type"].(string); ok {
		return []string{t}
	}
	if list, ok := s["type"].([]any); ok {
		var types []string
		for _, v := range list {
			if t, ok := v.(string); ok {
				types = append(types, t)
			}
		}
		return uniqueKeepOrder(types)
	}

	var collected []string
	for _, key := range []string{"anyOf", "oneOf"} {
		variants, ok := s[key].([]any)
		if !ok {
			continue
		}
		for _, v := range variants {
			if sub, ok := v.(map[string]any); ok {
				collected = append(collected, inferSchemaTypes(sub)...)
			}
		}
	}

	if allOf, ok := s["allOf"].([]any); ok {
		var intersection map[string]struct{}
		for _, v := range allOf {
			sub, ok := v.(map[string]any)
			if !ok {
				continue
			}
			types := inferSchemaTypes(sub)
			if len(types) == 0 {
				continue
			}
			set := make(map[string]struct{}, len(types))
			for _, t := range types {
				set[t] = struct{}{}
			}
			if intersection == nil {
				intersection = set
			} else {
				for t := range intersection {
					if _, ok := set[t]; !ok {
						delete(intersection, t)
					}
				}
			}
		}
		if len(intersection) > 0 {
			names := make([]string, 0, len(intersection))
			for t := range intersection {
				names = append(names, t)
			}
			collected = append(collected, sortStrings(names)...)
		}
	}

	if len(collected) > 0 {
		return uniqueKeepOrder(collected)
	}

	if _, ok := s["properties"]; ok {
		return []string{"object"}
	}
	if _, ok := s["items"]; ok {
		return []string{"array"}
	}
	return nil
}

func uniqueKeepOrder(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// inferJSONType returns the immediate JSON type of a decoded example value.
func inferJSONType(v JsonValue) string {
	return kindOf(v)
}
