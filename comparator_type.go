package genschema

// TypeComparator is the core comparator (spec §4.B.1). It is always
// injected before the user-registered chain by Walker, regardless of
// whether it also appears in that chain.
type TypeComparator struct{}

func (TypeComparator) Name() string { return "type" }

func (TypeComparator) CanProcess(ctx *ProcessingContext, path string, node *SchemaNode) bool {
	return node.Type == "" && len(node.Union) == 0 && !ctx.empty()
}

func (TypeComparator) Process(ctx *ProcessingContext, path string, node *SchemaNode) ([]*SchemaNode, error) {
	buckets := newTypeBuckets()

	for _, s := range ctx.Schemas {
		m, ok := s.schemaContent()
		if !ok {
			continue
		}
		for _, t := range inferSchemaTypes(m) {
			buckets.add(t, s.ID)
		}
	}
	for _, e := range ctx.Examples {
		buckets.add(inferJSONType(e.Content), e.ID)
	}

	buckets.absorbIntegerIntoNumber()

	if len(buckets.keys) == 0 {
		return nil, nil
	}

	variants := buckets.variants()

	if ctx.Sealed {
		applyVariant(node, variants[0])
		return nil, nil
	}
	if len(variants) == 1 {
		applyVariant(node, variants[0])
		return nil, nil
	}
	return variants, nil
}

func applyVariant(node *SchemaNode, v *SchemaNode) {
	node.Type = v.Type
	node.Triggers = v.Triggers
}

// typeBuckets accumulates {type -> source ids} in first-seen order, the way
// the teacher repo's own insertion-ordered maps (e.g. SchemaType handling in
// schema.go) preserve registration order for deterministic output.
type typeBuckets struct {
	keys []string
	ids  map[string]map[int]struct{}
}

func newTypeBuckets() *typeBuckets {
	return &typeBuckets{ids: make(map[string]map[int]struct{})}
}

func (b *typeBuckets) add(t string, id int) {
	if _, ok := b.ids[t]; !ok {
		b.keys = append(b.keys, t)
		b.ids[t] = make(map[int]struct{})
	}
	b.ids[t][id] = struct{}{}
}

// absorbIntegerIntoNumber implements invariant 2: integer and number never
// appear as peer variants. number keeps its own insertion position; integer
// is merged into it and removed, leaving every intervening type's relative
// order untouched (matching type_map["number"].update(type_map["integer"]);
// del type_map["integer"] in original_source/genschema/comparators/type.py).
func (b *typeBuckets) absorbIntegerIntoNumber() {
	intIdx, numIdx := -1, -1
	for i, k := range b.keys {
		switch k {
		case "integer":
			intIdx = i
		case "number":
			numIdx = i
		}
	}
	if intIdx == -1 || numIdx == -1 {
		return
	}

	for id := range b.ids["integer"] {
		b.ids["number"][id] = struct{}{}
	}
	delete(b.ids, "integer")

	b.keys = append(b.keys[:intIdx], b.keys[intIdx+1:]...)
}

func (b *typeBuckets) variants() []*SchemaNode {
	out := make([]*SchemaNode, 0, len(b.keys))
	for _, k := range b.keys {
		out = append(out, &SchemaNode{Type: k, Triggers: sortedIDs(b.ids[k])})
	}
	return out
}
