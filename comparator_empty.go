package genschema

// EmptyComparator sets minProperties/maxProperties or minItems/maxItems to
// zero when every example at this position shows the same empty container
// (spec §4.B.4). It declines whenever the node already carries alternatives
// (a container-kind union should be resolved per variant, not at this
// ambiguous level).
type EmptyComparator struct{}

func (EmptyComparator) Name() string { return "empty" }

func (c EmptyComparator) CanProcess(ctx *ProcessingContext, path string, node *SchemaNode) bool {
	if len(ctx.Examples) == 0 || len(node.Union) > 0 {
		return false
	}
	kind, ok := c.uniformEmptyKind(ctx)
	return ok && kind != ""
}

func (EmptyComparator) uniformEmptyKind(ctx *ProcessingContext) (string, bool) {
	kind := ""
	for _, e := range ctx.Examples {
		var k string
		switch v := e.Content.(type) {
		case map[string]any:
			if len(v) != 0 {
				return "", false
			}
			k = "object"
		case []any:
			if len(v) != 0 {
				return "", false
			}
			k = "array"
		default:
			return "", false
		}
		if kind == "" {
			kind = k
		} else if kind != k {
			return "", false
		}
	}
	return kind, true
}

func (c EmptyComparator) Process(ctx *ProcessingContext, path string, node *SchemaNode) ([]*SchemaNode, error) {
	kind, ok := c.uniformEmptyKind(ctx)
	if !ok {
		return nil, nil
	}
	switch kind {
	case "object":
		node.MinProperties = intPtr(0)
		node.MaxProperties = intPtr(0)
	case "array":
		node.MinItems = intPtr(0)
		node.MaxItems = intPtr(0)
	}
	return nil, nil
}
