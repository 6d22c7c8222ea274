package genschema

// CleanupComparator is the trace-attribute removal comparator (spec
// §4.B.6, "DeleteElement"). Because SchemaNode.MarshalJSON already omits
// Triggers and IsPseudoArray unconditionally, registering one is not
// required for P5 (no trace leakage) to hold — but it is still what
// retires the attribute's purpose at the point where it has none left: it
// clears the underlying field rather than leaving it to linger for the
// rest of the node's lifetime. Multiple cleanup comparators compose, one
// per attribute.
type CleanupComparator struct {
	Attribute string
}

const (
	AttributeTriggers    = "triggers"
	AttributePseudoArray = "pseudo-array"
)

func NewCleanupComparator(attribute string) *CleanupComparator {
	return &CleanupComparator{Attribute: attribute}
}

func (c *CleanupComparator) Name() string { return "delete-element:" + c.Attribute }

func (c *CleanupComparator) CanProcess(ctx *ProcessingContext, path string, node *SchemaNode) bool {
	switch c.Attribute {
	case AttributeTriggers:
		return len(node.Triggers) > 0
	case AttributePseudoArray:
		return node.IsPseudoArray
	default:
		return false
	}
}

func (c *CleanupComparator) Process(ctx *ProcessingContext, path string, node *SchemaNode) ([]*SchemaNode, error) {
	switch c.Attribute {
	case AttributeTriggers:
		node.Triggers = nil
	case AttributePseudoArray:
		node.IsPseudoArray = false
	}
	return nil, nil
}
