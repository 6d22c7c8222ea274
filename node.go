package genschema

import (
	"sort"

	"github.com/goccy/go-json"
)

// SchemaNode accumulates JSON Schema draft 2020-12 vocabulary at one
// structural position, plus two trace attributes that justify the shape of
// the node but never reach the wire: Triggers (the source ids that back
// this node or union variant) and IsPseudoArray (set by object descent
// when the PseudoArrayHandler turns the node into a pseudo-array).
//
// A node is either a union of variants (Union non-empty, in which case it
// serializes as exactly one object with a single union-keyword member per
// invariant 4: "at most one of {scalar, object, array} describes a node")
// or a concrete scalar/object/array node described by the remaining fields.
type SchemaNode struct {
	Schema string
	Type   string
	Format string

	Properties        map[string]*SchemaNode
	PatternProperties map[string]*SchemaNode
	Items             *SchemaNode
	Required          []string

	MinItems      *int
	MaxItems      *int
	MinProperties *int
	MaxProperties *int

	Union        []*SchemaNode
	UnionKeyword string

	// Trace attributes. Never serialized (see MarshalJSON); cleared by
	// CleanupComparator when one is registered.
	Triggers      []int
	IsPseudoArray bool
}

// clearScalarAttrs resets the attributes that identify a single scalar
// shape for this node, used whenever the node is about to be replaced by a
// union of variants (invariant 4 forbids both at once).
func (n *SchemaNode) clearScalarAttrs() {
	n.Type = ""
	n.Format = ""
}

// MarshalJSON renders the node as wire JSON, stripping trace attributes and
// collapsing to the single union-keyword form when Union is set.
func (n *SchemaNode) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}

	m := make(map[string]any, 8)

	if len(n.Union) > 0 {
		keyword := n.UnionKeyword
		if keyword == "" {
			keyword = "anyOf"
		}
		m[keyword] = n.Union
		if n.Schema != "" {
			m["$schema"] = n.Schema
		}
		return json.Marshal(m)
	}

	if n.Schema != "" {
		m["$schema"] = n.Schema
	}
	if n.Type != "" {
		m["type"] = n.Type
	}
	if n.Format != "" {
		m["format"] = n.Format
	}
	if n.Properties != nil {
		m["properties"] = n.Properties
	}
	if n.PatternProperties != nil {
		m["patternProperties"] = n.PatternProperties
	}
	if n.Items != nil {
		m["items"] = n.Items
	}
	if len(n.Required) > 0 {
		m["required"] = n.Required
	}
	if n.MinItems != nil {
		m["minItems"] = *n.MinItems
	}
	if n.MaxItems != nil {
		m["maxItems"] = *n.MaxItems
	}
	if n.MinProperties != nil {
		m["minProperties"] = *n.MinProperties
	}
	if n.MaxProperties != nil {
		m["maxProperties"] = *n.MaxProperties
	}

	return json.Marshal(m)
}

func intPtr(v int) *int { return &v }

func sortedIDs(ids map[int]struct{}) []int {
	out := make([]int, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func sortStrings(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}
