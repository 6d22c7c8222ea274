package genschema

import (
	"fmt"
	"sort"
	"strings"
)

// Walker drives the recursive inference pipeline described in spec §4.A: it
// applies comparators at a position, lifts multi-variant results into a
// union, partitions evidence for children (object properties, array
// items), and reassembles results bottom-up.
type Walker struct {
	core         Comparator
	chain        []Comparator
	pseudo       PseudoArrayHandler
	unionKeyword string
	trace        Trace
}

func newWalker(core Comparator, chain []Comparator, pseudo PseudoArrayHandler, unionKeyword string, trace Trace) *Walker {
	if pseudo == nil {
		pseudo = NoPseudoArrayHandler()
	}
	if trace == nil {
		trace = func(string, string, string) {}
	}
	return &Walker{core: core, chain: chain, pseudo: pseudo, unionKeyword: unionKeyword, trace: trace}
}

// RunLevel implements run_level(ctx, path, prev) -> node (spec §4.A).
func (w *Walker) RunLevel(ctx *ProcessingContext, path string, prev *SchemaNode) (*SchemaNode, error) {
	node := prev
	if node == nil {
		node = &SchemaNode{}
	}

	w.warnUnrecognizedKeys(ctx, path)

	comparators := make([]Comparator, 0, len(w.chain)+1)
	if w.core != nil {
		comparators = append(comparators, w.core)
	}
	comparators = append(comparators, w.chain...)

	for _, comp := range comparators {
		if !comp.CanProcess(ctx, path, node) {
			w.trace(path, comp.Name(), decisionSkipped)
			continue
		}
		alts, err := comp.Process(ctx, path, node)
		if err != nil {
			return nil, fmt.Errorf("%w: at %s (%s)", err, path, comp.Name())
		}
		if len(alts) > 0 {
			if err := validateTriggers(alts); err != nil {
				return nil, fmt.Errorf("%w: at %s (%s)", err, path, comp.Name())
			}
			node.clearScalarAttrs()
			node.Union = append(node.Union, alts...)
			node.UnionKeyword = w.unionKeyword
		}
		w.trace(path, comp.Name(), decisionApplied)
	}

	// Invariant 4: a node carries at most one of {scalar type, union}. Every
	// built-in comparator respects this (clearScalarAttrs runs whenever
	// alternatives are folded in), but Comparator is a public interface —
	// a misbehaving custom registration could set node.Type directly while
	// also contributing union alternatives, and MarshalJSON would silently
	// drop whichever it didn't serialize. Catch that here instead.
	if len(node.Union) > 0 && node.Type != "" {
		return nil, fmt.Errorf("%w: at %s", ErrConflictingScalarType, path)
	}

	if len(node.Union) > 0 {
		resolved := make([]*SchemaNode, 0, len(node.Union))
		for _, variant := range node.Union {
			narrowed := ctx.narrow(idSet(variant.Triggers))
			result, err := w.RunLevel(&narrowed, path, variant)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, result)
		}
		node.Union = resolved
		return node, nil
	}

	switch node.Type {
	case "object":
		return w.runObject(ctx, path, node)
	case "array":
		return w.runArray(ctx, path, node)
	default:
		return node, nil
	}
}

// recognizedSchemaKeys is every keyword this system reads from or emits
// into a schema fragment. A key outside this set does not stop inference
// (spec §7: warnings never alter behavior) but is worth surfacing.
var recognizedSchemaKeys = map[string]struct{}{
	"$schema": {}, "type": {}, "format": {},
	"properties": {}, "patternProperties": {}, "items": {}, "required": {},
	"minItems": {}, "maxItems": {}, "minProperties": {}, "maxProperties": {},
	"anyOf": {}, "oneOf": {}, "allOf": {},
}

// warnUnrecognizedKeys traces one "warn:unrecognized-key:<key>" decision per
// unfamiliar key found in any schema fragment at this position, instead of
// a separate logging call (spec §7).
func (w *Walker) warnUnrecognizedKeys(ctx *ProcessingContext, path string) {
	for _, s := range ctx.Schemas {
		m, ok := s.schemaContent()
		if !ok {
			continue
		}
		for key := range m {
			if _, known := recognizedSchemaKeys[key]; known {
				continue
			}
			w.trace(path, "schema-fragment", "warn:unrecognized-key:"+key)
		}
	}
}

func validateTriggers(variants []*SchemaNode) error {
	for _, v := range variants {
		if len(v.Triggers) == 0 {
			return ErrEmptyTriggerSet
		}
	}
	return nil
}

// runObject implements object descent (spec §4.A.1), including the
// pseudo-array detour (spec §4.D).
func (w *Walker) runObject(ctx *ProcessingContext, path string, node *SchemaNode) (*SchemaNode, error) {
	names := collectPropertyNames(ctx)
	if len(names) == 0 {
		if len(node.Required) > 0 {
			return nil, fmt.Errorf("%w: at %s", ErrRequiredNotSubsetOfProperties, path)
		}
		return node, nil
	}

	if ok, pattern := w.pseudo.IsPseudoArray(names); ok {
		return w.runPseudoArray(ctx, path, node, names, pattern)
	}

	properties := make(map[string]*SchemaNode, len(names))
	for _, name := range names {
		schemas, examples := gatherPropertyEvidence(ctx, name)
		if len(schemas) == 0 && len(examples) == 0 {
			continue
		}
		child := ProcessingContext{Schemas: schemas, Examples: examples}
		result, err := w.RunLevel(&child, joinPath(path, name), &SchemaNode{})
		if err != nil {
			return nil, err
		}
		properties[name] = result
	}
	node.Properties = properties

	// Invariant 3 (required ⊆ properties) is an InternalInvariantViolation,
	// not something to paper over: RequiredComparator computes required
	// from the same evidence collectPropertyNames/gatherPropertyEvidence
	// draw on, so every name it names should already have a property here.
	// A name that doesn't is a genuine inconsistency (e.g. a schema
	// fragment's declared "required" naming a property neither it nor any
	// example ever describes) and aborts the run with its path.
	for _, name := range node.Required {
		if _, ok := properties[name]; !ok {
			return nil, fmt.Errorf("%w: at %s (required %q)", ErrRequiredNotSubsetOfProperties, path, name)
		}
	}
	return node, nil
}

func (w *Walker) runPseudoArray(ctx *ProcessingContext, path string, node *SchemaNode, names []string, pattern string) (*SchemaNode, error) {
	var itemSchemas, itemExamples []Resource
	for _, name := range names {
		s, e := gatherPropertyEvidence(ctx, name)
		itemSchemas = append(itemSchemas, s...)
		itemExamples = append(itemExamples, e...)
	}

	itemCtx := ProcessingContext{Schemas: itemSchemas, Examples: itemExamples}
	item, err := w.RunLevel(&itemCtx, joinPath(path, "*"), &SchemaNode{})
	if err != nil {
		return nil, err
	}

	node.Type = "array"
	node.IsPseudoArray = true
	node.Properties = nil
	node.Required = nil
	node.MinProperties = nil
	node.MaxProperties = nil
	node.PatternProperties = map[string]*SchemaNode{pattern: item}
	return node, nil
}

// runArray implements array descent (spec §4.A.2).
func (w *Walker) runArray(ctx *ProcessingContext, path string, node *SchemaNode) (*SchemaNode, error) {
	var itemSchemas, itemExamples []Resource

	for _, s := range ctx.Schemas {
		m, ok := s.schemaContent()
		if !ok || m["type"] != "array" {
			continue
		}
		items, ok := m["items"]
		if !ok {
			continue
		}
		itemSchemas = append(itemSchemas, Resource{ID: s.ID, Kind: KindSchemaFragment, Content: items})
	}

	for _, e := range ctx.Examples {
		arr, ok := e.Content.([]any)
		if !ok {
			continue
		}
		for _, el := range arr {
			itemExamples = append(itemExamples, Resource{ID: e.ID, Kind: KindExample, Content: el})
		}
	}

	if len(itemSchemas) == 0 && len(itemExamples) == 0 {
		return node, nil
	}

	itemCtx := ProcessingContext{Schemas: itemSchemas, Examples: itemExamples}
	items, err := w.RunLevel(&itemCtx, joinPath(path, "items"), &SchemaNode{})
	if err != nil {
		return nil, err
	}
	node.Items = items
	return node, nil
}

func collectPropertyNames(ctx *ProcessingContext) []string {
	set := make(map[string]struct{})
	for _, s := range ctx.Schemas {
		m, ok := s.schemaContent()
		if !ok {
			continue
		}
		props, ok := m["properties"].(map[string]any)
		if !ok {
			continue
		}
		for name := range props {
			set[name] = struct{}{}
		}
	}
	for _, e := range ctx.Examples {
		obj, ok := e.Content.(map[string]any)
		if !ok {
			continue
		}
		for name := range obj {
			set[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func gatherPropertyEvidence(ctx *ProcessingContext, name string) ([]Resource, []Resource) {
	var schemas, examples []Resource
	for _, s := range ctx.Schemas {
		m, ok := s.schemaContent()
		if !ok {
			continue
		}
		props, ok := m["properties"].(map[string]any)
		if !ok {
			continue
		}
		sub, ok := props[name]
		if !ok {
			continue
		}
		schemas = append(schemas, Resource{ID: s.ID, Kind: KindSchemaFragment, Content: sub})
	}
	for _, e := range ctx.Examples {
		obj, ok := e.Content.(map[string]any)
		if !ok {
			continue
		}
		val, ok := obj[name]
		if !ok {
			continue
		}
		examples = append(examples, Resource{ID: e.ID, Kind: KindExample, Content: val})
	}
	return schemas, examples
}

// joinPath appends segment to path using RFC 6901 JSON Pointer escaping
// ("~" -> "~0", "/" -> "~1"), the same token escaping the teacher's $ref
// resolution relies on jsonpointer.Parse to undo (see ref.go).
func joinPath(path, segment string) string {
	escaped := strings.NewReplacer("~", "~0", "/", "~1").Replace(segment)
	if path == "/" {
		return "/" + escaped
	}
	return path + "/" + escaped
}
