package genschema

import "sort"

// FormatComparator fires when the current node, or any of its union
// variants, carries type == "string" (spec §4.B.2). It rewrites every such
// subnode into one or more format-tagged variants using the configured
// FormatDetector.
type FormatComparator struct {
	Detector *FormatDetector
}

// NewFormatComparator returns a FormatComparator using the given detector,
// or the default catalog if detector is nil.
func NewFormatComparator(detector *FormatDetector) *FormatComparator {
	if detector == nil {
		detector = DefaultFormatDetector()
	}
	return &FormatComparator{Detector: detector}
}

func (c *FormatComparator) Name() string { return "format" }

func (c *FormatComparator) CanProcess(ctx *ProcessingContext, path string, node *SchemaNode) bool {
	return hasStringType(node)
}

func hasStringType(n *SchemaNode) bool {
	if n.Type == "string" {
		return true
	}
	for _, v := range n.Union {
		if hasStringType(v) {
			return true
		}
	}
	return false
}

func (c *FormatComparator) Process(ctx *ProcessingContext, path string, node *SchemaNode) ([]*SchemaNode, error) {
	if node.Type == "string" {
		variants := c.splitStringVariants(ctx, node)
		if len(variants) <= 1 {
			if len(variants) == 1 {
				schema := node.Schema
				*node = *variants[0]
				node.Schema = schema
			}
			return nil, nil
		}
		return variants, nil
	}

	newUnion := make([]*SchemaNode, 0, len(node.Union))
	for _, v := range node.Union {
		if v.Type != "string" {
			newUnion = append(newUnion, v)
			continue
		}
		newUnion = append(newUnion, c.splitStringVariants(ctx, v)...)
	}
	node.Union = newUnion
	return nil, nil
}

// splitStringVariants buckets a string-typed subnode's trigger ids by
// detected/declared format. The subnode's own triggers seed the "no format"
// bucket; every schema fragment declaring type=="string" and every example
// string in the whole context contributes its id under its own format,
// vacating the no-format bucket, mirroring the reference pipeline's
// apply_format (see original_source/json2schema/core/comparators/format.py).
func (c *FormatComparator) splitStringVariants(ctx *ProcessingContext, sub *SchemaNode) []*SchemaNode {
	buckets := map[string]map[int]struct{}{"": idSet(sub.Triggers)}

	addTo := func(format string, id int) {
		if _, ok := buckets[format]; !ok {
			buckets[format] = make(map[int]struct{})
		}
		buckets[format][id] = struct{}{}
		if format != "" {
			delete(buckets[""], id)
		}
	}

	for _, s := range ctx.Schemas {
		m, ok := s.schemaContent()
		if !ok || m["type"] != "string" {
			continue
		}
		format, _ := m["format"].(string)
		addTo(format, s.ID)
	}
	for _, e := range ctx.Examples {
		str, ok := e.Content.(string)
		if !ok {
			continue
		}
		addTo(c.Detector.Detect("string", str), e.ID)
	}

	keys := make([]string, 0, len(buckets))
	for k, ids := range buckets {
		if len(ids) == 0 {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*SchemaNode, 0, len(keys))
	for _, k := range keys {
		out = append(out, &SchemaNode{Type: "string", Format: k, Triggers: sortedIDs(buckets[k])})
	}
	return out
}
