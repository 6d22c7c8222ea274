package genschema

// ProcessingContext is the evidence bundle seen by one tree position: the
// schema fragments and example values in scope there, plus a sealed flag.
//
// Sealed is true while descending into an already-opened union variant
// (see the sealed-context resolution under Comparator chain in
// SPEC_FULL.md): it forbids
// TypeComparator from opening a new peer union at that exact position.
// ProcessingContext is immutable; children always receive a fresh value.
type ProcessingContext struct {
	Schemas  []Resource
	Examples []Resource
	Sealed   bool
}

func (ctx *ProcessingContext) empty() bool {
	return len(ctx.Schemas) == 0 && len(ctx.Examples) == 0
}

// narrow returns a copy of ctx containing only the Schemas/Examples whose
// id appears in ids. Used when descending into a union variant so sibling
// variants' evidence cannot pollute the variant's own subtree (spec §4.A.3).
func (ctx *ProcessingContext) narrow(ids map[int]struct{}) ProcessingContext {
	out := ProcessingContext{Sealed: true}
	for _, s := range ctx.Schemas {
		if _, ok := ids[s.ID]; ok {
			out.Schemas = append(out.Schemas, s)
		}
	}
	for _, e := range ctx.Examples {
		if _, ok := ids[e.ID]; ok {
			out.Examples = append(out.Examples, e)
		}
	}
	return out
}

func idSet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
