package genschema

// ResourceKind tags whether a Resource's content came from a concrete
// example value or a partial schema fragment.
type ResourceKind int

const (
	// KindExample marks a Resource carrying an example JsonValue.
	KindExample ResourceKind = iota
	// KindSchemaFragment marks a Resource carrying a partial schema
	// fragment (a JsonValue that is expected to be a schema object).
	KindSchemaFragment
)

func (k ResourceKind) String() string {
	switch k {
	case KindExample:
		return "example"
	case KindSchemaFragment:
		return "schema-fragment"
	default:
		return "unknown"
	}
}

// Resource is a tagged carrier pairing an input document fragment with a
// stable source id and kind. Ids are assigned in registration order by
// Converter and never change; they appear in trigger sets so any union
// variant can be attributed back to the sources that justified it.
type Resource struct {
	ID      int
	Kind    ResourceKind
	Content JsonValue
}

// schemaContent returns Content as a schema object if it is shaped like one,
// and false otherwise. Schema fragments that are not objects are discarded
// silently by comparators per the InputShapeMismatch convention (spec §7):
// they decline rather than error.
func (r Resource) schemaContent() (map[string]any, bool) {
	m, ok := r.Content.(map[string]any)
	return m, ok
}
