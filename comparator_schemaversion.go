package genschema

// DefaultSchemaVersion is the $schema value SchemaVersionComparator emits
// unless constructed with a different URI.
const DefaultSchemaVersion = "https://json-schema.org/draft/2020-12/schema"

// SchemaVersionComparator fires only at the root position and only when
// $schema is not yet set (spec §4.B.5). It declines inside a sealed
// context: a union variant's own recursive RunLevel call is reinvoked at
// the same path as its parent (the variant is not a distinct tree
// position), so without this check every variant of a root-level union
// would pick up its own $schema instead of the union itself carrying one.
type SchemaVersionComparator struct {
	Version string
}

// NewSchemaVersionComparator returns a comparator emitting version, or
// DefaultSchemaVersion if version is empty.
func NewSchemaVersionComparator(version string) *SchemaVersionComparator {
	if version == "" {
		version = DefaultSchemaVersion
	}
	return &SchemaVersionComparator{Version: version}
}

func (SchemaVersionComparator) Name() string { return "schema-version" }

func (c *SchemaVersionComparator) CanProcess(ctx *ProcessingContext, path string, node *SchemaNode) bool {
	return path == "/" && node.Schema == "" && !ctx.Sealed
}

func (c *SchemaVersionComparator) Process(ctx *ProcessingContext, path string, node *SchemaNode) ([]*SchemaNode, error) {
	node.Schema = c.Version
	return nil, nil
}
