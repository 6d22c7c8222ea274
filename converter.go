package genschema

import (
	"fmt"
	"sync"

	"github.com/kaptinlin/jsonpointer"
)

// ConverterOption configures a Converter at construction time, following
// the teacher compiler's functional-options/fluent-builder hybrid (see
// compiler.go's With* methods).
type ConverterOption func(*Converter) error

// WithUnionKeyword selects which JSON Schema keyword (anyOf, oneOf or
// allOf) groups sibling variants. Defaults to "anyOf".
func WithUnionKeyword(keyword string) ConverterOption {
	return func(c *Converter) error {
		switch keyword {
		case "anyOf", "oneOf", "allOf":
			c.unionKeyword = keyword
			return nil
		default:
			return fmt.Errorf("%w: %q", ErrUnknownUnionKeyword, keyword)
		}
	}
}

// WithPseudoArrayHandler overrides the default decimal-key pseudo-array
// detector (spec §4.D). Pass NoPseudoArrayHandler() to disable the feature.
func WithPseudoArrayHandler(h PseudoArrayHandler) ConverterOption {
	return func(c *Converter) error {
		c.pseudoHandler = h
		return nil
	}
}

// WithFormatDetector overrides the pattern table the default chain's
// FormatComparator uses. Has no effect if WithComparators/Register is also
// used, since that replaces the FormatComparator entirely.
func WithFormatDetector(detector *FormatDetector) ConverterOption {
	return func(c *Converter) error {
		c.formatComparator = NewFormatComparator(detector)
		return nil
	}
}

// WithSchemaVersion overrides the $schema URI SchemaVersionComparator
// emits at the root.
func WithSchemaVersion(version string) ConverterOption {
	return func(c *Converter) error {
		c.schemaVersion = version
		return nil
	}
}

// WithComparators replaces the entire user-registered chain, including
// passing none at all to run nothing but the always-injected core
// TypeComparator. TypeComparator is injected ahead of the chain
// unconditionally regardless (spec §4.F).
func WithComparators(comparators ...Comparator) ConverterOption {
	return func(c *Converter) error {
		c.customChain = comparators
		c.customChainSet = true
		return nil
	}
}

// WithTrace installs a structured decision hook (see Trace).
func WithTrace(t Trace) ConverterOption {
	return func(c *Converter) error {
		c.trace = t
		return nil
	}
}

// Converter is the registration and entry point for schema inference:
// accumulates inputs, assigns source ids, wires the configured comparators
// and handlers, and runs the walker (spec §4.F).
type Converter struct {
	mu sync.Mutex

	schemas  []Resource
	examples []Resource
	nextID   int

	unionKeyword     string
	pseudoHandler    PseudoArrayHandler
	formatComparator *FormatComparator
	schemaVersion    string
	customChain      []Comparator
	customChainSet   bool
	trace            Trace
}

// NewConverter builds a Converter with sensible defaults: union keyword
// anyOf, the default pseudo-array handler, the default format catalog, and
// draft 2020-12's canonical $schema.
func NewConverter(opts ...ConverterOption) (*Converter, error) {
	c := &Converter{
		unionKeyword:  "anyOf",
		pseudoHandler: DefaultPseudoArrayHandler(),
		schemaVersion: DefaultSchemaVersion,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddExample registers an example JsonValue and returns its assigned id.
func (c *Converter) AddExample(value JsonValue) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.examples = append(c.examples, Resource{ID: id, Kind: KindExample, Content: value})
	return id
}

// AddExampleJSON decodes raw JSON bytes and registers them as an example.
func (c *Converter) AddExampleJSON(data []byte) (int, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrJSONDecode, err)
	}
	return c.AddExample(v), nil
}

// AddSchema registers a partial schema fragment and returns its assigned id.
func (c *Converter) AddSchema(fragment JsonValue) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.schemas = append(c.schemas, Resource{ID: id, Kind: KindSchemaFragment, Content: fragment})
	return id
}

// AddSchemaJSON decodes raw JSON bytes and registers them as a schema
// fragment.
func (c *Converter) AddSchemaJSON(data []byte) (int, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrJSONDecode, err)
	}
	return c.AddSchema(v), nil
}

// Register appends a comparator to the user-registered chain. Order is
// significant and preserved. Like WithComparators, using Register at all
// opts out of the built-in default chain.
func (c *Converter) Register(comparators ...Comparator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customChain = append(c.customChain, comparators...)
	c.customChainSet = true
}

func (c *Converter) buildChain() []Comparator {
	if c.customChainSet {
		return c.customChain
	}
	fc := c.formatComparator
	if fc == nil {
		fc = NewFormatComparator(nil)
	}
	return []Comparator{
		fc,
		RequiredComparator{},
		EmptyComparator{},
		NewSchemaVersionComparator(c.schemaVersion),
		NewCleanupComparator(AttributeTriggers),
		NewCleanupComparator(AttributePseudoArray),
	}
}

// Run builds the root ProcessingContext, drives the walker, and returns the
// inferred SchemaNode. Trace attributes are stripped from the output by
// SchemaNode.MarshalJSON regardless of whether cleanup comparators ran.
//
// A non-nil error is always fatal (ConfigurationError was already raised
// eagerly by NewConverter; what reaches here is InternalInvariantViolation)
// and no partial node is returned.
func (c *Converter) Run() (*SchemaNode, error) {
	c.mu.Lock()
	ctx := ProcessingContext{
		Schemas:  append([]Resource(nil), c.schemas...),
		Examples: append([]Resource(nil), c.examples...),
		Sealed:   false,
	}
	chain := c.buildChain()
	w := newWalker(TypeComparator{}, chain, c.pseudoHandler, c.unionKeyword, c.trace)
	c.mu.Unlock()

	node, err := w.RunLevel(&ctx, "/", &SchemaNode{})
	if err != nil {
		segments := jsonpointer.Parse(rootFailurePath(err))
		return nil, fmt.Errorf("%w (pointer segments: %v)", err, segments)
	}
	return node, nil
}

// RunJSON runs inference and serializes the result to JSON.
func (c *Converter) RunJSON() ([]byte, error) {
	node, err := c.Run()
	if err != nil {
		return nil, err
	}
	return jsonMarshal(node)
}

// rootFailurePath extracts the best-effort JSON-pointer path embedded in a
// walker error by Walker.RunLevel's "%w: at %s (...)" wrapping convention,
// falling back to root when none is found.
func rootFailurePath(err error) string {
	msg := err.Error()
	const marker = "at /"
	idx := indexOf(msg, marker)
	if idx == -1 {
		return "/"
	}
	rest := msg[idx+len(marker)-1:]
	end := indexOf(rest, " ")
	if end == -1 {
		return rest
	}
	return rest[:end]
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
