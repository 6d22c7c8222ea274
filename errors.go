package genschema

import "errors"

// === Configuration Related Errors ===
var (
	// ErrUnknownUnionKeyword is returned when a Converter is constructed with
	// a union keyword other than anyOf, oneOf or allOf.
	ErrUnknownUnionKeyword = errors.New("unknown union keyword")

	// ErrJSONDecode is returned when AddExampleJSON or AddSchemaJSON is
	// given bytes that do not parse as JSON.
	ErrJSONDecode = errors.New("invalid JSON input")
)

// === Internal Invariant Related Errors ===
//
// These are fatal: encountering one aborts Run with no partial output, per
// the error taxonomy's InternalInvariantViolation kind.
var (
	// ErrEmptyTriggerSet is returned when a union variant would be emitted
	// with no justifying source ids.
	ErrEmptyTriggerSet = errors.New("union variant has empty trigger set")

	// ErrConflictingScalarType is returned when, after its comparators ran,
	// a node carries both a single Type and union alternatives.
	ErrConflictingScalarType = errors.New("node carries conflicting type evidence")

	// ErrRequiredNotSubsetOfProperties is returned when a computed required
	// list names a property absent from the same node's properties.
	ErrRequiredNotSubsetOfProperties = errors.New("required property absent from properties")
)

// === Input Shape Related Errors ===
//
// Unexported: comparators decline silently on bad evidence (spec taxonomy
// calls this InputShapeMismatch) and return no error; these sentinels name
// that case and are not returned anywhere.
var (
	errNotAnObject = errors.New("schema fragment is not an object")
	errNotAnArray  = errors.New("schema fragment is not an array")
)
