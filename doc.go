// Package genschema infers a JSON Schema (draft 2020-12) from a collection
// of example JSON documents and/or partial JSON Schema fragments.
//
// Given heterogeneous sample inputs describing the same conceptual value,
// Converter produces a single SchemaNode that describes every input
// faithfully, folding differences into union variants where necessary and
// shared attributes where possible. See Converter for the entry point.
package genschema
