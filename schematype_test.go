package genschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferSchemaTypesString(t *testing.T) {
	assert.Equal(t, []string{"string"}, inferSchemaTypes(map[string]any{"type": "string"}))
}

func TestInferSchemaTypesList(t *testing.T) {
	got := inferSchemaTypes(map[string]any{"type": []any{"string", "null", "string"}})
	assert.Equal(t, []string{"string", "null"}, got)
}

func TestInferSchemaTypesAnyOf(t *testing.T) {
	s := map[string]any{
		"anyOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
	}
	assert.Equal(t, []string{"string", "integer"}, inferSchemaTypes(s))
}

func TestInferSchemaTypesAllOfIntersection(t *testing.T) {
	s := map[string]any{
		"allOf": []any{
			map[string]any{"type": []any{"string", "integer"}},
			map[string]any{"type": []any{"integer", "null"}},
		},
	}
	assert.Equal(t, []string{"integer"}, inferSchemaTypes(s))
}

func TestInferSchemaTypesFallbackProperties(t *testing.T) {
	s := map[string]any{"properties": map[string]any{"a": map[string]any{}}}
	assert.Equal(t, []string{"object"}, inferSchemaTypes(s))
}

func TestInferSchemaTypesFallbackItems(t *testing.T) {
	s := map[string]any{"items": map[string]any{}}
	assert.Equal(t, []string{"array"}, inferSchemaTypes(s))
}

func TestInferSchemaTypesEmpty(t *testing.T) {
	assert.Nil(t, inferSchemaTypes(map[string]any{}))
}
