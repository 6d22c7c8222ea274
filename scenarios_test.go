package genschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioSingleStringExample(t *testing.T) {
	c, err := NewConverter(WithComparators(NewFormatComparator(nil)))
	require.NoError(t, err)
	c.AddExample("alice@example.com")

	node, err := c.Run()
	require.NoError(t, err)

	assert.Equal(t, "string", node.Type)
	assert.Equal(t, "email", node.Format)
}

func TestScenarioIntegerAbsorption(t *testing.T) {
	c, err := NewConverter(WithComparators())
	require.NoError(t, err)
	c.AddExample(int64(1))
	c.AddExample(2.5)

	node, err := c.Run()
	require.NoError(t, err)

	assert.Equal(t, "number", node.Type)
	assert.Empty(t, node.Union)
}

func TestScenarioObjectRequiredIntersection(t *testing.T) {
	c, err := NewConverter(WithComparators(RequiredComparator{}))
	require.NoError(t, err)
	c.AddExample(map[string]any{"a": int64(1), "b": int64(2)})
	c.AddExample(map[string]any{"a": int64(3)})

	node, err := c.Run()
	require.NoError(t, err)

	assert.Equal(t, "object", node.Type)
	require.Contains(t, node.Properties, "a")
	require.Contains(t, node.Properties, "b")
	assert.Equal(t, "integer", node.Properties["a"].Type)
	assert.Equal(t, "integer", node.Properties["b"].Type)
	assert.Equal(t, []string{"a"}, node.Required)
}

func TestScenarioMixedTypesTriggerUnion(t *testing.T) {
	c, err := NewConverter(WithComparators())
	require.NoError(t, err)
	c.AddExample("s")
	c.AddExample(int64(1))

	node, err := c.Run()
	require.NoError(t, err)

	require.Len(t, node.Union, 2)
	assert.Equal(t, "string", node.Union[0].Type)
	assert.Equal(t, "integer", node.Union[1].Type)
	assert.Equal(t, "anyOf", node.UnionKeyword)
}

func TestScenarioPseudoArray(t *testing.T) {
	c, err := NewConverter(WithComparators())
	require.NoError(t, err)
	c.AddExample(map[string]any{"0": "a", "1": "b"})

	node, err := c.Run()
	require.NoError(t, err)

	assert.Equal(t, "array", node.Type)
	require.Contains(t, node.PatternProperties, "^[0-9]+$")
	assert.Equal(t, "string", node.PatternProperties["^[0-9]+$"].Type)
}

func TestScenarioSchemaExampleFusion(t *testing.T) {
	c, err := NewConverter(WithComparators())
	require.NoError(t, err)
	c.AddSchema(map[string]any{
		"type":       "object",
		"properties": map[string]any{"n": map[string]any{"type": "integer"}},
	})
	c.AddExample(map[string]any{"n": int64(7), "m": "x"})

	node, err := c.Run()
	require.NoError(t, err)

	assert.Equal(t, "object", node.Type)
	assert.Equal(t, "integer", node.Properties["n"].Type)
	assert.Equal(t, "string", node.Properties["m"].Type)
	assert.Nil(t, node.Required)
}

func TestScenarioRootSchemaVersionDefault(t *testing.T) {
	c, err := NewConverter()
	require.NoError(t, err)
	c.AddExample("x")

	node, err := c.Run()
	require.NoError(t, err)

	assert.Equal(t, DefaultSchemaVersion, node.Schema)
}

func TestScenarioRootSchemaVersionNotDuplicatedAcrossUnionVariants(t *testing.T) {
	c, err := NewConverter()
	require.NoError(t, err)
	c.AddExample("s")
	c.AddExample(int64(1))

	node, err := c.Run()
	require.NoError(t, err)

	assert.Equal(t, DefaultSchemaVersion, node.Schema)
	for _, v := range node.Union {
		assert.Empty(t, v.Schema)
	}
}

func TestAddExampleJSONAndRunJSON(t *testing.T) {
	c, err := NewConverter(WithComparators(NewFormatComparator(nil)))
	require.NoError(t, err)
	_, err = c.AddExampleJSON([]byte(`"alice@example.com"`))
	require.NoError(t, err)

	data, err := c.RunJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"format":"email"`)
}

func TestAddExampleJSONInvalid(t *testing.T) {
	c, err := NewConverter()
	require.NoError(t, err)
	_, err = c.AddExampleJSON([]byte(`{not json`))
	assert.ErrorIs(t, err, ErrJSONDecode)
}

func TestNewConverterRejectsUnknownUnionKeyword(t *testing.T) {
	_, err := NewConverter(WithUnionKeyword("xyz"))
	assert.ErrorIs(t, err, ErrUnknownUnionKeyword)
}
