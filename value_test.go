package genschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONDistinguishesIntegerFromNumber(t *testing.T) {
	v, err := decodeJSON([]byte(`{"a": 1, "b": 1.5, "c": 1e2}`))
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)

	assert.Equal(t, int64(1), m["a"])
	assert.Equal(t, 1.5, m["b"])
	assert.Equal(t, 100.0, m["c"])
}

func TestDecodeJSONNestedCollections(t *testing.T) {
	v, err := decodeJSON([]byte(`{"items": [1, 2.5, "x"]}`))
	require.NoError(t, err)

	m := v.(map[string]any)
	items := m["items"].([]any)
	assert.Equal(t, int64(1), items[0])
	assert.Equal(t, 2.5, items[1])
	assert.Equal(t, "x", items[2])
}

func TestDecodeJSONInvalidInput(t *testing.T) {
	_, err := decodeJSON([]byte(`{not json`))
	assert.Error(t, err)
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		value JsonValue
		want  string
	}{
		{nil, "null"},
		{true, "boolean"},
		{int64(1), "integer"},
		{1.5, "number"},
		{"s", "string"},
		{[]any{}, "array"},
		{map[string]any{}, "object"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, kindOf(c.value))
	}
}
