package genschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsorbIntegerIntoNumberPreservesNumbersPosition(t *testing.T) {
	b := newTypeBuckets()
	b.add("integer", 0)
	b.add("string", 1)
	b.add("number", 2)

	b.absorbIntegerIntoNumber()

	assert.Equal(t, []string{"string", "number"}, b.keys)
	assert.Equal(t, map[int]struct{}{0: {}, 2: {}}, b.ids["number"])
}

func TestAbsorbIntegerIntoNumberNoOpWithoutBoth(t *testing.T) {
	b := newTypeBuckets()
	b.add("integer", 0)
	b.add("string", 1)

	b.absorbIntegerIntoNumber()

	assert.Equal(t, []string{"integer", "string"}, b.keys)
}
