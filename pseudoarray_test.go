package genschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPseudoArrayHandlerDetectsNumericKeys(t *testing.T) {
	h := DefaultPseudoArrayHandler()
	ok, pattern := h.IsPseudoArray([]string{"0", "1", "2"})
	assert.True(t, ok)
	assert.Equal(t, "^[0-9]+$", pattern)
}

func TestDefaultPseudoArrayHandlerRejectsMixedKeys(t *testing.T) {
	h := DefaultPseudoArrayHandler()
	ok, _ := h.IsPseudoArray([]string{"0", "name"})
	assert.False(t, ok)
}

func TestDefaultPseudoArrayHandlerRejectsEmpty(t *testing.T) {
	h := DefaultPseudoArrayHandler()
	ok, _ := h.IsPseudoArray(nil)
	assert.False(t, ok)
}

func TestNoPseudoArrayHandlerAlwaysDeclines(t *testing.T) {
	h := NoPseudoArrayHandler()
	ok, _ := h.IsPseudoArray([]string{"0", "1"})
	assert.False(t, ok)
}
