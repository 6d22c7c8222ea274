package genschema

import "strconv"

// PseudoArrayHandler decides whether an object whose keys are purely
// numeric strings should instead be modelled as an array with a
// patternProperties key regex (spec §4.D).
type PseudoArrayHandler interface {
	// IsPseudoArray inspects the keys of an object-valued example and
	// reports whether it should be treated as a pseudo-array, and if so the
	// regex patternProperties should key on.
	IsPseudoArray(keys []string) (ok bool, pattern string)
}

// defaultPseudoArrayHandler implements the default predicate: every key
// parses as a decimal integer and the key set is non-empty.
type defaultPseudoArrayHandler struct{}

// DefaultPseudoArrayHandler returns the handler used unless a Converter is
// configured with WithPseudoArrayHandler.
func DefaultPseudoArrayHandler() PseudoArrayHandler {
	return defaultPseudoArrayHandler{}
}

func (defaultPseudoArrayHandler) IsPseudoArray(keys []string) (bool, string) {
	if len(keys) == 0 {
		return false, ""
	}
	for _, k := range keys {
		if _, err := strconv.Atoi(k); err != nil {
			return false, ""
		}
	}
	return true, "^[0-9]+$"
}

// noPseudoArrayHandler never treats an object as a pseudo-array; installing
// it via WithPseudoArrayHandler disables the feature entirely.
type noPseudoArrayHandler struct{}

func NoPseudoArrayHandler() PseudoArrayHandler { return noPseudoArrayHandler{} }

func (noPseudoArrayHandler) IsPseudoArray([]string) (bool, string) { return false, "" }
