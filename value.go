package genschema

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// JsonValue is the standard JSON algebraic value: null, boolean, integer,
// number, string, array or object. integer and number are distinguished by
// decoding with UseNumber and inspecting the literal (see decodeJSON).
//
// Concrete Go representations:
//
//	null    -> nil
//	boolean -> bool
//	integer -> int64
//	number  -> float64
//	string  -> string
//	array   -> []any
//	object  -> map[string]any
type JsonValue = any

// decodeJSON parses raw JSON bytes into a JsonValue, preserving the
// integer/number distinction the way the teacher's Rat type preserves
// integer precision when decoding with goccy/go-json (see rat.go in the
// reference compiler): numbers are decoded via json.Number and converted to
// int64 when the literal carries no fractional or exponent marker, float64
// otherwise.
func decodeJSON(data []byte) (JsonValue, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return normalizeNumbers(raw), nil
}

func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		return numberToGoValue(val)
	case map[string]any:
		for k, sub := range val {
			val[k] = normalizeNumbers(sub)
		}
		return val
	case []any:
		for i, sub := range val {
			val[i] = normalizeNumbers(sub)
		}
		return val
	default:
		return v
	}
}

func numberToGoValue(n json.Number) any {
	s := string(n)
	if strings.ContainsAny(s, ".eE") {
		f, err := n.Float64()
		if err == nil {
			return f
		}
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	f, _ := n.Float64()
	return f
}

// jsonMarshal renders v as JSON using the same codec decodeJSON reads with,
// so a Converter.RunJSON round-trips through a single third-party decoder
// and encoder pair rather than mixing in encoding/json.
func jsonMarshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// kindOf returns the immediate JSON type name of a decoded JsonValue, one of
// null|boolean|integer|number|string|array|object.
func kindOf(v JsonValue) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int64:
		return "integer"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "null"
	}
}
