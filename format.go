package genschema

import "regexp"

// formatPattern is one entry of a FormatDetector's ordered table: a
// compiled regex and the format name it denotes when matched.
type formatPattern struct {
	re   *regexp.Regexp
	name string
}

// FormatDetector is a pluggable table mapping a declared semantic type
// (currently only "string" ships populated) to an ordered list of
// (pattern, format-name) entries. Evaluation uses full-match semantics
// against the stringified value; the first matching pattern wins.
//
// The registry is a value owned by a FormatComparator instance rather than
// a process-global map, per the teacher/pack's design note that globally
// mutable regex tables become a constructor parameter (see SPEC_FULL.md).
type FormatDetector struct {
	table map[string][]formatPattern
}

// NewFormatDetector returns an empty detector. Register entries with
// AddPattern, or use DefaultFormatDetector for the canonical catalog.
func NewFormatDetector() *FormatDetector {
	return &FormatDetector{table: make(map[string][]formatPattern)}
}

// AddPattern appends a (pattern, name) entry to semanticType's table. Entries
// registered earlier take priority: the first matching pattern wins.
func (d *FormatDetector) AddPattern(semanticType, pattern, name string) *FormatDetector {
	d.table[semanticType] = append(d.table[semanticType], formatPattern{
		re:   regexp.MustCompile(`^(?:` + pattern + `)$`),
		name: name,
	})
	return d
}

// Detect returns the format name of the first pattern registered for
// semanticType that matches value in full (the entire string, not a
// substring), or "" if none do.
func (d *FormatDetector) Detect(semanticType, value string) string {
	for _, p := range d.table[semanticType] {
		if p.re.MatchString(value) {
			return p.name
		}
	}
	return ""
}

// DefaultFormatDetector returns a detector pre-populated with the six
// canonical string formats and patterns of spec §6.
func DefaultFormatDetector() *FormatDetector {
	return NewFormatDetector().
		AddPattern("string", `^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`, "email").
		AddPattern("string", `(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, "uuid").
		AddPattern("string", `^\d{4}-\d{2}-\d{2}$`, "date").
		AddPattern("string", `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`, "date-time").
		AddPattern("string", `(?i)^https?://[^\s/$.?#].[^\s]*$`, "uri").
		AddPattern("string", `^(?:(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\.){3}(?:25[0-5]|2[0-4]\d|[01]?\d\d?)$`, "ipv4")
}
