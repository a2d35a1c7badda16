package importer

import (
	"strings"
	"unicode"

	"forum-directory/models"
)

// Mapping associates a target field with a zero-based column index. Fields
// absent from the map are unset.
type Mapping map[models.Field]int

// Clone returns an independent copy of m.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for f, col := range m {
		out[f] = col
	}
	return out
}

// Column returns the mapped column for f.
func (m Mapping) Column(f models.Field) (int, bool) {
	col, ok := m[f]
	return col, ok
}

// normalizeLabel lower-cases s and removes every whitespace character, so
// "High School" and "highSchool" compare equal.
func normalizeLabel(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// SubstringHeaderMatch returns the index of the first header whose
// normalized label contains the normalized field name.
func SubstringHeaderMatch(headers []string, f models.Field) (int, bool) {
	want := normalizeLabel(string(f))
	for i, h := range headers {
		if strings.Contains(normalizeLabel(h), want) {
			return i, true
		}
	}
	return 0, false
}

// AutoMap infers a mapping for every canonical field from the header labels.
// Fields without a matching header stay unset.
func AutoMap(headers []string) Mapping {
	m := make(Mapping, len(models.Fields))
	for _, f := range models.Fields {
		if col, ok := SubstringHeaderMatch(headers, f); ok {
			m[f] = col
		}
	}
	return m
}
