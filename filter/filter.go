// Package filter computes the visible part of the directory for a union scope
// and a free-text query.
package filter

import (
	"strings"

	"forum-directory/models"
)

// Visible returns the records shown for scope and query, in input order.
//
// An empty scope means the whole roster. With no query (after trimming) a
// scoped view lists everyone in the union and an unscoped view lists nobody.
// Otherwise a record matches when the lower-cased query is a substring of its
// name, department, session, village/ward or union.
func Visible(records []models.Person, scope, query string) []models.Person {
	base := records
	if scope != "" {
		base = make([]models.Person, 0, len(records))
		for _, p := range records {
			if p.Union == scope {
				base = append(base, p)
			}
		}
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		if scope == "" {
			return []models.Person{}
		}
		return base
	}

	out := make([]models.Person, 0, len(base))
	for _, p := range base {
		if Matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether the already lower-cased query q occurs in any
// searchable field of p.
func Matches(p models.Person, q string) bool {
	for _, v := range []string{p.Name, p.Department, p.Session, p.VillageWard, p.Union} {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

// Limit returns at most n leading records. A non-positive n returns all.
func Limit(records []models.Person, n int) []models.Person {
	if n <= 0 || n >= len(records) {
		return records
	}
	return records[:n]
}
