package models

import "strings"

// DefaultUnions is the built-in union list used when no catalog is configured.
var DefaultUnions = []string{
	"Basurhat Pourashava",
	"Char Elahi",
	"Char Fakira",
	"Char Hazari",
	"Char Kakra",
	"Char Parboti",
	"Musapur",
	"Rampur",
	"Sirajpur",
	"Others",
}

// DefaultFallbackUnion receives imported rows whose union cell is missing.
const DefaultFallbackUnion = "Others"

// Catalog is the fixed, ordered set of valid union names.
type Catalog struct {
	names    []string
	fallback string
}

// NewCatalog builds a catalog from names, dropping blanks and duplicates.
// fallback becomes the default union if it is one of names, otherwise the
// first name is used.
func NewCatalog(names []string, fallback string) *Catalog {
	c := &Catalog{names: make([]string, 0, len(names))}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		c.names = append(c.names, n)
	}
	if seen[fallback] {
		c.fallback = fallback
	} else if len(c.names) > 0 {
		c.fallback = c.names[0]
	}
	return c
}

// Names returns a copy of the catalog in its configured order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Contains reports whether name is a catalog entry (case-sensitive).
func (c *Catalog) Contains(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

// Default returns the fallback union.
func (c *Catalog) Default() string {
	return c.fallback
}
