// Package catalog loads named reference colors from a nested document and
// flattens them into an ordered, read-only lookup table.
package catalog

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/text/cases"
)

// Catalog is an immutable flattened color catalog. It is safe for concurrent use.
type Catalog struct {
	source  string
	entries []Entry
	index   map[string]int
	folded  map[string]int
}

// New builds a catalog from flattened entries. The slice is copied. When a
// name repeats, lookups resolve to its first occurrence.
func New(source string, entries []Entry) *Catalog {
	c := &Catalog{
		source:  source,
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
		folded:  make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)

	for i, e := range c.entries {
		if _, ok := c.index[e.Name]; !ok {
			c.index[e.Name] = i
		}
		if f := fold(e.Name); !lo.HasKey(c.folded, f) {
			c.folded[f] = i
		}
	}

	return c
}

func fold(s string) string {
	// a Caser is stateful, so one per call
	return cases.Fold().String(s)
}

// Source names where the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in document order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Names returns the entry names in document order.
func (c *Catalog) Names() []string {
	return lo.Map(c.entries, func(e Entry, _ int) string {
		return e.Name
	})
}

// Get looks up an entry by its exact name.
func (c *Catalog) Get(name string) mo.Option[Entry] {
	if i, ok := c.index[name]; ok {
		return mo.Some(c.entries[i])
	}
	return mo.None[Entry]()
}

// Find is like Get but falls back to a case-insensitive match.
func (c *Catalog) Find(name string) mo.Option[Entry] {
	if e := c.Get(name); e.IsPresent() {
		return e
	}
	if i, ok := c.folded[fold(name)]; ok {
		return mo.Some(c.entries[i])
	}
	return mo.None[Entry]()
}
