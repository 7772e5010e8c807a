package avatar

import "fmt"

// Entry is anything a catalog can hold.
type Entry interface {
	Key() string
}

// Catalog is an immutable, ordered lookup table built once at package init.
// It has no mutation API; All returns a copy.
type Catalog[T Entry] struct {
	entries  []T
	index    map[string]int
	fallback int
}

// newCatalog builds a catalog whose fallback is the entry with fallbackID.
// It panics on duplicate ids or a missing fallback, both programming errors
// in the static tables below.
func newCatalog[T Entry](fallbackID string, entries ...T) *Catalog[T] {
	c := &Catalog[T]{
		entries:  entries,
		index:    make(map[string]int, len(entries)),
		fallback: -1,
	}
	for i, e := range entries {
		if _, dup := c.index[e.Key()]; dup {
			panic(fmt.Sprintf("avatar: duplicate catalog id %q", e.Key()))
		}
		c.index[e.Key()] = i
		if e.Key() == fallbackID {
			c.fallback = i
		}
	}
	if c.fallback < 0 {
		panic(fmt.Sprintf("avatar: fallback id %q not in catalog", fallbackID))
	}
	return c
}

// Len returns the number of entries.
func (c *Catalog[T]) Len() int { return len(c.entries) }

// All returns the entries in menu order.
func (c *Catalog[T]) All() []T {
	out := make([]T, len(c.entries))
	copy(out, c.entries)
	return out
}

// IDs returns the entry ids in menu order.
func (c *Catalog[T]) IDs() []string {
	ids := make([]string, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.Key()
	}
	return ids
}

// Has reports whether id names an entry.
func (c *Catalog[T]) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Lookup returns the entry for id.
func (c *Catalog[T]) Lookup(id string) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.entries[i], true
}

// Default returns the fallback entry.
func (c *Catalog[T]) Default() T {
	return c.entries[c.fallback]
}

// ResolveOrDefault returns the entry for id, or the fallback entry when id is
// unknown. It never fails: stale saved configurations must keep rendering.
func (c *Catalog[T]) ResolveOrDefault(id string) T {
	if e, ok := c.Lookup(id); ok {
		return e
	}
	return c.Default()
}

// Step returns the id delta places after id in menu order, wrapping around.
// An unknown id steps from the fallback entry.
func (c *Catalog[T]) Step(id string, delta int) string {
	i, ok := c.index[id]
	if !ok {
		i = c.fallback
	}
	n := len(c.entries)
	return c.entries[((i+delta)%n+n)%n].Key()
}
