// Package catalog - Authoritative household item catalog
// Defines the canonical list of movable items with weight, volume and
// category. This is the source of truth for inventory resolution.
package catalog

import (
	"sort"
)

// Entry is a catalog entry for a movable item
type Entry struct {
	// Name is the canonical item id (unique across the catalog)
	Name string

	// Aliases are alternative labels that resolve to this entry
	Aliases []string

	// WeightLbs is the weight of a single item in pounds
	WeightLbs float64

	// VolumeCuft is the volume of a single item in cubic feet
	VolumeCuft float64

	// Category classifies the item (bed, mattress, desk, carton, ...)
	Category string
}

// Catalog is the authoritative item catalog
type Catalog struct {
	entries map[string]*Entry

	// aliasIndex maps normalized labels (names and aliases) to entries
	aliasIndex map[string]*Entry
}

// NewCatalog creates a new catalog
func NewCatalog() *Catalog {
	return &Catalog{
		entries:    make(map[string]*Entry),
		aliasIndex: make(map[string]*Entry),
	}
}

// Register adds an item to the catalog.
// The entry's own name always wins the alias index; an alias never displaces
// a canonical name registered earlier.
func (c *Catalog) Register(entry Entry) {
	e := entry
	c.entries[e.Name] = &e

	c.indexLabel(e.Name, &e, true)
	for _, alias := range e.Aliases {
		c.indexLabel(alias, &e, false)
	}
}

func (c *Catalog) indexLabel(label string, entry *Entry, canonical bool) {
	normalized := NormalizeLabel(label)
	if normalized == "" {
		return
	}
	existing, ok := c.aliasIndex[normalized]
	if ok && !canonical {
		// Deterministic collision handling: keep the lexicographically
		// first entry name.
		if existing.Name <= entry.Name {
			return
		}
	}
	c.aliasIndex[normalized] = entry
}

// Get returns an entry by canonical name
func (c *Catalog) Get(name string) (*Entry, bool) {
	entry, ok := c.entries[name]
	return entry, ok
}

// Lookup returns the entry for a normalized label, if indexed
func (c *Catalog) Lookup(normalized string) (*Entry, bool) {
	entry, ok := c.aliasIndex[normalized]
	return entry, ok
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns all entries sorted by name
func (c *Catalog) Entries() []*Entry {
	result := make([]*Entry, 0, len(c.entries))
	for _, entry := range c.entries {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Labels returns all indexed normalized labels in sorted order
func (c *Catalog) Labels() []string {
	result := make([]string, 0, len(c.aliasIndex))
	for label := range c.aliasIndex {
		result = append(result, label)
	}
	sort.Strings(result)
	return result
}
