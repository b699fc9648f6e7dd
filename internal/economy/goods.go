// Package economy provides the item catalog and the settlement market ledger.
package economy

import (
	"sort"

	"github.com/talgya/hamlet/internal/config"
)

// Category separates stackable resources from individually tracked tools.
type Category uint8

const (
	CategoryResource Category = iota
	CategoryTool
)

func (c Category) String() string {
	if c == CategoryTool {
		return "tool"
	}
	return "resource"
}

// ItemDefinition is the immutable description of a tradable thing.
type ItemDefinition struct {
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	BasePrice     int      `json:"base_price"`
	Durability    float64  `json:"durability,omitempty"`     // Tools only
	SpoilageTicks int      `json:"spoilage_ticks,omitempty"` // Resources only; 0 never spoils
}

// Catalog is the static set of item definitions keyed by name.
type Catalog struct {
	items map[string]ItemDefinition
	names []string
}

// NewCatalog builds a catalog from configuration entries.
func NewCatalog(entries []config.ItemConfig) *Catalog {
	c := &Catalog{items: make(map[string]ItemDefinition, len(entries))}
	for _, e := range entries {
		def := ItemDefinition{
			Name:      e.Name,
			BasePrice: e.BasePrice,
		}
		if e.Category == "tool" {
			def.Category = CategoryTool
			def.Durability = e.Durability
		} else {
			def.Category = CategoryResource
			def.SpoilageTicks = e.SpoilageTicks
		}
		if _, dup := c.items[e.Name]; !dup {
			c.names = append(c.names, e.Name)
		}
		c.items[e.Name] = def
	}
	sort.Strings(c.names)
	return c
}

// Get returns the definition for name.
func (c *Catalog) Get(name string) (ItemDefinition, bool) {
	def, ok := c.items[name]
	return def, ok
}

// IsTool reports whether name is a tool.
func (c *Catalog) IsTool(name string) bool {
	def, ok := c.items[name]
	return ok && def.Category == CategoryTool
}

// Names returns every item name in sorted order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Tools returns tool names in sorted order.
func (c *Catalog) Tools() []string {
	return c.filter(CategoryTool)
}

// Resources returns resource names in sorted order.
func (c *Catalog) Resources() []string {
	return c.filter(CategoryResource)
}

func (c *Catalog) filter(cat Category) []string {
	var out []string
	for _, n := range c.names {
		if c.items[n].Category == cat {
			out = append(out, n)
		}
	}
	return out
}
