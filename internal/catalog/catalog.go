// Package catalog provides item names, prices and categories.
package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
)

// Item categories
const (
	CategoryForage     = "forage"
	CategoryCrop       = "crop"
	CategoryFlower     = "flower"
	CategoryFruit      = "fruit"
	CategoryAnimal     = "animal"
	CategoryResource   = "resource"
	CategoryFertilizer = "fertilizer"
	CategoryMachine    = "machine"
)

// Name cache sizing
const (
	nameCacheSize = 256
	nameCacheTTL  = 10 * time.Minute
)

// Item is one catalog entry
type Item struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
}

// Catalog is a read-only item table
type Catalog struct {
	byID   map[int]Item
	byName *expirable.LRU[string, Item]
}

// New builds a catalog from item definitions
func New(items []Item) *Catalog {
	c := &Catalog{
		byID:   make(map[int]Item, len(items)),
		byName: expirable.NewLRU[string, Item](nameCacheSize, nil, nameCacheTTL),
	}
	for _, it := range items {
		c.byID[it.ID] = it
	}
	return c
}

// Lookup returns the item with the given id
func (c *Catalog) Lookup(id int) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Name returns the display name of an item, or a placeholder when unknown
func (c *Catalog) Name(id int) string {
	if it, ok := c.byID[id]; ok {
		return it.Name
	}
	return fmt.Sprintf("Item #%d", id)
}

// Price returns the sell price of an item, 0 when unknown
func (c *Catalog) Price(id int) int {
	return c.byID[id].Price
}

// IsForage reports whether the item is in the forage category
func (c *Catalog) IsForage(id int) bool {
	return c.byID[id].Category == CategoryForage
}

// ByName finds an item by name, ignoring case. Results are cached.
func (c *Catalog) ByName(name string) (Item, error) {
	key := cases.Fold().String(name)
	if it, ok := c.byName.Get(key); ok {
		return it, nil
	}
	for _, it := range c.byID {
		if cases.Fold().String(it.Name) == key {
			c.byName.Add(key, it)
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
}

// Stack builds an item stack with the catalog name filled in
func (c *Catalog) Stack(id, quantity int, q domain.Quality) domain.ItemStack {
	return domain.ItemStack{ItemID: id, Name: c.Name(id), Quantity: quantity, Quality: q}
}

// Items returns every entry ordered by id
func (c *Catalog) Items() []Item {
	out := make([]Item, 0, len(c.byID))
	for _, it := range c.byID {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.byID)
}
