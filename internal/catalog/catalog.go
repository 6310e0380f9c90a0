// Package catalog holds the static commodity tables: accepted product aliases,
// base prices per kilogram and the metro cities that carry a location surcharge.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DefaultKey is returned by Normalize when no alias matches.
const DefaultKey = "default"

// DefaultBasePrice is the per-kg price used for DefaultKey.
const DefaultBasePrice = 20

// Product is one canonical commodity with its accepted surface forms.
type Product struct {
	Key       string   `json:"key"`
	Aliases   []string `json:"aliases"`
	BasePrice int      `json:"base_price"`
}

// Catalog is immutable once built and safe for concurrent reads.
type Catalog struct {
	products     []Product
	index        map[string]int
	defaultPrice int
	metros       []string
}

var (
	ErrEmptyKey     = errors.New("product key is empty")
	ErrReservedKey  = errors.New("product key is reserved")
	ErrDuplicateKey = errors.New("duplicate product key")
	ErrNoAliases    = errors.New("product has no aliases")
	ErrBadPrice     = errors.New("base price must be positive")
)

// Products returns the built-in commodity table in matching order.
func Products() []Product {
	return []Product{
		{Key: "potato", Aliases: []string{"potato", "potatoes", "आलू"}, BasePrice: 18},
		{Key: "tomato", Aliases: []string{"tomato", "टमाटर"}, BasePrice: 22},
		{Key: "onion", Aliases: []string{"onion", "प्याज"}, BasePrice: 25},
		{Key: "apple", Aliases: []string{"apple", "सेब"}, BasePrice: 95},
	}
}

// MetroCities returns the built-in metro list.
func MetroCities() []string {
	return []string{"delhi", "mumbai", "bangalore", "chennai", "kolkata"}
}

// Default builds the catalog from the built-in tables.
func Default() *Catalog {
	c, err := New(Products(), DefaultBasePrice, MetroCities())
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in tables invalid: %v", err))
	}
	return c
}

// New validates the tables and returns a catalog. Aliases and metro names are
// stored lowercased.
func New(products []Product, defaultPrice int, metros []string) (*Catalog, error) {
	if defaultPrice <= 0 {
		return nil, fmt.Errorf("%s: %w", DefaultKey, ErrBadPrice)
	}
	c := &Catalog{
		products:     make([]Product, 0, len(products)),
		index:        make(map[string]int, len(products)),
		defaultPrice: defaultPrice,
	}
	for _, p := range products {
		key := strings.TrimSpace(p.Key)
		switch {
		case key == "":
			return nil, ErrEmptyKey
		case key == DefaultKey:
			return nil, fmt.Errorf("%s: %w", key, ErrReservedKey)
		case p.BasePrice <= 0:
			return nil, fmt.Errorf("%s: %w", key, ErrBadPrice)
		}
		if _, ok := c.index[key]; ok {
			return nil, fmt.Errorf("%s: %w", key, ErrDuplicateKey)
		}
		aliases := make([]string, 0, len(p.Aliases))
		for _, a := range p.Aliases {
			if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
				aliases = append(aliases, a)
			}
		}
		if len(aliases) == 0 {
			return nil, fmt.Errorf("%s: %w", key, ErrNoAliases)
		}
		c.index[key] = len(c.products)
		c.products = append(c.products, Product{Key: key, Aliases: aliases, BasePrice: p.BasePrice})
	}
	for _, m := range metros {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			c.metros = append(c.metros, m)
		}
	}
	return c, nil
}

// Normalize maps free text to a canonical key. The first product, in table
// order, with an alias occurring anywhere in the lowercased input wins.
func (c *Catalog) Normalize(product string) string {
	lower := strings.ToLower(product)
	for _, p := range c.products {
		for _, alias := range p.Aliases {
			if strings.Contains(lower, alias) {
				return p.Key
			}
		}
	}
	return DefaultKey
}

// BasePrice returns the per-kg price for key, falling back to the default price.
func (c *Catalog) BasePrice(key string) int {
	if i, ok := c.index[key]; ok {
		return c.products[i].BasePrice
	}
	return c.defaultPrice
}

// IsMetro reports whether location mentions a metro city, case-insensitively.
func (c *Catalog) IsMetro(location string) bool {
	lower := strings.ToLower(location)
	for _, city := range c.metros {
		if strings.Contains(lower, city) {
			return true
		}
	}
	return false
}

// Entries returns a copy of the products followed by the default entry.
func (c *Catalog) Entries() []Product {
	out := make([]Product, 0, len(c.products)+1)
	for _, p := range c.products {
		p.Aliases = append([]string(nil), p.Aliases...)
		out = append(out, p)
	}
	return append(out, Product{Key: DefaultKey, BasePrice: c.defaultPrice})
}

// WithBasePrices returns a copy of c with prices replaced from overrides.
// Keys that are not in the catalog are returned in skipped and otherwise ignored.
func (c *Catalog) WithBasePrices(overrides map[string]int) (*Catalog, []string, error) {
	products := c.Entries()
	products = products[:len(products)-1]
	defaultPrice := c.defaultPrice
	var skipped []string
	for key, price := range overrides {
		if key == DefaultKey {
			defaultPrice = price
			continue
		}
		i, ok := c.index[key]
		if !ok {
			skipped = append(skipped, key)
			continue
		}
		products[i].BasePrice = price
	}
	sort.Strings(skipped)
	next, err := New(products, defaultPrice, c.metros)
	if err != nil {
		return nil, nil, err
	}
	return next, skipped, nil
}
