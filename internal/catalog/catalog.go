// Package catalog holds the static, read-only product list. Products are
// loaded once at construction and never mutated or deleted.
package catalog

import (
	"sort"
	"strings"

	"storefront/internal/models"
)

type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

// New creates a catalog over the built-in product list
func New() *Catalog {
	return NewWithProducts(allProducts)
}

// NewWithProducts creates a catalog over an explicit product list
func NewWithProducts(products []models.Product) *Catalog {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{
		products: append([]models.Product(nil), products...),
		byID:     byID,
	}
}

// ByID looks up a product by id
func (c *Catalog) ByID(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ByCategory returns all products in the given category, preserving catalog order
func (c *Catalog) ByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// List returns a snapshot of the full catalog
func (c *Catalog) List() []models.Product {
	return append([]models.Product(nil), c.products...)
}

// Search returns products whose name, description or category contains term,
// case-insensitively. An empty term matches everything.
func (c *Catalog) Search(term string) []models.Product {
	return c.Browse("", term, SortDefault)
}

// Browse is the listing-page pipeline: optional category filter, then
// case-insensitive search, then sort. Empty category and term match
// everything.
func (c *Catalog) Browse(category, term string, order SortOrder) []models.Product {
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		if !matches(p, term) {
			continue
		}
		out = append(out, p)
	}
	SortProducts(out, order)
	return out
}

func matches(p models.Product, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

// Categories returns the closed category set
func (c *Catalog) Categories() []string {
	return models.Categories()
}

// SortOrder names the product orderings offered by the listing page
type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortNameAsc   SortOrder = "name_asc"
	SortNameDesc  SortOrder = "name_desc"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// SortProducts orders products in place. SortDefault (and any unknown order)
// keeps catalog order.
func SortProducts(products []models.Product, order SortOrder) {
	switch order {
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name > products[j].Name })
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	}
}
