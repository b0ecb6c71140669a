package catalog

import (
	"sort"
	"strings"

	"github.com/artisanhome/cartengine/internal/domain"
)

// Product is one entry on the collection page.
type Product struct {
	ID          string
	Name        string
	UnitPrice   float64
	Description string
	Image       string
	Category    string
}

// LineItem converts a product into a cart line with the given quantity.
func (p Product) LineItem(quantity int) domain.LineItem {
	return domain.LineItem{
		ID:          p.ID,
		Name:        p.Name,
		UnitPrice:   p.UnitPrice,
		Quantity:    quantity,
		Description: p.Description,
	}
}

type SortBy string

const (
	SortNameAsc   SortBy = "name"
	SortPriceAsc  SortBy = "price-asc"
	SortPriceDesc SortBy = "price-desc"
)

// Filter narrows the collection. Zero values match everything.
type Filter struct {
	Query    string
	Category string
	MaxPrice float64
}

type Catalog struct {
	products []Product
	byID     map[string]int
}

func New(products []Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		c.byID[p.ID] = i
	}
	return c
}

func (c *Catalog) Get(id string) (Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, domain.ErrNotFound
	}
	return c.products[i], nil
}

// List returns a filtered, sorted copy of the collection. Search is a
// case-insensitive substring match over name and description.
func (c *Catalog) List(f Filter, by SortBy) []Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.MaxPrice > 0 && p.UnitPrice > f.MaxPrice {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}

	switch by {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].UnitPrice < out[j].UnitPrice })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].UnitPrice > out[j].UnitPrice })
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out
}

func (c *Catalog) Len() int { return len(c.products) }
