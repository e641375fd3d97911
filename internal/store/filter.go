package store

import (
	"strings"

	"github.com/aureliacouture/boutique/internal/models"
)

// Filter narrows the shopper-facing gallery view.
type Filter struct {
	Query    string  // case-insensitive substring over name and description
	Category string  // "All" or empty matches every category
	MaxPrice float64 // zero or negative means no ceiling
}

// FilterProducts derives the gallery view: hidden products are dropped, then
// the category, price ceiling and search clauses are applied. Catalog order
// is preserved; there is no secondary sort.
func FilterProducts(products []models.Product, f Filter) []models.Product {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	var out []models.Product
	for _, p := range products {
		if !p.Visible {
			continue
		}
		if f.Category != "" && f.Category != "All" && p.Category != f.Category {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
