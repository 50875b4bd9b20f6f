// Package view holds the client-side presentation logic: the display
// mode state container and the pure projections (category filtering,
// grouping, the filter control's category set, the quantity stepper
// and the low-stock flag). Projections are recomputed from the full
// product list on every change; nothing here is cached.
package view

import "inventory/internal/models"

// LowStockThreshold is the quantity below which a product is visually
// flagged. Display concern only, never enforced by the API or store.
const LowStockThreshold = 5

// GeneralCategory is the display bucket for products without a
// category. It is never persisted.
const GeneralCategory = "General"

// AllCategories is the filter value that selects every product.
const AllCategories = "All"

// DisplayCategory maps a stored category to its display label.
func DisplayCategory(category string) string {
	if category == "" {
		return GeneralCategory
	}
	return category
}

// Visible returns the subset of products whose stored category equals
// the filter. The AllCategories filter is the identity. The match is
// against the stored category, so filtering by GeneralCategory does not
// pull in products with an empty category; General is a display bucket,
// not a stored value.
func Visible(products []models.Product, filter string) []models.Product {
	if filter == AllCategories {
		return products
	}
	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == filter {
			visible = append(visible, p)
		}
	}
	return visible
}

// GroupByCategory buckets products by display category. Every product
// lands in exactly one bucket.
func GroupByCategory(products []models.Product) map[string][]models.Product {
	groups := make(map[string][]models.Product)
	for _, p := range products {
		cat := DisplayCategory(p.Category)
		groups[cat] = append(groups[cat], p)
	}
	return groups
}

// Categories returns the distinct display categories across the full
// product list, in first-seen order. The filter control is always
// populated from all products, not the currently visible subset.
func Categories(products []models.Product) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		cat := DisplayCategory(p.Category)
		if !seen[cat] {
			seen[cat] = true
			categories = append(categories, cat)
		}
	}
	return categories
}

// LowStock reports whether a product should carry the low-stock badge.
func LowStock(p models.Product) bool {
	return p.Quantity < LowStockThreshold
}

// IncrementQuantity steps a quantity up. Unconditional.
func IncrementQuantity(quantity int) int {
	return quantity + 1
}

// DecrementQuantity steps a quantity down, clamping at zero.
func DecrementQuantity(quantity int) int {
	if quantity <= 0 {
		return 0
	}
	return quantity - 1
}
