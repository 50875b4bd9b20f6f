package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inventory/internal/models"
	"inventory/internal/view"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Rice 1kg", Price: 60, Quantity: 10, Category: "Grocery"},
		{ID: "2", Name: "Sugar 1kg", Price: 45, Quantity: 2, Category: "Grocery"},
		{ID: "3", Name: "Notebook", Price: 20, Quantity: 50, Category: "Stationery"},
		{ID: "4", Name: "Mystery Box", Price: 99, Quantity: 1, Category: ""},
	}
}

func TestVisible_AllIsIdentity(t *testing.T) {
	products := sampleProducts()
	assert.Equal(t, products, view.Visible(products, view.AllCategories))
}

func TestVisible_FiltersByExactCategory(t *testing.T) {
	products := sampleProducts()

	grocery := view.Visible(products, "Grocery")
	assert.Len(t, grocery, 2)
	for _, p := range grocery {
		assert.Equal(t, "Grocery", p.Category)
	}

	// General is a display bucket, not a stored category
	assert.Empty(t, view.Visible(products, view.GeneralCategory))
	assert.Empty(t, view.Visible(products, "Electronics"))
}

func TestGroupByCategory_EveryProductExactlyOnce(t *testing.T) {
	products := sampleProducts()
	groups := view.GroupByCategory(products)

	var total int
	seen := make(map[string]bool)
	for _, group := range groups {
		for _, p := range group {
			assert.False(t, seen[p.ID], "product %s grouped twice", p.ID)
			seen[p.ID] = true
			total++
		}
	}
	assert.Equal(t, len(products), total)

	// Empty category lands in the General bucket
	assert.Len(t, groups[view.GeneralCategory], 1)
	assert.Equal(t, "4", groups[view.GeneralCategory][0].ID)
}

func TestCategories_DistinctOverFullList(t *testing.T) {
	products := sampleProducts()
	assert.Equal(t, []string{"Grocery", "Stationery", "General"}, view.Categories(products))
}

func TestCategories_GroceryAndUncategorized(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "Rice 1kg", Category: "Grocery"},
		{ID: "2", Name: "Mystery Box", Category: ""},
	}

	assert.Equal(t, []string{"Grocery", "General"}, view.Categories(products))
	assert.Len(t, view.GroupByCategory(products), 2)
}

func TestLowStock(t *testing.T) {
	assert.True(t, view.LowStock(models.Product{Quantity: 0}))
	assert.True(t, view.LowStock(models.Product{Quantity: 4}))
	assert.False(t, view.LowStock(models.Product{Quantity: 5}))
	assert.False(t, view.LowStock(models.Product{Quantity: 100}))
}

func TestQuantityStepper(t *testing.T) {
	assert.Equal(t, 1, view.IncrementQuantity(0))
	assert.Equal(t, 11, view.IncrementQuantity(10))

	assert.Equal(t, 0, view.DecrementQuantity(0), "decrement clamps at zero")
	assert.Equal(t, 0, view.DecrementQuantity(1))
	assert.Equal(t, 9, view.DecrementQuantity(10))
}
