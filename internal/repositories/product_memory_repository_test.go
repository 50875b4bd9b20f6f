package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inventory/internal/models"
	"inventory/internal/repositories"
)

func TestMemoryProductRepository_CreateAssignsUniqueIDs(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		p := models.Product{Name: "Item", Price: 1.0, Quantity: 1}
		err := repo.Create(&p)
		assert.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.False(t, seen[p.ID], "id %s issued twice", p.ID)
		seen[p.ID] = true
	}

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 10)
}

func TestMemoryProductRepository_UpdateKeepsID(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	p := models.Product{Name: "Rice 1kg", Price: 60.0, Quantity: 10, Category: "Grocery"}
	assert.NoError(t, repo.Create(&p))

	updated := models.Product{ID: p.ID, Name: "Rice 1kg", Price: 60.0, Quantity: 3, Category: "Grocery"}
	assert.NoError(t, repo.Update(&updated))

	got, err := repo.GetByID(p.ID)
	assert.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, 3, got.Quantity)
}

func TestMemoryProductRepository_UpdateMissingID(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	err := repo.Update(&models.Product{ID: "nope", Name: "Ghost"})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestMemoryProductRepository_DeleteIsIdempotent(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	p := models.Product{Name: "Rice 1kg", Price: 60.0, Quantity: 10, Category: "Grocery"}
	assert.NoError(t, repo.Create(&p))

	assert.NoError(t, repo.Delete(p.ID))

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, products)

	// Second delete of the same id still succeeds
	assert.NoError(t, repo.Delete(p.ID))
}

func TestMemoryProductRepository_GetByIDMissing(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	got, err := repo.GetByID("missing")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}
