package repositories

import (
	"errors"

	"inventory/internal/models"
)

// ErrProductNotFound is returned when an operation references an id that
// does not exist in the store. Delete is the exception: removing a
// missing id succeeds silently.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
