package services

import (
	"github.com/go-playground/validator/v10"

	"inventory/internal/models"
	"inventory/internal/repositories"
)

// ProductService handles business logic related to products. Writes are
// validated here so that every caller (REST API, web forms) goes
// through the same checks.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validator.New(),
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates and stores a new product. The repository
// assigns the id. Validation failures surface as
// validator.ValidationErrors.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return err
	}
	return s.repo.Create(product)
}

// UpdateProduct validates and replaces the mutable fields of an
// existing product. The id is checked against the store rather than the
// uuid format, so an unknown id yields
// repositories.ErrProductNotFound, not a validation error.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := s.validate.StructExcept(product, "ID"); err != nil {
		return err
	}
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID. Idempotent.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
