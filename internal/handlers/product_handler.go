package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/services"
)

// Machine-readable error codes carried alongside the human message in
// every error body.
const (
	CodeValidationFailed   = "validation_failed"
	CodeNotFound           = "not_found"
	CodeStorageUnavailable = "storage_unavailable"
)

// ProductHandler handles HTTP requests for products. Validation lives
// in the service; the handler translates its errors into the wire
// taxonomy.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products. No pagination and no
// server-side filtering; the client projects the full list.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return storageError(c, err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(products)
}

// HandleCreateProduct creates a new product from the request body and
// returns the stored record including its generated id.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
			"code":  CodeValidationFailed,
		})
	}
	product.ID = "" // ids are assigned by the store, never by the caller

	if err := h.service.CreateProduct(&product); err != nil {
		if isValidationError(err) {
			return validationFailed(c, err)
		}
		log.Printf("Error creating product: %v", err)
		return storageError(c, err)
	}
	return c.JSON(product)
}

// HandleUpdateProduct replaces the four mutable fields of the product
// identified by the path id. Unknown ids are an explicit 404.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
			"code":  CodeValidationFailed,
		})
	}
	// The id travels in the path, not the body.
	product.ID = productID

	if err := h.service.UpdateProduct(&product); err != nil {
		if isValidationError(err) {
			return validationFailed(c, err)
		}
		log.Printf("Error updating product %s: %v", productID, err)
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Product with ID %s not found", productID),
				"code":  CodeNotFound,
			})
		}
		return storageError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes the product identified by the path id.
// Deleting an id that does not exist still reports success.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

// validationFailed writes a 400 response with a per-field error map.
func validationFailed(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return storageError(c, err)
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Validation failed",
		"code":   CodeValidationFailed,
		"fields": errorMessages,
	})
}

// storageError reports a store-layer failure. The product repository is
// the only error source below the handlers, so anything that is not a
// not-found or validation error means storage trouble.
func storageError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": err.Error(),
		"code":  CodeStorageUnavailable,
	})
}
