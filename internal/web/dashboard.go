// Package web serves the browser client: a server-rendered dashboard
// over the product service. Every mutation redirects back to the list,
// so the page the user sees is always a fresh projection of the store.
package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// DashboardHandler renders the inventory pages.
type DashboardHandler struct {
	service   *services.ProductService
	templates *template.Template
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.ProductService) *DashboardHandler {
	return &DashboardHandler{
		service:   service,
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// RegisterRoutes registers the dashboard routes with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleDashboard)
	router.Get("/products/new", h.HandleNewProduct)
	router.Get("/products/:id/edit", h.HandleEditProduct)
	router.Post("/products", h.HandleCreateForm)
	router.Post("/products/new/step", h.HandleStepNewQuantity)
	router.Post("/products/:id", h.HandleUpdateForm)
	router.Post("/products/:id/edit/step", h.HandleStepEditQuantity)
	router.Post("/products/:id/delete", h.HandleDeleteForm)
}

type productRow struct {
	models.Product
	LowStock bool
}

type categorySection struct {
	Category string
	Products []productRow
}

type listPage struct {
	Filter     string
	Categories []string
	Sections   []categorySection
}

type formPage struct {
	Title      string
	Action     string
	StepAction string
	Filter     string
	Draft      view.Draft
}

// HandleDashboard renders the grouped product list. The category query
// parameter selects the filter; it defaults to All.
func (h *DashboardHandler) HandleDashboard(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error loading products for dashboard: %v", err)
		// Read failures leave the list view empty rather than erroring
		// the whole page.
		products = nil
	}

	state := view.NewState().SetFilter(c.Query("category", view.AllCategories))

	visible := view.Visible(products, state.Filter())
	groups := view.GroupByCategory(visible)

	// Sections follow the first-seen order of the visible subset.
	var sections []categorySection
	rendered := make(map[string]bool)
	for _, p := range visible {
		cat := view.DisplayCategory(p.Category)
		if rendered[cat] {
			continue
		}
		rendered[cat] = true
		rows := make([]productRow, 0, len(groups[cat]))
		for _, gp := range groups[cat] {
			rows = append(rows, productRow{Product: gp, LowStock: view.LowStock(gp)})
		}
		sections = append(sections, categorySection{Category: cat, Products: rows})
	}

	return h.render(c, "list.html", listPage{
		Filter:     state.Filter(),
		Categories: view.Categories(products),
		Sections:   sections,
	})
}

// HandleNewProduct renders an empty add form.
func (h *DashboardHandler) HandleNewProduct(c *fiber.Ctx) error {
	state := view.NewState().
		SetFilter(c.Query("category", view.AllCategories)).
		StartAdd()
	return h.render(c, "form.html", addFormPage(state))
}

// HandleEditProduct renders the edit form pre-populated from the
// selected product.
func (h *DashboardHandler) HandleEditProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error loading product %s for edit: %v", productID, err)
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Product not found")
		}
		return c.Status(fiber.StatusServiceUnavailable).SendString("Storage unavailable")
	}

	state, err := view.NewState().
		SetFilter(c.Query("category", view.AllCategories)).
		StartEdit(*product)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return h.render(c, "form.html", editFormPage(state))
}

type productForm struct {
	Name     string  `form:"name"`
	Price    float64 `form:"price"`
	Quantity int     `form:"quantity"`
	Category string  `form:"category"`
	Filter   string  `form:"filter"`
	Step     string  `form:"step"`
}

func (f productForm) draft() view.Draft {
	return view.Draft{
		Name:     f.Name,
		Price:    f.Price,
		Quantity: f.Quantity,
		Category: f.Category,
	}
}

func (f productForm) filter() string {
	if f.Filter == "" {
		return view.AllCategories
	}
	return f.Filter
}

// HandleCreateForm stores a new product from the submitted form and
// redirects back to the list, keeping the category filter.
func (h *DashboardHandler) HandleCreateForm(c *fiber.Ctx) error {
	var form productForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing create form: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid form submission")
	}

	product := models.Product{
		Name:     form.Name,
		Price:    form.Price,
		Quantity: form.Quantity,
		Category: form.Category,
	}
	if err := h.service.CreateProduct(&product); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return c.Status(fiber.StatusBadRequest).SendString("Validation failed")
		}
		log.Printf("Error creating product from form: %v", err)
		return c.Status(fiber.StatusServiceUnavailable).SendString("Storage unavailable")
	}

	state := view.NewState().SetFilter(form.filter()).StartAdd().Saved()
	return redirectToList(c, state)
}

// HandleUpdateForm replaces a product's fields from the submitted form
// and redirects back to the list, keeping the category filter.
func (h *DashboardHandler) HandleUpdateForm(c *fiber.Ctx) error {
	productID := c.Params("id")

	var form productForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing update form: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid form submission")
	}

	product := models.Product{
		ID:       productID,
		Name:     form.Name,
		Price:    form.Price,
		Quantity: form.Quantity,
		Category: form.Category,
	}
	if err := h.service.UpdateProduct(&product); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return c.Status(fiber.StatusBadRequest).SendString("Validation failed")
		}
		log.Printf("Error updating product %s from form: %v", productID, err)
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Product not found")
		}
		return c.Status(fiber.StatusServiceUnavailable).SendString("Storage unavailable")
	}

	state, err := view.NewState().SetFilter(form.filter()).StartEdit(product)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return redirectToList(c, state.Saved())
}

// HandleStepNewQuantity steps the add form's quantity up or down and
// re-renders it, keeping the rest of the draft.
func (h *DashboardHandler) HandleStepNewQuantity(c *fiber.Ctx) error {
	var form productForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing step form: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid form submission")
	}

	state := view.NewState().
		SetFilter(form.filter()).
		StartAdd().
		WithDraft(stepDraft(form))
	return h.render(c, "form.html", addFormPage(state))
}

// HandleStepEditQuantity steps the edit form's quantity up or down and
// re-renders it, keeping the rest of the draft.
func (h *DashboardHandler) HandleStepEditQuantity(c *fiber.Ctx) error {
	productID := c.Params("id")

	var form productForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing step form: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid form submission")
	}

	state, err := view.NewState().
		SetFilter(form.filter()).
		StartEdit(models.Product{ID: productID})
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	state = state.WithDraft(stepDraft(form))
	return h.render(c, "form.html", editFormPage(state))
}

// HandleDeleteForm removes a product and redirects back to the list.
func (h *DashboardHandler) HandleDeleteForm(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s from form: %v", productID, err)
		return c.Status(fiber.StatusServiceUnavailable).SendString("Storage unavailable")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// stepDraft applies the form's stepper action to its draft. Decrement
// clamps at zero.
func stepDraft(form productForm) view.Draft {
	draft := form.draft()
	switch form.Step {
	case "inc":
		draft.Quantity = view.IncrementQuantity(draft.Quantity)
	case "dec":
		draft.Quantity = view.DecrementQuantity(draft.Quantity)
	}
	return draft
}

func addFormPage(state view.State) formPage {
	return formPage{
		Title:      "Add New Product",
		Action:     "/products",
		StepAction: "/products/new/step",
		Filter:     state.Filter(),
		Draft:      state.Draft(),
	}
}

func editFormPage(state view.State) formPage {
	return formPage{
		Title:      "Update Product",
		Action:     "/products/" + state.EditID(),
		StepAction: "/products/" + state.EditID() + "/edit/step",
		Filter:     state.Filter(),
		Draft:      state.Draft(),
	}
}

func redirectToList(c *fiber.Ctx, state view.State) error {
	if state.Filter() == view.AllCategories {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Redirect("/?category="+url.QueryEscape(state.Filter()), fiber.StatusSeeOther)
}

func (h *DashboardHandler) render(c *fiber.Ctx, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("Error rendering template %s: %v", name, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Template error")
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
