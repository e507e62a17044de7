package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pantry/internal/apperror"
	"pantry/internal/models"
	"pantry/internal/services"
)

// ProductHandler handles HTTP requests for catalog products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes. Reads are public; writes
// are admin-only. /search must be registered before /:slug.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler, adminOnly fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/:slug", h.HandleGetProduct)
	productRoutes.Post("/", auth, adminOnly, h.HandleCreateProduct)
	productRoutes.Patch("/:slug", auth, adminOnly, h.HandleUpdateProduct)
	productRoutes.Delete("/:slug", auth, adminOnly, h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"products": products})
}

// HandleSearchProducts retrieves products matching a keyword.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	products, err := h.service.SearchProducts(c.Query("keyword"))
	if err != nil {
		return err
	}
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(products)
}

// HandleGetProduct retrieves a single product by its slug.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProductBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return apperror.Invalid("Invalid request body")
	}

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrors(err),
		})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates a product by its slug.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var updated models.Product
	if err := c.BodyParser(&updated); err != nil {
		return apperror.Invalid("Invalid request body")
	}

	product, err := h.service.UpdateProduct(c.Params("slug"), &updated)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"product": product})
}

// HandleDeleteProduct deletes a product by its slug.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("slug")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Product successfully deleted"})
}
