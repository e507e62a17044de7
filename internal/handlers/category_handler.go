package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pantry/internal/apperror"
	"pantry/internal/models"
	"pantry/internal/services"
)

// CategoryHandler handles HTTP requests for catalog categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes. Listing is public; writes
// are admin-only.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler, adminOnly fiber.Handler) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Post("/", auth, adminOnly, h.HandleCreateCategory)
	categoryRoutes.Patch("/:slug", auth, adminOnly, h.HandleUpdateCategory)
	categoryRoutes.Delete("/:slug", auth, adminOnly, h.HandleDeleteCategory)
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return apperror.Invalid("Invalid request body")
	}

	if err := h.validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrors(err),
		})
	}

	if err := h.service.CreateCategory(&category); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategoryRequest represents the request body for a category update.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// HandleUpdateCategory renames a category by its slug.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	var req UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Invalid("Invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrors(err),
		})
	}

	category, err := h.service.UpdateCategory(c.Params("slug"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"category": category})
}

// HandleDeleteCategory deletes a category by its slug.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Params("slug")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Category successfully deleted"})
}
