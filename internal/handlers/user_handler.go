package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pantry/internal/middleware"
	"pantry/internal/services"
)

// UserHandler handles HTTP requests for the user directory.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterRoutes registers the user routes. /me must come before any
// parameterized sibling a later change might add.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler, adminOnly fiber.Handler) {
	userRoutes := router.Group("/users", auth)
	userRoutes.Get("/", adminOnly, h.HandleGetUsers)
	userRoutes.Get("/me", h.HandleGetMe)
}

// HandleGetUsers retrieves all users, newest first.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// HandleGetMe retrieves the authenticated caller's record.
func (h *UserHandler) HandleGetMe(c *fiber.Ctx) error {
	user, err := h.service.GetUserByID(middleware.CallerID(c))
	if err != nil {
		return err
	}
	return c.JSON(user)
}
