package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pantry/internal/services"
)

// DashboardHandler serves the admin summary endpoint.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// RegisterRoutes registers the dashboard routes, all admin-only.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler, adminOnly fiber.Handler) {
	dashboardRoutes := router.Group("/dashboard", auth, adminOnly)
	dashboardRoutes.Get("/summary", h.HandleSummary)
}

// HandleSummary returns aggregate counts and revenue for the admin view.
func (h *DashboardHandler) HandleSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary()
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
