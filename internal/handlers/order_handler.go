package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pantry/internal/apperror"
	"pantry/internal/middleware"
	"pantry/internal/models"
	"pantry/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes. Every order route requires an
// authenticated caller; listing all orders and changing status are
// admin-only. /myorders must be registered before /:id.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler, adminOnly fiber.Handler) {
	orderRoutes := router.Group("/orders", auth)
	orderRoutes.Get("/", adminOnly, h.HandleGetOrders)
	orderRoutes.Get("/myorders", h.HandleGetMyOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Patch("/:id/status", adminOnly, h.HandleUpdateOrderStatus)
}

// HandleGetOrders retrieves all orders for the admin view.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"orders": orders})
}

// HandleGetMyOrders retrieves the authenticated caller's orders.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrdersByUser(middleware.CallerID(c))
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order. Admins can fetch any order;
// other callers only their own.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		return err
	}

	if middleware.CallerRole(c) != models.RoleAdmin && order.UserID != middleware.CallerID(c) {
		return apperror.Forbidden("Access forbidden")
	}
	return c.JSON(order)
}

// HandleCreateOrder places a new order for the authenticated caller.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var input services.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.Invalid("Invalid request body")
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrors(err),
		})
	}

	order, err := h.service.CreateOrder(middleware.CallerID(c), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// UpdateOrderStatusRequest represents the request body for a status update.
type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

// HandleUpdateOrderStatus overwrites the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Invalid("Invalid request body")
	}

	if req.Status == "" {
		return apperror.Invalid("Status is required for order status update")
	}

	order, err := h.service.UpdateOrderStatus(c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"order": order})
}
