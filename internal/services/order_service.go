package services

import (
	"encoding/json"
	"log"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"pantry/internal/apperror"
	"pantry/internal/models"
	"pantry/internal/repositories"
)

// EventPublisher publishes order lifecycle events. Implemented by the
// rabbitmq client; a nil publisher is tolerated so tests and degraded
// deployments work without a broker.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderItemInput is a single cart line in an order creation request.
type OrderItemInput struct {
	ProductID string `json:"product" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderInput is the payload for placing an order. Unit prices are
// never accepted from the client; they are resolved from the catalog.
type CreateOrderInput struct {
	Items           []OrderItemInput       `json:"orderItems" validate:"required,min=1,dive"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   models.PaymentMethod   `json:"paymentMethod" validate:"required"`
	Phone           string                 `json:"phone" validate:"required"`
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher

	// strict gates status transitions on the forward flow. Off by
	// default: the observed behavior accepts any status from any state,
	// which doubles as a manual override for admins.
	strict bool
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// SetStrictTransitions toggles enforcement of the
// Pending->Processing->Shipped->Delivered flow (plus cancellation from
// any non-terminal state) on status updates.
func (s *OrderService) SetStrictTransitions(strict bool) {
	s.strict = strict
}

// GetAllOrders retrieves all orders, newest first, with user and product
// details attached.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersByUser retrieves the orders belonging to a single user.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// GetOrderByID retrieves a single order. A malformed id is reported as
// invalid input, distinct from an order that does not exist.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.Invalid("Invalid order id format: %s", id)
	}
	return s.orderRepo.GetByID(id)
}

// CreateOrder validates the cart, resolves unit prices from the catalog,
// computes the total and persists the order with status Pending. All
// validation happens before any write: an empty cart or an unknown
// product fails the whole operation with nothing persisted.
func (s *OrderService) CreateOrder(userID string, input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.Invalid("Order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.ProductID == "" {
			return nil, apperror.Invalid("Order item is missing a product reference")
		}
		if item.Quantity <= 0 {
			return nil, apperror.Invalid("Order item quantity must be a positive integer")
		}
	}
	if !input.PaymentMethod.IsValid() {
		return nil, apperror.Invalid("Invalid payment method: %s", input.PaymentMethod)
	}
	if input.ShippingAddress.Address == "" || input.ShippingAddress.City == "" ||
		input.ShippingAddress.State == "" || input.ShippingAddress.Postcode == "" {
		return nil, apperror.Invalid("Shipping address requires address, city, state and postcode")
	}
	if !isDigits(input.Phone) {
		return nil, apperror.Invalid("Phone must contain digits only")
	}

	// The per-item lookups are independent, so issue them concurrently
	// and join before pricing. Any missing product fails the whole order.
	products := make([]*models.Product, len(input.Items))
	var g errgroup.Group
	for i, item := range input.Items {
		i, item := i, item
		g.Go(func() error {
			product, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			products[i] = product
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Capture unit prices as a point-in-time snapshot. TotalPrice is
	// rounded half-up on the cent boundary and never recomputed.
	items := make([]models.OrderItem, len(input.Items))
	total := decimal.Zero
	for i, item := range input.Items {
		unitPrice := decimal.NewFromFloat(products[i].Price)
		items[i] = models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: products[i].Price,
		}
		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order := &models.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           items,
		TotalPrice:      total.Round(2).InexactFloat64(),
		Status:          models.OrderPending,
		PaymentMethod:   input.PaymentMethod,
		ShippingAddress: input.ShippingAddress,
		Phone:           input.Phone,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.publishEvent("order.created", map[string]interface{}{
		"orderId": order.ID,
		"userId":  order.UserID,
		"status":  order.Status,
		"total":   order.TotalPrice,
	})

	return order, nil
}

// UpdateOrderStatus overwrites the status of an existing order. Only the
// status changes; items, total and user association stay untouched.
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.Invalid("Invalid order id format: %s", id)
	}
	if !status.IsValid() {
		return nil, apperror.Invalid("Invalid order status: %s", status)
	}

	if s.strict {
		current, err := s.orderRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransitionTo(status) {
			return nil, apperror.Invalid("Cannot transition order from %s to %s", current.Status, status)
		}
	}

	order, err := s.orderRepo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}

	s.publishEvent("order.status_changed", map[string]interface{}{
		"orderId": order.ID,
		"status":  order.Status,
	})

	return order, nil
}

// TotalRevenue returns the sum of TotalPrice over delivered orders,
// recomputed from the store on every call.
func (s *OrderService) TotalRevenue() (float64, error) {
	return s.orderRepo.TotalRevenue()
}

// publishEvent sends an order lifecycle event. Publishing failures are
// logged and never fail the request.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish("order", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}

// isDigits reports whether v is non-empty and contains only digit runes.
func isDigits(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
