package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

// IsValid reports whether s is a member of the status enum.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions leave s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// orderFlow is the forward path; Cancelled is reachable from any
// non-terminal state.
var orderFlow = map[OrderStatus]OrderStatus{
	OrderPending:    OrderProcessing,
	OrderProcessing: OrderShipped,
	OrderShipped:    OrderDelivered,
}

// CanTransitionTo reports whether moving from s to next follows the
// forward flow. Only consulted when strict transitions are enabled;
// the default behavior accepts any valid status from any state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.IsValid() {
		return false
	}
	if next == OrderCancelled {
		return !s.IsTerminal()
	}
	return orderFlow[s] == next
}

// PaymentMethod is the payment option selected at checkout.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "CreditCard"
	PaymentPayPal     PaymentMethod = "PayPal"
	PaymentStripe     PaymentMethod = "Stripe"
)

// IsValid reports whether m is a member of the payment enum.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCreditCard, PaymentPayPal, PaymentStripe:
		return true
	}
	return false
}

// ShippingAddress is the delivery address captured on an order.
// All fields are required at creation and immutable afterwards.
type ShippingAddress struct {
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	Postcode string `json:"postcode" validate:"required"`
}

// OrderItem is a single line of an order. UnitPrice is the product price
// captured at order time; later catalog price changes never touch it.
type OrderItem struct {
	ID        uint     `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string   `json:"-" gorm:"type:varchar(36);index"`
	ProductID string   `json:"productId" gorm:"type:varchar(36)"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int      `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64  `json:"unitPrice"`
}

// Order represents a customer order. Items and TotalPrice are set once at
// creation; only Status changes afterwards, and orders are never deleted.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID          string          `json:"userId" gorm:"type:varchar(36);index"`
	User            *User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items           []OrderItem     `json:"orderItems" gorm:"foreignKey:OrderID"`
	TotalPrice      float64         `json:"totalPrice"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(16);default:Pending"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod" gorm:"type:varchar(16)"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:shipping_"`
	Phone           string          `json:"phone" gorm:"type:varchar(32)"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
