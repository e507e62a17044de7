package repositories

import "pantry/internal/models"

// OrderRepository defines the interface for order data access.
// There is deliberately no Delete: orders are historical records.
type OrderRepository interface {
	Create(order *models.Order) error
	// GetAll returns every order, newest first, with the user and each
	// item's product attached for display.
	GetAll() ([]models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	UpdateStatus(id string, status models.OrderStatus) (*models.Order, error)
	Count() (int64, error)
	// TotalRevenue sums TotalPrice over delivered orders. Recomputed on
	// every call; there is no cached aggregate to invalidate.
	TotalRevenue() (float64, error)
}
