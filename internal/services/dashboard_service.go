package services

import "pantry/internal/repositories"

// DashboardSummary is the aggregate view returned to admins. Revenue only
// counts delivered orders.
type DashboardSummary struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrder    int64   `json:"totalOrder"`
	TotalProduct  int64   `json:"totalProduct"`
	TotalCategory int64   `json:"totalCategory"`
	TotalUser     int64   `json:"totalUser"`
}

// DashboardService computes admin summary aggregates. Every call reads
// through to the store; there is no cached state to invalidate.
type DashboardService struct {
	orderRepo    repositories.OrderRepository
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	userRepo     repositories.UserRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	userRepo repositories.UserRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

// Summary computes the dashboard aggregates.
func (s *DashboardService) Summary() (*DashboardSummary, error) {
	revenue, err := s.orderRepo.TotalRevenue()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.Count()
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.Count()
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TotalRevenue:  revenue,
		TotalOrder:    orders,
		TotalProduct:  products,
		TotalCategory: categories,
		TotalUser:     users,
	}, nil
}
