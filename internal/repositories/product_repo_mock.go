package repositories

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"pantry/internal/apperror"
	"pantry/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, apperror.NotFound("Product %s not found", id)
	}
	return &product, nil
}

// GetBySlug returns a product by its slug.
func (r *MockProductRepository) GetBySlug(slug string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Slug == slug {
			product := p
			return &product, nil
		}
	}
	return nil, apperror.NotFound("Product not found")
}

// ExistsByNameOrSlug reports whether a product with the name or slug exists.
func (r *MockProductRepository) ExistsByNameOrSlug(name, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Name == name || p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

// Search returns products whose name contains the keyword, case-insensitively.
func (r *MockProductRepository) Search(keyword string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(keyword)
	var results []models.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			results = append(results, p)
		}
	}
	return results, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return apperror.NotFound("Product not found")
	}
	r.products[product.ID] = *product
	return nil
}

// DeleteBySlug removes a product by its slug.
func (r *MockProductRepository) DeleteBySlug(slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.products {
		if p.Slug == slug {
			delete(r.products, id)
			return nil
		}
	}
	return apperror.NotFound("Product not found")
}

// Count returns the number of products.
func (r *MockProductRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.products)), nil
}
