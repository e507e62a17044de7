package repositories

import "pantry/internal/models"

// ProductRepository defines the interface for catalog product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	ExistsByNameOrSlug(name, slug string) (bool, error)
	Search(keyword string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	DeleteBySlug(slug string) error
	Count() (int64, error)
}
