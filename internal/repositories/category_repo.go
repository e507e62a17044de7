package repositories

import "pantry/internal/models"

// CategoryRepository defines the interface for catalog category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	ExistsByNameOrSlug(name, slug string) (bool, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	DeleteBySlug(slug string) error
	Count() (int64, error)
}
