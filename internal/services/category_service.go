package services

import (
	"github.com/gosimple/slug"

	"pantry/internal/apperror"
	"pantry/internal/models"
	"pantry/internal/repositories"
)

// CategoryService handles business logic related to catalog categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// CreateCategory derives the slug from the category name and persists it,
// rejecting duplicates by name or slug.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	category.Slug = slug.Make(category.Name)

	exists, err := s.repo.ExistsByNameOrSlug(category.Name, category.Slug)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Conflict("Category with the same name or slug already exists")
	}
	return s.repo.Create(category)
}

// UpdateCategory renames the category stored under the given slug and
// re-derives its slug.
func (s *CategoryService) UpdateCategory(categorySlug, newName string) (*models.Category, error) {
	existing, err := s.repo.GetBySlug(categorySlug)
	if err != nil {
		return nil, err
	}

	if newName != "" && newName != existing.Name {
		existing.Name = newName
		existing.Slug = slug.Make(newName)
	}
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteCategory deletes a category by its slug.
func (s *CategoryService) DeleteCategory(categorySlug string) error {
	return s.repo.DeleteBySlug(categorySlug)
}
