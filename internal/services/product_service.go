package services

import (
	"github.com/gosimple/slug"

	"pantry/internal/apperror"
	"pantry/internal/models"
	"pantry/internal/repositories"
)

// ProductService handles business logic related to catalog products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductBySlug retrieves a single product by its slug.
func (s *ProductService) GetProductBySlug(productSlug string) (*models.Product, error) {
	return s.repo.GetBySlug(productSlug)
}

// SearchProducts retrieves products whose name matches the keyword,
// case-insensitively.
func (s *ProductService) SearchProducts(keyword string) ([]models.Product, error) {
	return s.repo.Search(keyword)
}

// CreateProduct derives the slug from the product name and persists the
// product, rejecting duplicates by name or slug.
func (s *ProductService) CreateProduct(product *models.Product) error {
	product.Slug = slug.Make(product.Name)

	exists, err := s.repo.ExistsByNameOrSlug(product.Name, product.Slug)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Conflict("Product with the same name or slug already exists")
	}
	return s.repo.Create(product)
}

// UpdateProduct updates the product stored under the given slug. Zero
// valued fields are left unchanged, except isFeatured which is always
// taken from the payload. A name change re-derives the slug.
func (s *ProductService) UpdateProduct(productSlug string, updated *models.Product) (*models.Product, error) {
	existing, err := s.repo.GetBySlug(productSlug)
	if err != nil {
		return nil, err
	}

	if updated.Name != "" && updated.Name != existing.Name {
		existing.Name = updated.Name
		existing.Slug = slug.Make(updated.Name)
	}
	if updated.Description != "" {
		existing.Description = updated.Description
	}
	if updated.Price > 0 {
		existing.Price = updated.Price
	}
	if updated.StockQuantity > 0 {
		existing.StockQuantity = updated.StockQuantity
	}
	if updated.ImageURL != "" {
		existing.ImageURL = updated.ImageURL
	}
	if updated.CategoryID != "" {
		existing.CategoryID = updated.CategoryID
	}
	existing.IsFeatured = updated.IsFeatured

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteProduct deletes a product by its slug.
func (s *ProductService) DeleteProduct(productSlug string) error {
	return s.repo.DeleteBySlug(productSlug)
}
