package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pantry/internal/apperror"
	"pantry/internal/models"
	"pantry/internal/repositories"
	"pantry/internal/services"
)

func TestProductService_CreateProduct_DerivesSlug(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	product := &models.Product{Name: "Premium Matcha Powder", Price: 18.50, StockQuantity: 20}
	assert.NoError(t, service.CreateProduct(product))
	assert.Equal(t, "premium-matcha-powder", product.Slug)
	assert.NotEmpty(t, product.ID)

	fetched, err := service.GetProductBySlug("premium-matcha-powder")
	assert.NoError(t, err)
	assert.Equal(t, product.ID, fetched.ID)
}

func TestProductService_CreateProduct_RejectsDuplicates(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	assert.NoError(t, service.CreateProduct(&models.Product{Name: "Soy Sauce", Price: 3.50}))

	err := service.CreateProduct(&models.Product{Name: "Soy Sauce", Price: 4.00})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))

	// A different name that slugifies to the same slug is also rejected.
	err = service.CreateProduct(&models.Product{Name: "Soy  Sauce", Price: 4.00})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestProductService_GetProductBySlug_NotFound(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	_, err := service.GetProductBySlug("missing")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestProductService_SearchProducts(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	assert.NoError(t, service.CreateProduct(&models.Product{Name: "Green Tea Leaves", Price: 12.00}))
	assert.NoError(t, service.CreateProduct(&models.Product{Name: "Jasmine Tea", Price: 9.00}))
	assert.NoError(t, service.CreateProduct(&models.Product{Name: "Rice Crackers", Price: 4.00}))

	results, err := service.SearchProducts("tea")
	assert.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = service.SearchProducts("TEA")
	assert.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = service.SearchProducts("chocolate")
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestProductService_UpdateProduct(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	assert.NoError(t, service.CreateProduct(&models.Product{Name: "Nori Sheets", Price: 4.20, StockQuantity: 10}))

	updated, err := service.UpdateProduct("nori-sheets", &models.Product{Name: "Roasted Nori Sheets", Price: 4.80})
	assert.NoError(t, err)
	assert.Equal(t, "Roasted Nori Sheets", updated.Name)
	assert.Equal(t, "roasted-nori-sheets", updated.Slug)
	assert.Equal(t, 4.80, updated.Price)
	assert.Equal(t, 10, updated.StockQuantity) // untouched by the partial update

	// The old slug no longer resolves.
	_, err = service.GetProductBySlug("nori-sheets")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	_, err = service.UpdateProduct("missing", &models.Product{Name: "Whatever"})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestProductService_DeleteProduct(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	service := services.NewProductService(repo)

	assert.NoError(t, service.CreateProduct(&models.Product{Name: "Sesame Oil", Price: 7.80}))

	assert.NoError(t, service.DeleteProduct("sesame-oil"))

	err := service.DeleteProduct("sesame-oil")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
