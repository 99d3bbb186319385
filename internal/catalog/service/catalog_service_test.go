package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avkrasnov/delivery-store/internal/catalog/domain"
	"github.com/avkrasnov/delivery-store/internal/catalog/repository"
	"github.com/avkrasnov/delivery-store/internal/catalog/repository/mocks"
)

func TestCatalogService_ListCategories(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.MockCatalogRepository)
	mockRepo.On("ListCategories", ctx).Return([]string{"bakery", "dairy"}, nil).Once()

	// nil cache: every call goes to the repository
	svc := NewCatalogService(mockRepo, nil)

	categories, err := svc.ListCategories(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"bakery", "dairy"}, categories)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.Background()
	expected := []domain.Product{{Article: 1001, Name: "Bread", Price: 3.5, Stock: 100, Released: true}}

	t.Run("unfiltered", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		mockRepo.On("ListProducts", ctx, domain.ProductFilter{}).Return(expected, nil).Once()
		svc := NewCatalogService(mockRepo, nil)

		products, err := svc.ListProducts(ctx, domain.ProductFilter{})
		assert.NoError(t, err)
		assert.Equal(t, expected, products)
	})

	t.Run("by category", func(t *testing.T) {
		filter := domain.ProductFilter{Category: "bakery"}
		mockRepo := new(mocks.MockCatalogRepository)
		mockRepo.On("ListProducts", ctx, filter).Return(expected, nil).Once()
		svc := NewCatalogService(mockRepo, nil)

		products, err := svc.ListProducts(ctx, filter)
		assert.NoError(t, err)
		assert.Equal(t, expected, products)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_GetProductDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		mockRepo.On("GetProduct", ctx, int64(1001)).Return(&domain.Product{Article: 1001, Name: "Bread"}, nil).Once()
		svc := NewCatalogService(mockRepo, nil)

		p, err := svc.GetProductDetails(ctx, 1001)
		assert.NoError(t, err)
		assert.Equal(t, int64(1001), p.Article)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mocks.MockCatalogRepository)
		mockRepo.On("GetProduct", ctx, int64(9999)).Return(nil, repository.ErrProductNotFound).Once()
		svc := NewCatalogService(mockRepo, nil)

		p, err := svc.GetProductDetails(ctx, 9999)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})
}
