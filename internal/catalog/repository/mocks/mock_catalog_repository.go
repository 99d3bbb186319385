package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avkrasnov/delivery-store/internal/catalog/domain"
	"github.com/avkrasnov/delivery-store/internal/platform/database"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if cats := args.Get(0); cats != nil {
		return cats.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if products := args.Get(0); products != nil {
		return products.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) GetProduct(ctx context.Context, article int64) (*domain.Product, error) {
	args := m.Called(ctx, article)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) GetStockForUpdate(ctx context.Context, tx database.DBTX, article int64) (int, error) {
	args := m.Called(ctx, tx, article)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogRepository) DecrementStock(ctx context.Context, tx database.DBTX, article int64, quantity int) error {
	args := m.Called(ctx, tx, article, quantity)
	return args.Error(0)
}
