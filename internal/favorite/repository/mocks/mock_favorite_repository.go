package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avkrasnov/delivery-store/internal/favorite/domain"
)

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, login string, article int64) error {
	args := m.Called(ctx, login, article)
	return args.Error(0)
}

func (m *MockFavoriteRepository) ListByLogin(ctx context.Context, login string) ([]domain.FavoriteProduct, error) {
	args := m.Called(ctx, login)
	if favorites := args.Get(0); favorites != nil {
		return favorites.([]domain.FavoriteProduct), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFavoriteRepository) ListEntriesByLogin(ctx context.Context, login string) ([]domain.FavoriteEntry, error) {
	args := m.Called(ctx, login)
	if entries := args.Get(0); entries != nil {
		return entries.([]domain.FavoriteEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, login string, article int64) error {
	args := m.Called(ctx, login, article)
	return args.Error(0)
}
