package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avkrasnov/delivery-store/internal/cart/domain"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Add(ctx context.Context, login string, article int64, quantity int) error {
	args := m.Called(ctx, login, article, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) ListByLogin(ctx context.Context, login string) ([]domain.CartLine, error) {
	args := m.Called(ctx, login)
	if lines := args.Get(0); lines != nil {
		return lines.([]domain.CartLine), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepository) Remove(ctx context.Context, login string, article int64) error {
	args := m.Called(ctx, login, article)
	return args.Error(0)
}
