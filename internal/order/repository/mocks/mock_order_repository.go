package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/avkrasnov/delivery-store/internal/order/domain"
	"github.com/avkrasnov/delivery-store/internal/platform/database"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) AppendOrder(ctx context.Context, tx database.DBTX, order *domain.Order, lines []domain.OrderLine) error {
	args := m.Called(ctx, tx, order, lines)
	if order != nil && args.Error(0) == nil {
		order.ID = 1
		order.Lines = lines
	}
	return args.Error(0)
}

func (m *MockOrderRepository) ListOrdersByLogin(ctx context.Context, login string) ([]domain.Order, error) {
	args := m.Called(ctx, login)
	if orders := args.Get(0); orders != nil {
		return orders.([]domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetOrderLines(ctx context.Context, orderID int64) ([]domain.OrderLine, error) {
	args := m.Called(ctx, orderID)
	if lines := args.Get(0); lines != nil {
		return lines.([]domain.OrderLine), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) CountPendingOlderThan(ctx context.Context, age time.Duration) (int, error) {
	args := m.Called(ctx, age)
	return args.Int(0), args.Error(1)
}
