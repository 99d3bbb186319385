package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/avkrasnov/delivery-store/internal/cart/domain"
	"github.com/avkrasnov/delivery-store/internal/cart/repository/mocks"
)

func TestCartService_Add(t *testing.T) {
	ctx := context.Background()
	article := int64(1001)
	qty := 2

	t.Run("valid line", func(t *testing.T) {
		mockRepo := new(mocks.MockCartRepository)
		mockRepo.On("Add", ctx, "ivan", article, qty).Return(nil).Once()
		svc := NewCartService(mockRepo)

		err := svc.Add(ctx, "ivan", domain.AddToCartRequest{Article: &article, Quantity: &qty})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockCartRepository)
		svc := NewCartService(mockRepo)

		assert.ErrorIs(t, svc.Add(ctx, "ivan", domain.AddToCartRequest{Article: &article}), ErrInvalidCartLine)
		assert.ErrorIs(t, svc.Add(ctx, "ivan", domain.AddToCartRequest{Quantity: &qty}), ErrInvalidCartLine)
		mockRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		zero := 0
		mockRepo := new(mocks.MockCartRepository)
		svc := NewCartService(mockRepo)

		err := svc.Add(ctx, "ivan", domain.AddToCartRequest{Article: &article, Quantity: &zero})
		assert.ErrorIs(t, err, ErrInvalidCartLine)
	})
}

func TestCartService_List(t *testing.T) {
	ctx := context.Background()
	expected := []domain.CartLine{{Article: 1001, Name: "Bread", Price: 3.5, Quantity: 2}}

	mockRepo := new(mocks.MockCartRepository)
	mockRepo.On("ListByLogin", ctx, "ivan").Return(expected, nil).Once()
	svc := NewCartService(mockRepo)

	lines, err := svc.List(ctx, "ivan")
	assert.NoError(t, err)
	assert.Equal(t, expected, lines)
}
