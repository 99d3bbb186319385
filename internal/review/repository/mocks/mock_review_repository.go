package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avkrasnov/delivery-store/internal/review/domain"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) AddReview(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) ListByArticle(ctx context.Context, article int64) ([]domain.Review, error) {
	args := m.Called(ctx, article)
	if reviews := args.Get(0); reviews != nil {
		return reviews.([]domain.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviewRepository) ListByLogin(ctx context.Context, login string) ([]domain.UserReview, error) {
	args := m.Called(ctx, login)
	if reviews := args.Get(0); reviews != nil {
		return reviews.([]domain.UserReview), args.Error(1)
	}
	return nil, args.Error(1)
}
