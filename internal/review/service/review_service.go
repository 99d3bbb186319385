package service

import (
	"context"
	"errors"

	"github.com/avkrasnov/delivery-store/internal/review/domain"
	"github.com/avkrasnov/delivery-store/internal/review/repository"
)

var ErrInvalidReview = errors.New("review text and rating are required")

const (
	minRating = 1
	maxRating = 5
)

type ReviewService interface {
	AddReview(ctx context.Context, login string, article int64, req domain.AddReviewRequest) error
	ListByArticle(ctx context.Context, article int64) ([]domain.Review, error)
	ListByLogin(ctx context.Context, login string) ([]domain.UserReview, error)
}

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) AddReview(ctx context.Context, login string, article int64, req domain.AddReviewRequest) error {
	if req.Review == "" {
		return ErrInvalidReview
	}
	rating := maxRating
	if req.Rating != nil {
		rating = *req.Rating
	}
	if rating < minRating || rating > maxRating {
		return ErrInvalidReview
	}
	return s.repo.AddReview(ctx, &domain.Review{
		Login:   login,
		Article: article,
		Text:    req.Review,
		Rating:  rating,
	})
}

func (s *reviewService) ListByArticle(ctx context.Context, article int64) ([]domain.Review, error) {
	return s.repo.ListByArticle(ctx, article)
}

func (s *reviewService) ListByLogin(ctx context.Context, login string) ([]domain.UserReview, error) {
	return s.repo.ListByLogin(ctx, login)
}
