package service

import (
	"context"
	"errors"

	"github.com/avkrasnov/delivery-store/internal/cart/domain"
	"github.com/avkrasnov/delivery-store/internal/cart/repository"
)

var ErrInvalidCartLine = errors.New("article and a positive quantity are required")

type CartService interface {
	Add(ctx context.Context, login string, req domain.AddToCartRequest) error
	List(ctx context.Context, login string) ([]domain.CartLine, error)
	Remove(ctx context.Context, login string, article int64) error
}

type cartService struct {
	repo repository.CartRepository
}

func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

func (s *cartService) Add(ctx context.Context, login string, req domain.AddToCartRequest) error {
	if req.Article == nil || *req.Article <= 0 || req.Quantity == nil || *req.Quantity <= 0 {
		return ErrInvalidCartLine
	}
	return s.repo.Add(ctx, login, *req.Article, *req.Quantity)
}

func (s *cartService) List(ctx context.Context, login string) ([]domain.CartLine, error) {
	return s.repo.ListByLogin(ctx, login)
}

func (s *cartService) Remove(ctx context.Context, login string, article int64) error {
	return s.repo.Remove(ctx, login, article)
}
