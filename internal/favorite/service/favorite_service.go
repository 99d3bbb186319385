package service

import (
	"context"

	"github.com/avkrasnov/delivery-store/internal/favorite/domain"
	"github.com/avkrasnov/delivery-store/internal/favorite/repository"
)

type FavoriteService interface {
	Add(ctx context.Context, login string, article int64) error
	List(ctx context.Context, login string) ([]domain.FavoriteProduct, error)
	ListEntries(ctx context.Context, login string) ([]domain.FavoriteEntry, error)
	Remove(ctx context.Context, login string, article int64) error
}

type favoriteService struct {
	repo repository.FavoriteRepository
}

func NewFavoriteService(repo repository.FavoriteRepository) FavoriteService {
	return &favoriteService{repo: repo}
}

func (s *favoriteService) Add(ctx context.Context, login string, article int64) error {
	return s.repo.Add(ctx, login, article)
}

func (s *favoriteService) List(ctx context.Context, login string) ([]domain.FavoriteProduct, error) {
	return s.repo.ListByLogin(ctx, login)
}

func (s *favoriteService) ListEntries(ctx context.Context, login string) ([]domain.FavoriteEntry, error) {
	return s.repo.ListEntriesByLogin(ctx, login)
}

func (s *favoriteService) Remove(ctx context.Context, login string, article int64) error {
	return s.repo.Remove(ctx, login, article)
}
