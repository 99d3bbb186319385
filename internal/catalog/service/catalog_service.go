package service

import (
	"context"

	"github.com/avkrasnov/delivery-store/internal/catalog/domain"
	"github.com/avkrasnov/delivery-store/internal/catalog/repository"
	"github.com/avkrasnov/delivery-store/internal/platform/cache"
)

const (
	keyCategories    = "catalog:categories"
	keyProductsAll   = "catalog:products"
	keyProductsByCat = "catalog:products:" // + category label
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]string, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProductDetails(ctx context.Context, article int64) (*domain.Product, error)
}

type catalogService struct {
	repo  repository.CatalogRepository
	cache *cache.Cache
}

// NewCatalogService wraps the repository with a read-through listing cache.
// listingCache may be nil.
func NewCatalogService(repo repository.CatalogRepository, listingCache *cache.Cache) CatalogService {
	return &catalogService{repo: repo, cache: listingCache}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	var cached []string
	if s.cache.GetJSON(ctx, keyCategories, &cached) {
		return cached, nil
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, keyCategories, categories)
	return categories, nil
}

func (s *catalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	key := keyProductsAll
	if filter.Category != "" {
		key = keyProductsByCat + filter.Category
	}
	var cached []domain.Product
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}
	products, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, key, products)
	return products, nil
}

// GetProductDetails goes straight to the store: product detail includes the
// live stock count, which must not be served stale.
func (s *catalogService) GetProductDetails(ctx context.Context, article int64) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, article)
}
