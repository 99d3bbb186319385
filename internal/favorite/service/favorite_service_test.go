package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avkrasnov/delivery-store/internal/favorite/domain"
	"github.com/avkrasnov/delivery-store/internal/favorite/repository"
	"github.com/avkrasnov/delivery-store/internal/favorite/repository/mocks"
)

func TestFavoriteService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("new favorite", func(t *testing.T) {
		mockRepo := new(mocks.MockFavoriteRepository)
		mockRepo.On("Add", ctx, "ivan", int64(1001)).Return(nil).Once()
		svc := NewFavoriteService(mockRepo)

		assert.NoError(t, svc.Add(ctx, "ivan", 1001))
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate surfaces sentinel", func(t *testing.T) {
		mockRepo := new(mocks.MockFavoriteRepository)
		mockRepo.On("Add", ctx, "ivan", int64(1001)).Return(repository.ErrAlreadyFavorite).Once()
		svc := NewFavoriteService(mockRepo)

		assert.ErrorIs(t, svc.Add(ctx, "ivan", 1001), repository.ErrAlreadyFavorite)
	})

	t.Run("unknown article surfaces sentinel", func(t *testing.T) {
		mockRepo := new(mocks.MockFavoriteRepository)
		mockRepo.On("Add", ctx, "ivan", int64(9999)).Return(repository.ErrUnknownArticle).Once()
		svc := NewFavoriteService(mockRepo)

		assert.ErrorIs(t, svc.Add(ctx, "ivan", 9999), repository.ErrUnknownArticle)
	})
}

func TestFavoriteService_List(t *testing.T) {
	ctx := context.Background()
	expected := []domain.FavoriteProduct{{Article: 1001, Name: "Bread", Price: 3.5, Category: "Bakery"}}

	mockRepo := new(mocks.MockFavoriteRepository)
	mockRepo.On("ListByLogin", ctx, "ivan").Return(expected, nil).Once()
	svc := NewFavoriteService(mockRepo)

	favorites, err := svc.List(ctx, "ivan")
	assert.NoError(t, err)
	assert.Equal(t, expected, favorites)
	mockRepo.AssertExpectations(t)
}

func TestFavoriteService_ListEntries(t *testing.T) {
	ctx := context.Background()
	added := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	expected := []domain.FavoriteEntry{{ProductName: "Bread", Article: 1001, AddedDate: added}}

	mockRepo := new(mocks.MockFavoriteRepository)
	mockRepo.On("ListEntriesByLogin", ctx, "ivan").Return(expected, nil).Once()
	svc := NewFavoriteService(mockRepo)

	entries, err := svc.ListEntries(ctx, "ivan")
	assert.NoError(t, err)
	assert.Equal(t, expected, entries)
	mockRepo.AssertExpectations(t)
}

func TestFavoriteService_Remove(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(mocks.MockFavoriteRepository)
	mockRepo.On("Remove", ctx, "ivan", int64(1001)).Return(nil).Once()
	svc := NewFavoriteService(mockRepo)

	assert.NoError(t, svc.Remove(ctx, "ivan", 1001))
	mockRepo.AssertExpectations(t)
}
