package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/avkrasnov/delivery-store/internal/auth"
	"github.com/avkrasnov/delivery-store/internal/user/domain"
	"github.com/avkrasnov/delivery-store/internal/user/repository"
	"github.com/avkrasnov/delivery-store/internal/user/repository/mocks"
)

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	assert.NoError(t, err)
	storedUser := &domain.User{Login: "ivan", PasswordHash: string(hash)}

	t.Run("successful login returns usable token", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("GetUserByLogin", ctx, "ivan").Return(storedUser, nil).Once()
		svc := NewUserService(mockRepo)

		resp, err := svc.Login(ctx, domain.LoginRequest{Username: "ivan", Password: "correct-horse"})

		assert.NoError(t, err)
		assert.Equal(t, "ivan", resp.Login)
		login, err := auth.ParseToken(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, "ivan", login)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("GetUserByLogin", ctx, "ivan").Return(storedUser, nil).Once()
		svc := NewUserService(mockRepo)

		resp, err := svc.Login(ctx, domain.LoginRequest{Username: "ivan", Password: "wrong"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("GetUserByLogin", ctx, "ghost").Return(nil, repository.ErrUserNotFound).Once()
		svc := NewUserService(mockRepo)

		resp, err := svc.Login(ctx, domain.LoginRequest{Username: "ghost", Password: "whatever"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("repository error does not leak", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("GetUserByLogin", ctx, "ivan").Return(nil, errors.New("connection refused")).Once()
		svc := NewUserService(mockRepo)

		resp, err := svc.Login(ctx, domain.LoginRequest{Username: "ivan", Password: "correct-horse"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_Profile(t *testing.T) {
	ctx := context.Background()

	t.Run("get profile", func(t *testing.T) {
		desc := "likes fast delivery"
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("GetProfile", ctx, "ivan").Return(&domain.Profile{Login: "ivan", Name: "Ivan", Description: &desc}, nil).Once()
		svc := NewUserService(mockRepo)

		p, err := svc.GetProfile(ctx, "ivan")
		assert.NoError(t, err)
		assert.Equal(t, "Ivan", p.Name)
		assert.Equal(t, &desc, p.Description)
	})

	t.Run("update description", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("UpdateDescription", ctx, "ivan", "new text").Return(nil).Once()
		svc := NewUserService(mockRepo)

		assert.NoError(t, svc.UpdateDescription(ctx, "ivan", "new text"))
		mockRepo.AssertExpectations(t)
	})
}
