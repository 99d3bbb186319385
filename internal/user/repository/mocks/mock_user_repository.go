package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avkrasnov/delivery-store/internal/user/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	args := m.Called(ctx, login)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetProfile(ctx context.Context, login string) (*domain.Profile, error) {
	args := m.Called(ctx, login)
	if p := args.Get(0); p != nil {
		return p.(*domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateDescription(ctx context.Context, login, description string) error {
	args := m.Called(ctx, login, description)
	return args.Error(0)
}
