package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/avkrasnov/delivery-store/internal/auth"
	"github.com/avkrasnov/delivery-store/internal/platform/logger"
	"github.com/avkrasnov/delivery-store/internal/user/domain"
	"github.com/avkrasnov/delivery-store/internal/user/repository"
)

var ErrInvalidCredentials = errors.New("invalid login or password")

type UserService interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
	GetProfile(ctx context.Context, login string) (*domain.Profile, error)
	UpdateDescription(ctx context.Context, login, description string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	req.Username = strings.TrimSpace(req.Username)

	user, err := s.repo.GetUserByLogin(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		logger.Error("Login: failed to get user by login", err)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.IssueToken(user.Login)
	if err != nil {
		logger.Error("Login: failed to sign token", err)
		return nil, fmt.Errorf("could not generate token: %w", err)
	}

	return &domain.LoginResponse{
		Message: "Login successful: user=" + user.Login,
		Login:   user.Login,
		Token:   token,
	}, nil
}

func (s *userService) GetProfile(ctx context.Context, login string) (*domain.Profile, error) {
	return s.repo.GetProfile(ctx, login)
}

func (s *userService) UpdateDescription(ctx context.Context, login, description string) error {
	return s.repo.UpdateDescription(ctx, login, description)
}
