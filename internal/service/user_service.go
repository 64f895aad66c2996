package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"nc-news-api/internal/domain"
	"nc-news-api/internal/repository"
)

// UserService defines the interface for user business logic
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, username string) (*domain.User, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) UserService {
	return &userServiceImpl{userRepo: userRepo, logger: logger}
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(s.logger, "list users", err)
	}
	return users, nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(domain.EntityKindUser, username)
		}
		return nil, storeFailure(s.logger, "get user", err, zap.String("username", username))
	}
	return user, nil
}
