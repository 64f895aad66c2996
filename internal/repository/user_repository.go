package repository

import (
	"context"

	"gorm.io/gorm"

	"nc-news-api/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}

type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) FindAll(ctx context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0)
	if err := r.db.WithContext(ctx).Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByUsername returns gorm.ErrRecordNotFound when no user matches
func (r *userRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepositoryImpl) Exists(ctx context.Context, username string) (bool, error) {
	return exists(r.db.WithContext(ctx), &domain.User{}, "username", username)
}
