package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nc-news-api/internal/domain"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByArticleID(ctx context.Context, articleID int64) ([]domain.Comment, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error
}

// FindByArticleID returns the article's comments, newest first
func (r *commentRepositoryImpl) FindByArticleID(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	comments := make([]domain.Comment, 0)
	if err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Order("comment_id DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete returns gorm.ErrRecordNotFound when no comment matches
func (r *commentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("comment_id = ?", id).Delete(&domain.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepositoryImpl) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(r.db.WithContext(ctx), &domain.Comment{}, "comment_id", id)
}

func (r *commentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Comment{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
