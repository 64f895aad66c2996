package repository

import (
	"context"

	"gorm.io/gorm"

	"nc-news-api/internal/domain"
)

// TopicRepository defines the interface for topic data access
type TopicRepository interface {
	FindAll(ctx context.Context) ([]domain.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
}

type topicRepositoryImpl struct {
	db *gorm.DB
}

// NewTopicRepository creates a new instance of TopicRepository
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepositoryImpl{db: db}
}

func (r *topicRepositoryImpl) FindAll(ctx context.Context) ([]domain.Topic, error) {
	topics := make([]domain.Topic, 0)
	if err := r.db.WithContext(ctx).Order("slug ASC").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepositoryImpl) Exists(ctx context.Context, slug string) (bool, error) {
	return exists(r.db.WithContext(ctx), &domain.Topic{}, "slug", slug)
}
