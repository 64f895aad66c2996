package service

import (
	"context"

	"go.uber.org/zap"

	"nc-news-api/internal/domain"
	"nc-news-api/internal/repository"
)

// TopicService defines the interface for topic business logic
type TopicService interface {
	ListTopics(ctx context.Context) ([]domain.Topic, error)
}

type topicServiceImpl struct {
	topicRepo repository.TopicRepository
	logger    *zap.Logger
}

// NewTopicService creates a new instance of TopicService
func NewTopicService(topicRepo repository.TopicRepository, logger *zap.Logger) TopicService {
	return &topicServiceImpl{topicRepo: topicRepo, logger: logger}
}

func (s *topicServiceImpl) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	topics, err := s.topicRepo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(s.logger, "list topics", err)
	}
	return topics, nil
}
