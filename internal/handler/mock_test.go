package handler

import (
	"context"

	"nc-news-api/internal/domain"
	"nc-news-api/internal/dto"
	"nc-news-api/internal/query"
)

// MockTopicService is a mock implementation of TopicService
type MockTopicService struct {
	ListTopicsFunc func(ctx context.Context) ([]domain.Topic, error)
}

func (m *MockTopicService) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	if m.ListTopicsFunc != nil {
		return m.ListTopicsFunc(ctx)
	}
	return []domain.Topic{}, nil
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	ListUsersFunc func(ctx context.Context) ([]domain.User, error)
	GetUserFunc   func(ctx context.Context, username string) (*domain.User, error)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return []domain.User{}, nil
}

func (m *MockUserService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, username)
	}
	return &domain.User{Username: username}, nil
}

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	ListArticlesFunc func(ctx context.Context, params query.Params) ([]domain.ArticleSummary, error)
	GetArticleFunc   func(ctx context.Context, rawID string) (*domain.ArticleDetail, error)
	UpdateVotesFunc  func(ctx context.Context, rawID string, req *dto.UpdateVotesRequest) (*domain.Article, error)
}

func (m *MockArticleService) ListArticles(ctx context.Context, params query.Params) ([]domain.ArticleSummary, error) {
	if m.ListArticlesFunc != nil {
		return m.ListArticlesFunc(ctx, params)
	}
	return []domain.ArticleSummary{}, nil
}

func (m *MockArticleService) GetArticle(ctx context.Context, rawID string) (*domain.ArticleDetail, error) {
	if m.GetArticleFunc != nil {
		return m.GetArticleFunc(ctx, rawID)
	}
	return &domain.ArticleDetail{}, nil
}

func (m *MockArticleService) UpdateVotes(ctx context.Context, rawID string, req *dto.UpdateVotesRequest) (*domain.Article, error) {
	if m.UpdateVotesFunc != nil {
		return m.UpdateVotesFunc(ctx, rawID, req)
	}
	return &domain.Article{}, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	GetCommentsFunc   func(ctx context.Context, rawArticleID string) ([]domain.Comment, error)
	CreateCommentFunc func(ctx context.Context, rawArticleID string, req *dto.CreateCommentRequest) (*domain.Comment, error)
	DeleteCommentFunc func(ctx context.Context, rawCommentID string) error
}

func (m *MockCommentService) GetComments(ctx context.Context, rawArticleID string) ([]domain.Comment, error) {
	if m.GetCommentsFunc != nil {
		return m.GetCommentsFunc(ctx, rawArticleID)
	}
	return []domain.Comment{}, nil
}

func (m *MockCommentService) CreateComment(ctx context.Context, rawArticleID string, req *dto.CreateCommentRequest) (*domain.Comment, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, rawArticleID, req)
	}
	return &domain.Comment{}, nil
}

func (m *MockCommentService) DeleteComment(ctx context.Context, rawCommentID string) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, rawCommentID)
	}
	return nil
}
