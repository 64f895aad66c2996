package service

import (
	"context"

	"nc-news-api/internal/domain"
	"nc-news-api/internal/query"
)

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	FindAllFunc func(ctx context.Context) ([]domain.Topic, error)
	ExistsFunc  func(ctx context.Context, slug string) (bool, error)
}

func (m *MockTopicRepository) FindAll(ctx context.Context) ([]domain.Topic, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Topic{}, nil
}

func (m *MockTopicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, slug)
	}
	return false, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	FindAllFunc        func(ctx context.Context) ([]domain.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	ExistsFunc         func(ctx context.Context, username string) (bool, error)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.User{}, nil
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, username)
	}
	return false, nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	ListFunc           func(ctx context.Context, plan query.Plan) ([]domain.ArticleSummary, error)
	FindDetailByIDFunc func(ctx context.Context, id int64) (*domain.ArticleDetail, error)
	IncrementVotesFunc func(ctx context.Context, id int64, delta int64) (*domain.Article, error)
	ExistsFunc         func(ctx context.Context, id int64) (bool, error)
	CountFunc          func(ctx context.Context) (int64, error)
}

func (m *MockArticleRepository) List(ctx context.Context, plan query.Plan) ([]domain.ArticleSummary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, plan)
	}
	return []domain.ArticleSummary{}, nil
}

func (m *MockArticleRepository) FindDetailByID(ctx context.Context, id int64) (*domain.ArticleDetail, error) {
	if m.FindDetailByIDFunc != nil {
		return m.FindDetailByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id int64, delta int64) (*domain.Article, error) {
	if m.IncrementVotesFunc != nil {
		return m.IncrementVotesFunc(ctx, id, delta)
	}
	return nil, nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc          func(ctx context.Context, comment *domain.Comment) error
	FindByArticleIDFunc func(ctx context.Context, articleID int64) ([]domain.Comment, error)
	DeleteFunc          func(ctx context.Context, id int64) error
	ExistsFunc          func(ctx context.Context, id int64) (bool, error)
	CountFunc           func(ctx context.Context) (int64, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByArticleID(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	if m.FindByArticleIDFunc != nil {
		return m.FindByArticleIDFunc(ctx, articleID)
	}
	return []domain.Comment{}, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCommentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockExistenceVerifier records every check it is asked to make
type MockExistenceVerifier struct {
	VerifyFunc func(ctx context.Context, kind domain.EntityKind, key string) error
	Calls      []domain.EntityKind
}

func (m *MockExistenceVerifier) Verify(ctx context.Context, kind domain.EntityKind, key string) error {
	m.Calls = append(m.Calls, kind)
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, kind, key)
	}
	return nil
}
