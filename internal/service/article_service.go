package service

import (
	"bytes"
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"nc-news-api/internal/domain"
	"nc-news-api/internal/dto"
	"nc-news-api/internal/metrics"
	"nc-news-api/internal/query"
	"nc-news-api/internal/repository"
	"nc-news-api/internal/response"
)

// ArticleService defines the interface for article business logic
type ArticleService interface {
	ListArticles(ctx context.Context, params query.Params) ([]domain.ArticleSummary, error)
	GetArticle(ctx context.Context, rawID string) (*domain.ArticleDetail, error)
	UpdateVotes(ctx context.Context, rawID string, req *dto.UpdateVotesRequest) (*domain.Article, error)
}

type articleServiceImpl struct {
	articleRepo repository.ArticleRepository
	verifier    ExistenceVerifier
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewArticleService creates a new instance of ArticleService
func NewArticleService(
	articleRepo repository.ArticleRepository,
	verifier ExistenceVerifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) ArticleService {
	return &articleServiceImpl{
		articleRepo: articleRepo,
		verifier:    verifier,
		metrics:     m,
		logger:      logger,
	}
}

// ListArticles runs the listing query first and only checks the topic when a
// filtered listing comes back empty
func (s *articleServiceImpl) ListArticles(ctx context.Context, params query.Params) ([]domain.ArticleSummary, error) {
	plan, err := query.Build(params)
	if err != nil {
		return nil, err
	}

	articles, err := s.articleRepo.List(ctx, plan)
	if err != nil {
		return nil, storeFailure(s.logger, "list articles", err)
	}

	if len(articles) == 0 && plan.Filter != nil {
		if err := s.verifier.Verify(ctx, domain.EntityKindTopic, plan.Filter.Value); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

func (s *articleServiceImpl) GetArticle(ctx context.Context, rawID string) (*domain.ArticleDetail, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.FindDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(domain.EntityKindArticle, rawID)
		}
		return nil, storeFailure(s.logger, "get article", err, zap.Int64("article_id", id))
	}
	return article, nil
}

// UpdateVotes applies inc_votes in one conditional update; zero affected rows
// means the article is missing
func (s *articleServiceImpl) UpdateVotes(ctx context.Context, rawID string, req *dto.UpdateVotesRequest) (*domain.Article, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	delta, err := parseIncrement(req)
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.IncrementVotes(ctx, id, delta)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(domain.EntityKindArticle, rawID)
		}
		if errors.Is(err, repository.ErrVotesOutOfRange) {
			return nil, response.NewVotesOutOfRangeError(delta)
		}
		return nil, storeFailure(s.logger, "update votes", err, zap.Int64("article_id", id))
	}

	if s.metrics != nil {
		s.metrics.RecordVoteAdjustment(delta)
	}
	s.logger.Debug("Article votes adjusted",
		zap.Int64("article_id", id),
		zap.Int64("delta", delta),
		zap.Int("votes", article.Votes),
	)
	return article, nil
}

// parseIncrement requires inc_votes to be present and a JSON integer
func parseIncrement(req *dto.UpdateVotesRequest) (int64, error) {
	if req == nil {
		return 0, response.NewMissingIncrementError()
	}
	raw := bytes.TrimSpace(req.IncVotes)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, response.NewMissingIncrementError()
	}

	delta, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, response.NewInvalidIncrementError(string(raw))
	}
	return delta, nil
}
