package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"nc-news-api/internal/domain"
	"nc-news-api/internal/dto"
	"nc-news-api/internal/metrics"
	"nc-news-api/internal/repository"
	"nc-news-api/internal/response"
	"nc-news-api/internal/util"
)

// CommentService defines the interface for comment business logic
type CommentService interface {
	GetComments(ctx context.Context, rawArticleID string) ([]domain.Comment, error)
	CreateComment(ctx context.Context, rawArticleID string, req *dto.CreateCommentRequest) (*domain.Comment, error)
	DeleteComment(ctx context.Context, rawCommentID string) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	verifier    ExistenceVerifier
	sanitizer   util.Sanitizer
	metrics     *metrics.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

// NewCommentService creates a new instance of CommentService. A nil sanitizer stores bodies as sent.
func NewCommentService(
	commentRepo repository.CommentRepository,
	verifier ExistenceVerifier,
	sanitizer util.Sanitizer,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	if sanitizer == nil {
		sanitizer = util.NoopSanitizer{}
	}
	return &commentServiceImpl{
		commentRepo: commentRepo,
		verifier:    verifier,
		sanitizer:   sanitizer,
		metrics:     m,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// GetComments returns the article's comments, newest first. The article is
// only looked up when it has no comments.
func (s *commentServiceImpl) GetComments(ctx context.Context, rawArticleID string) ([]domain.Comment, error) {
	articleID, err := ParseID(rawArticleID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByArticleID(ctx, articleID)
	if err != nil {
		return nil, storeFailure(s.logger, "list comments", err, zap.Int64("article_id", articleID))
	}

	if len(comments) == 0 {
		if err := s.verifier.Verify(ctx, domain.EntityKindArticle, rawArticleID); err != nil {
			return nil, err
		}
	}
	return comments, nil
}

// CreateComment checks fields, then the article, then the user, and only then inserts.
// The first failing step decides the error.
func (s *commentServiceImpl) CreateComment(ctx context.Context, rawArticleID string, req *dto.CreateCommentRequest) (*domain.Comment, error) {
	if req == nil {
		return nil, response.NewMissingFieldsError("username, body")
	}

	var missing []string
	if util.IsBlank(req.Username) {
		missing = append(missing, "username")
	}
	body := s.sanitizer.Sanitize(req.Body)
	if util.IsBlank(body) {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return nil, response.NewMissingFieldsError(strings.Join(missing, ", "))
	}

	if err := s.verifier.Verify(ctx, domain.EntityKindArticle, rawArticleID); err != nil {
		return nil, err
	}
	if err := s.verifier.Verify(ctx, domain.EntityKindUser, req.Username); err != nil {
		return nil, err
	}

	// Verify has already rejected a malformed id
	articleID, _ := ParseID(rawArticleID)

	comment := &domain.Comment{
		ArticleID: articleID,
		Body:      body,
		Votes:     0,
		Author:    req.Username,
		CreatedAt: s.now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, storeFailure(s.logger, "create comment", err, zap.Int64("article_id", articleID))
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}
	s.logger.Info("Comment created",
		zap.Int64("comment_id", comment.CommentID),
		zap.Int64("article_id", articleID),
		zap.String("author", comment.Author),
	)
	return comment, nil
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, rawCommentID string) error {
	if err := s.verifier.Verify(ctx, domain.EntityKindComment, rawCommentID); err != nil {
		return err
	}

	commentID, _ := ParseID(rawCommentID)
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		// removed by a concurrent request after verification
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(domain.EntityKindComment, rawCommentID)
		}
		return storeFailure(s.logger, "delete comment", err, zap.Int64("comment_id", commentID))
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentDeleted()
	}
	s.logger.Info("Comment deleted", zap.Int64("comment_id", commentID))
	return nil
}
