package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"nc-news-api/internal/domain"
	"nc-news-api/internal/repository"
)

// ExistenceVerifier checks that a referenced entity is present in the store
type ExistenceVerifier interface {
	// Verify returns nil if the entity exists, a malformed id error for a
	// non-integer article or comment key, or a not-found error.
	Verify(ctx context.Context, kind domain.EntityKind, key string) error
}

type existenceVerifierImpl struct {
	topicRepo   repository.TopicRepository
	userRepo    repository.UserRepository
	articleRepo repository.ArticleRepository
	commentRepo repository.CommentRepository
	logger      *zap.Logger
}

// NewExistenceVerifier creates a new instance of ExistenceVerifier
func NewExistenceVerifier(
	topicRepo repository.TopicRepository,
	userRepo repository.UserRepository,
	articleRepo repository.ArticleRepository,
	commentRepo repository.CommentRepository,
	logger *zap.Logger,
) ExistenceVerifier {
	return &existenceVerifierImpl{
		topicRepo:   topicRepo,
		userRepo:    userRepo,
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Verify performs exactly one read for a well formed key and none for a malformed one
func (v *existenceVerifierImpl) Verify(ctx context.Context, kind domain.EntityKind, key string) error {
	var (
		id    int64
		found bool
		err   error
	)
	if kind.HasNumericKey() {
		if id, err = ParseID(key); err != nil {
			return err
		}
	}

	switch kind {
	case domain.EntityKindTopic:
		found, err = v.topicRepo.Exists(ctx, key)
	case domain.EntityKindUser:
		found, err = v.userRepo.Exists(ctx, key)
	case domain.EntityKindArticle:
		found, err = v.articleRepo.Exists(ctx, id)
	case domain.EntityKindComment:
		found, err = v.commentRepo.Exists(ctx, id)
	default:
		return fmt.Errorf("unknown entity kind %q", kind)
	}

	if err != nil {
		return storeFailure(v.logger, "verify "+string(kind), err, zap.String("key", key))
	}
	if !found {
		return notFound(kind, key)
	}
	return nil
}
