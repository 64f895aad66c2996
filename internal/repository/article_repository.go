package repository

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nc-news-api/internal/domain"
	"nc-news-api/internal/query"
)

// ErrVotesOutOfRange is returned when applying a delta would overflow the votes column
var ErrVotesOutOfRange = errors.New("votes out of range")

// ArticleRepository defines the interface for article data access
type ArticleRepository interface {
	List(ctx context.Context, plan query.Plan) ([]domain.ArticleSummary, error)
	FindDetailByID(ctx context.Context, id int64) (*domain.ArticleDetail, error)
	IncrementVotes(ctx context.Context, id int64, delta int64) (*domain.Article, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type articleRepositoryImpl struct {
	db *gorm.DB
}

// NewArticleRepository creates a new instance of ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepositoryImpl{db: db}
}

// List runs a validated plan. Every identifier used here comes from the plan.
func (r *articleRepositoryImpl) List(ctx context.Context, plan query.Plan) ([]domain.ArticleSummary, error) {
	tx := withCommentCount(r.db.WithContext(ctx), plan.Columns)

	if plan.Filter != nil {
		tx = tx.Where(clause.Eq{
			Column: clause.Column{Table: "articles", Name: plan.Filter.Column},
			Value:  plan.Filter.Value,
		})
	}

	tx = tx.Order(clause.OrderByColumn{
		Column: clause.Column{Name: plan.SortColumn, Raw: true},
		Desc:   plan.Desc(),
	})

	articles := make([]domain.ArticleSummary, 0)
	if err := tx.Scan(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FindDetailByID returns gorm.ErrRecordNotFound when no article matches
func (r *articleRepositoryImpl) FindDetailByID(ctx context.Context, id int64) (*domain.ArticleDetail, error) {
	var details []domain.ArticleDetail
	err := withCommentCount(r.db.WithContext(ctx), query.DetailColumns).
		Where("articles.article_id = ?", id).
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &details[0], nil
}

// IncrementVotes adds delta to the stored votes in a single UPDATE statement
// guarded so the sum stays within int64. When no row is affected the article
// is either missing (gorm.ErrRecordNotFound) or at the edge of the range
// (ErrVotesOutOfRange).
func (r *articleRepositoryImpl) IncrementVotes(ctx context.Context, id int64, delta int64) (*domain.Article, error) {
	var article domain.Article
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&domain.Article{}).Where("article_id = ?", id)
		switch {
		case delta > 0:
			update = update.Where("votes <= ?", int64(math.MaxInt64)-delta)
		case delta < 0:
			update = update.Where("votes >= ?", int64(math.MinInt64)-delta)
		}

		result := update.UpdateColumn("votes", gorm.Expr("votes + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			found, err := exists(tx, &domain.Article{}, "article_id", id)
			if err != nil {
				return err
			}
			if found {
				return ErrVotesOutOfRange
			}
			return gorm.ErrRecordNotFound
		}
		return tx.Where("article_id = ?", id).Take(&article).Error
	})
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepositoryImpl) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(r.db.WithContext(ctx), &domain.Article{}, "article_id", id)
}

func (r *articleRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Article{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
