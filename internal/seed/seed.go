// Package seed loads bundled datasets and (re)builds the database from them.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nc-news-api/internal/database"
	"nc-news-api/internal/domain"
)

//go:embed data/*.json
var dataFS embed.FS

// Dataset names
const (
	DatasetTest        = "test"
	DatasetDevelopment = "development"
)

// Dataset is the on-disk shape of a seed file. Timestamps are epoch milliseconds
// and comments point at their article by title.
type Dataset struct {
	Topics   []domain.Topic `json:"topics"`
	Users    []domain.User  `json:"users"`
	Articles []ArticleRow   `json:"articles"`
	Comments []CommentRow   `json:"comments"`
}

type ArticleRow struct {
	Title         string  `json:"title"`
	Topic         string  `json:"topic"`
	Author        string  `json:"author"`
	Body          string  `json:"body"`
	CreatedAt     *int64  `json:"created_at"`
	Votes         int     `json:"votes"`
	ArticleImgURL *string `json:"article_img_url"`
}

type CommentRow struct {
	ArticleTitle string `json:"article_title"`
	Body         string `json:"body"`
	Votes        int    `json:"votes"`
	Author       string `json:"author"`
	CreatedAt    *int64 `json:"created_at"`
}

// Load reads a bundled dataset by name
func Load(name string) (*Dataset, error) {
	raw, err := dataFS.ReadFile("data/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown dataset %q", name)
	}

	var data Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %q: %w", name, err)
	}
	return &data, nil
}

// convertTimestamp turns epoch milliseconds into a UTC time; absent means now
func convertTimestamp(ms *int64, now time.Time) time.Time {
	if ms == nil {
		return now
	}
	return time.UnixMilli(*ms).UTC()
}

// Seed drops every table, recreates the schema and inserts data.
// Rows are inserted in one transaction.
func Seed(ctx context.Context, db *gorm.DB, data *Dataset, logger *zap.Logger) error {
	db = db.WithContext(ctx)

	if err := database.DropAll(db); err != nil {
		return err
	}
	if err := database.AutoMigrate(db, logger); err != nil {
		return err
	}

	now := time.Now().UTC()
	err := db.Transaction(func(tx *gorm.DB) error {
		tx = tx.Omit(clause.Associations).Session(&gorm.Session{})

		if len(data.Topics) > 0 {
			if err := tx.Create(&data.Topics).Error; err != nil {
				return fmt.Errorf("failed to insert topics: %w", err)
			}
		}
		if len(data.Users) > 0 {
			if err := tx.Create(&data.Users).Error; err != nil {
				return fmt.Errorf("failed to insert users: %w", err)
			}
		}

		// one row at a time so ids follow dataset order
		titleToID := make(map[string]int64, len(data.Articles))
		for _, row := range data.Articles {
			article := domain.Article{
				Title:         row.Title,
				Topic:         row.Topic,
				Author:        row.Author,
				Body:          row.Body,
				CreatedAt:     convertTimestamp(row.CreatedAt, now),
				Votes:         row.Votes,
				ArticleImgURL: row.ArticleImgURL,
			}
			if err := tx.Create(&article).Error; err != nil {
				return fmt.Errorf("failed to insert article %q: %w", row.Title, err)
			}
			titleToID[row.Title] = article.ArticleID
		}

		for _, row := range data.Comments {
			articleID, ok := titleToID[row.ArticleTitle]
			if !ok {
				return fmt.Errorf("comment references unknown article %q", row.ArticleTitle)
			}
			comment := domain.Comment{
				ArticleID: articleID,
				Body:      row.Body,
				Votes:     row.Votes,
				Author:    row.Author,
				CreatedAt: convertTimestamp(row.CreatedAt, now),
			}
			if err := tx.Create(&comment).Error; err != nil {
				return fmt.Errorf("failed to insert comment on %q: %w", row.ArticleTitle, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Database seeded",
		zap.Int("topics", len(data.Topics)),
		zap.Int("users", len(data.Users)),
		zap.Int("articles", len(data.Articles)),
		zap.Int("comments", len(data.Comments)),
	)
	return nil
}
