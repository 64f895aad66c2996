package repository

import (
	"strings"

	"gorm.io/gorm"

	"nc-news-api/internal/query"
)

// withCommentCount projects columns plus the number of comments on each article.
// The outer join keeps articles without comments, counted as 0.
func withCommentCount(tx *gorm.DB, columns []string) *gorm.DB {
	selectList := strings.Join(columns, ", ") + ", COUNT(comments.comment_id) AS " + query.CommentCountColumn
	return tx.Table("articles").
		Select(selectList).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")
}

// exists reports whether a row of model matches column = value
func exists(tx *gorm.DB, model interface{}, column string, value interface{}) (bool, error) {
	var count int64
	if err := tx.Model(model).Where(column+" = ?", value).Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
