package domain

import "time"

// Comment represents a comment on an article
type Comment struct {
	CommentID int64     `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	ArticleID int64     `gorm:"column:article_id;not null;index:idx_comments_article_id" json:"article_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	Author    string    `gorm:"type:varchar(255);not null;index:idx_comments_author" json:"author"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	AuthorRef User      `gorm:"foreignKey:Author;references:Username" json:"-"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
