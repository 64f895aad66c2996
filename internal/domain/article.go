package domain

import "time"

// Article is a post written by a user under a topic.
// Deleting an article removes its comments.
type Article struct {
	ArticleID     int64     `gorm:"column:article_id;primaryKey;autoIncrement" json:"article_id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Topic         string    `gorm:"type:varchar(255);not null;index:idx_articles_topic" json:"topic"`
	Author        string    `gorm:"type:varchar(255);not null;index:idx_articles_author" json:"author"`
	Body          string    `gorm:"type:text;not null" json:"body"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	Votes         int       `gorm:"not null;default:0" json:"votes"`
	ArticleImgURL *string   `gorm:"type:varchar(1000)" json:"article_img_url"`
	TopicRef      Topic     `gorm:"foreignKey:Topic;references:Slug" json:"-"`
	AuthorRef     User      `gorm:"foreignKey:Author;references:Username" json:"-"`
	Comments      []Comment `gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Article
func (Article) TableName() string {
	return "articles"
}

// ArticleSummary is the list projection of an article: no body, plus its comment count
type ArticleSummary struct {
	ArticleID     int64     `gorm:"column:article_id" json:"article_id"`
	Title         string    `gorm:"column:title" json:"title"`
	Topic         string    `gorm:"column:topic" json:"topic"`
	Author        string    `gorm:"column:author" json:"author"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	Votes         int       `gorm:"column:votes" json:"votes"`
	ArticleImgURL *string   `gorm:"column:article_img_url" json:"article_img_url"`
	CommentCount  int64     `gorm:"column:comment_count" json:"comment_count"`
}

// ArticleDetail is the single-article projection: full body plus its comment count
type ArticleDetail struct {
	ArticleID     int64     `gorm:"column:article_id" json:"article_id"`
	Title         string    `gorm:"column:title" json:"title"`
	Topic         string    `gorm:"column:topic" json:"topic"`
	Author        string    `gorm:"column:author" json:"author"`
	Body          string    `gorm:"column:body" json:"body"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	Votes         int       `gorm:"column:votes" json:"votes"`
	ArticleImgURL *string   `gorm:"column:article_img_url" json:"article_img_url"`
	CommentCount  int64     `gorm:"column:comment_count" json:"comment_count"`
}
