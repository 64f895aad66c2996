package domain

// Topic groups articles under a unique slug
type Topic struct {
	Slug        string  `gorm:"type:varchar(255);primaryKey" json:"slug"`
	Description string  `gorm:"type:varchar(255);not null" json:"description"`
	ImgURL      *string `gorm:"type:varchar(1000)" json:"img_url"`
}

// TableName specifies the table name for Topic
func (Topic) TableName() string {
	return "topics"
}
