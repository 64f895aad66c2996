package domain

// User is an article or comment author, addressed by username
type User struct {
	Username  string  `gorm:"type:varchar(255);primaryKey" json:"username"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	AvatarURL *string `gorm:"type:varchar(1000)" json:"avatar_url"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
