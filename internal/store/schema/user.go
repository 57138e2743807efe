package schema

import "time"

// User represents the users table read by the user directory
type User struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name           string    `gorm:"column:name;not null;type:text;uniqueIndex"`
	RealName       string    `gorm:"column:real_name;not null;type:text;default:''"`
	Email          string    `gorm:"column:email;not null;type:text;default:''"`
	EmailConfirmed bool      `gorm:"column:email_confirmed;not null"`
	NotifyAwards   bool      `gorm:"column:notify_awards;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
