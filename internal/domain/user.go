package domain

import "time"

// User is a registered account. Social sign-ins (Kakao) land in the same
// table with Provider/ProviderID set and no password.
type User struct {
	UserID     string    `gorm:"column:user_id;primaryKey" json:"user_id"`
	UserName   string    `gorm:"column:user_name" json:"user_name"`
	Password   string    `gorm:"column:password" json:"-"`
	Email      string    `gorm:"column:email;uniqueIndex" json:"email"`
	Phone      string    `gorm:"column:phone" json:"phone,omitempty"`
	Provider   *string   `gorm:"column:provider" json:"provider,omitempty"`
	ProviderID *string   `gorm:"column:provider_id;index" json:"provider_id,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
