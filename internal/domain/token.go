package domain

import "time"

// Token is the single active credential pair for one account.
// One row per user_id; rotation mutates the row in place, it is never
// deleted or duplicated.
type Token struct {
	TokenID          string    `gorm:"column:token_id;primaryKey" json:"token_id"`
	UserID           string    `gorm:"column:user_id;uniqueIndex" json:"user_id"`
	AccessToken      string    `gorm:"column:access_token" json:"access_token"`
	RefreshToken     string    `gorm:"column:refresh_token" json:"refresh_token"`
	AccessExpiresAt  time.Time `gorm:"column:access_expires_at" json:"access_expires_at"`
	RefreshExpiresAt time.Time `gorm:"column:refresh_expires_at" json:"refresh_expires_at"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Token) TableName() string { return "tokens" }
