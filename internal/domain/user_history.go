package domain

import "time"

// UserHistory is one audit row per authenticated API request. Append-only.
type UserHistory struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:user_id;index" json:"user_id"`
	ClientIP  string    `gorm:"column:client_ip" json:"client_ip"`
	Method    string    `gorm:"column:method" json:"method"`
	URL       string    `gorm:"column:url" json:"url"`
	Header    string    `gorm:"column:header" json:"header"`
	Payload   string    `gorm:"column:payload" json:"payload"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (UserHistory) TableName() string { return "user_histories" }
