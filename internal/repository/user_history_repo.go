package repository

import (
	"context"

	"streamfix/internal/domain"

	"gorm.io/gorm"
)

// UserHistoryRepository appends audit rows. Rows are never updated.
type UserHistoryRepository struct {
	db *gorm.DB
}

func NewUserHistoryRepository(db *gorm.DB) *UserHistoryRepository {
	return &UserHistoryRepository{db: db}
}

func (r *UserHistoryRepository) Create(ctx context.Context, h *domain.UserHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}
