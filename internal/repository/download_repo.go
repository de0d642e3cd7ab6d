package repository

import (
	"context"
	"time"

	"streamfix/internal/domain"

	"gorm.io/gorm"
)

// DownloadStore is the slice of download persistence the quota guard needs.
// InTransaction hands the callback a store bound to one transaction so the
// count and the append commit or fail together.
type DownloadStore interface {
	CountToday(ctx context.Context, userID string) (int64, error)
	Create(ctx context.Context, d *domain.MovieDownload) error
}

// DownloadRepository persists append-only download events.
type DownloadRepository struct {
	db *gorm.DB
}

func NewDownloadRepository(db *gorm.DB) *DownloadRepository {
	return &DownloadRepository{db: db}
}

// CountToday counts the user's events in [start-of-today, start-of-tomorrow),
// computed from wall-clock time at call time.
func (r *DownloadRepository) CountToday(ctx context.Context, userID string) (int64, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.MovieDownload{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Count(&count).Error
	return count, err
}

func (r *DownloadRepository) Create(ctx context.Context, d *domain.MovieDownload) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// InTransaction runs fn against a transaction-bound store.
func (r *DownloadRepository) InTransaction(ctx context.Context, fn func(store DownloadStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DownloadRepository{db: tx})
	})
}
