package repository

import (
	"context"
	"errors"

	"streamfix/internal/domain"

	"gorm.io/gorm"
)

// SubscriptionRepository persists the one-per-account subscription row.
type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *domain.Subscription) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// FindByUserID returns (nil, nil) when the account has no subscription.
func (r *SubscriptionRepository) FindByUserID(ctx context.Context, userID string) (*domain.Subscription, error) {
	var s domain.Subscription
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Save persists mutations idempotently by primary key.
func (r *SubscriptionRepository) Save(ctx context.Context, s *domain.Subscription) error {
	return r.db.WithContext(ctx).Save(s).Error
}
