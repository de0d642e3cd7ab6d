package repository

import (
	"context"
	"errors"
	"time"

	"streamfix/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenRepository provides DB access for the per-account token pair.
type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, t *domain.Token) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindByUserID returns (nil, nil) when the account has no token pair yet.
func (r *TokenRepository) FindByUserID(ctx context.Context, userID string) (*domain.Token, error) {
	var t domain.Token
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// Rotate swaps the pair in place. The row lock serializes concurrent rotates
// for one account; rotates for different accounts touch different rows and
// never contend. Returns gorm.ErrRecordNotFound when no pair exists.
func (r *TokenRepository) Rotate(ctx context.Context, userID, access, refresh string, accessExpiresAt, refreshExpiresAt time.Time) (*domain.Token, error) {
	var t domain.Token
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&t).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&t).Updates(map[string]any{
			"access_token":       access,
			"refresh_token":      refresh,
			"access_expires_at":  accessExpiresAt,
			"refresh_expires_at": refreshExpiresAt,
			"updated_at":         now,
		}).Error; err != nil {
			return err
		}

		t.AccessToken = access
		t.RefreshToken = refresh
		t.AccessExpiresAt = accessExpiresAt
		t.RefreshExpiresAt = refreshExpiresAt
		t.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}
