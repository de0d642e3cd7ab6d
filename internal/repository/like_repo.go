package repository

import (
	"context"
	"errors"

	"streamfix/internal/domain"

	"gorm.io/gorm"
)

// LikeRepository persists per-(user, movie) like marks.
type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// FindByUserAndMovie returns (nil, nil) when the pair has no mark yet.
func (r *LikeRepository) FindByUserAndMovie(ctx context.Context, userID, movieID string) (*domain.MovieLike, error) {
	var l domain.MovieLike
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *LikeRepository) Create(ctx context.Context, l *domain.MovieLike) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// Save persists a flipped flag on an existing row.
func (r *LikeRepository) Save(ctx context.Context, l *domain.MovieLike) error {
	return r.db.WithContext(ctx).Save(l).Error
}
