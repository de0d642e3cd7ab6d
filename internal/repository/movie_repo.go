package repository

import (
	"context"

	"streamfix/internal/domain"

	"gorm.io/gorm"
)

const moviePageSize = 10

// MovieRepository provides DB access for the movie catalog.
type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) Create(ctx context.Context, m *domain.Movie) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MovieRepository) GetByID(ctx context.Context, movieID string) (*domain.Movie, error) {
	var m domain.Movie
	err := r.db.WithContext(ctx).Where("movie_id = ?", movieID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovieRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Movie{}).
		Where("movie_name = ?", name).
		Count(&count).Error
	return count > 0, err
}

// SearchPage returns one page of the catalog plus a has-next flag.
// Pages are 1-based.
func (r *MovieRepository) SearchPage(ctx context.Context, page int) ([]domain.Movie, bool, error) {
	if page < 1 {
		page = 1
	}

	var movies []domain.Movie
	err := r.db.WithContext(ctx).
		Order("movie_name ASC").
		Limit(moviePageSize + 1).
		Offset((page - 1) * moviePageSize).
		Find(&movies).Error
	if err != nil {
		return nil, false, err
	}

	hasNext := len(movies) > moviePageSize
	if hasNext {
		movies = movies[:moviePageSize]
	}
	return movies, hasNext, nil
}
