package movie

import (
	"context"
	"time"

	"streamfix/internal/domain"
	"streamfix/internal/repository"
	"streamfix/internal/tmdb"
)

// CatalogStore is the slice of the movie repository the service needs.
type CatalogStore interface {
	Create(ctx context.Context, m *domain.Movie) error
	GetByID(ctx context.Context, movieID string) (*domain.Movie, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	SearchPage(ctx context.Context, page int) ([]domain.Movie, bool, error)
}

// DownloadLedger records download events. InTransaction binds the count and
// the append to one transaction.
type DownloadLedger interface {
	InTransaction(ctx context.Context, fn func(store repository.DownloadStore) error) error
}

// LikeStore persists per-(user, movie) like marks.
type LikeStore interface {
	FindByUserAndMovie(ctx context.Context, userID, movieID string) (*domain.MovieLike, error)
	Create(ctx context.Context, l *domain.MovieLike) error
	Save(ctx context.Context, l *domain.MovieLike) error
}

// PageCache caches serialized upstream pages. A miss is ("", nil).
type PageCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// UpstreamCatalog is the now-playing movie API.
type UpstreamCatalog interface {
	FetchNowPlaying(ctx context.Context, page int) (*tmdb.Page, error)
}
