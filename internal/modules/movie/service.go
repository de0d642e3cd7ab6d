package movie

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"streamfix/internal/domain"
	"streamfix/internal/repository"
	"streamfix/internal/tmdb"
)

const clientPageCacheTTL = 10 * time.Minute

// Service serves the catalog and guards downloads by subscription tier.
type Service struct {
	movies    CatalogStore
	downloads DownloadLedger
	likes     LikeStore
	policies  *PolicyRegistry

	// Optional; FetchFromClient works uncached when cache is nil.
	cache    PageCache
	upstream UpstreamCatalog
}

func NewService(movies CatalogStore, downloads DownloadLedger, likes LikeStore, policies *PolicyRegistry, cache PageCache, upstream UpstreamCatalog) *Service {
	return &Service{
		movies:    movies,
		downloads: downloads,
		likes:     likes,
		policies:  policies,
		cache:     cache,
		upstream:  upstream,
	}
}

// Download checks the caller's daily quota for their tier and, when within
// it, records the event and returns the movie title. Count and append run in
// one transaction so two concurrent calls cannot both observe the last free
// slot.
func (s *Service) Download(ctx context.Context, userID string, tier domain.Tier, movieID string) (string, error) {
	policy, err := s.policies.Resolve(tier)
	if err != nil {
		return "", err
	}

	var title string
	err = s.downloads.InTransaction(ctx, func(store repository.DownloadStore) error {
		count, err := store.CountToday(ctx, userID)
		if err != nil {
			return err
		}
		if !policy.WithinQuota(count) {
			return ErrQuotaExceeded
		}

		m, err := s.movies.GetByID(ctx, movieID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMovieNotFound
			}
			return err
		}
		title = m.MovieName

		return store.Create(ctx, &domain.MovieDownload{
			DownloadID: uuid.NewString(),
			UserID:     userID,
			MovieID:    movieID,
		})
	})
	if err != nil {
		return "", err
	}
	return title, nil
}

// Like toggles the caller's like mark on a movie. First call creates the
// mark liked, later calls flip the flag on the same row.
func (s *Service) Like(ctx context.Context, userID, movieID string) (*domain.MovieLike, error) {
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	existing, err := s.likes.FindByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		l := &domain.MovieLike{
			LikeID:  uuid.NewString(),
			UserID:  userID,
			MovieID: movieID,
			Liked:   true,
		}
		if err := s.likes.Create(ctx, l); err != nil {
			return nil, err
		}
		return l, nil
	}

	existing.Liked = !existing.Liked
	if err := s.likes.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// FetchFromClient serves one upstream now-playing page, cached for a short
// TTL so page flips do not hammer the upstream API.
func (s *Service) FetchFromClient(ctx context.Context, page int) (*ClientPage, error) {
	if s.upstream == nil {
		return nil, fmt.Errorf("upstream catalog is not configured")
	}

	key := fmt.Sprintf("movies:client:page:%d", page)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("page cache read failed")
		} else if cached != "" {
			var cp ClientPage
			if err := json.Unmarshal([]byte(cached), &cp); err == nil {
				return &cp, nil
			}
		}
	}

	upstream, err := s.upstream.FetchNowPlaying(ctx, page)
	if err != nil {
		return nil, err
	}

	cp := &ClientPage{
		Page:    upstream.Page,
		HasNext: upstream.HasNext,
		Movies:  make([]ClientMovie, 0, len(upstream.Movies)),
	}
	for _, m := range upstream.Movies {
		cp.Movies = append(cp.Movies, ClientMovie{
			MovieName:  m.Title,
			IsAdult:    m.Adult,
			Genre:      tmdb.GenreLabel(m.GenreIDs),
			Overview:   domain.TruncateOverview(m.Overview),
			ReleasedAt: m.ReleaseDate,
		})
	}

	if s.cache != nil {
		if raw, err := json.Marshal(cp); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), clientPageCacheTTL); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("page cache write failed")
			}
		}
	}
	return cp, nil
}

// FetchFromDB serves one page of the local catalog.
func (s *Service) FetchFromDB(ctx context.Context, page int) (*SearchResponse, error) {
	movies, hasNext, err := s.movies.SearchPage(ctx, page)
	if err != nil {
		return nil, err
	}
	return &SearchResponse{Page: page, HasNext: hasNext, Movies: movies}, nil
}

// IngestPage imports one upstream page into the local catalog, skipping
// titles already present. Returns how many rows were written and whether the
// upstream has more pages.
func (s *Service) IngestPage(ctx context.Context, page int) (int, bool, error) {
	if s.upstream == nil {
		return 0, false, fmt.Errorf("upstream catalog is not configured")
	}

	upstream, err := s.upstream.FetchNowPlaying(ctx, page)
	if err != nil {
		return 0, false, err
	}

	imported := 0
	for _, m := range upstream.Movies {
		exists, err := s.movies.ExistsByName(ctx, m.Title)
		if err != nil {
			return imported, false, err
		}
		if exists {
			continue
		}

		err = s.movies.Create(ctx, &domain.Movie{
			MovieID:    uuid.NewString(),
			MovieName:  m.Title,
			IsAdult:    m.Adult,
			Genre:      tmdb.GenreLabel(m.GenreIDs),
			Overview:   domain.TruncateOverview(m.Overview),
			ReleasedAt: m.ReleaseDate,
		})
		if err != nil {
			return imported, false, err
		}
		imported++
	}
	return imported, upstream.HasNext, nil
}
