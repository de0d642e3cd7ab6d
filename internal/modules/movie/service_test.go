package movie

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"streamfix/internal/domain"
	"streamfix/internal/repository"
)

type mockCatalogStore struct {
	mock.Mock
}

func (m *mockCatalogStore) Create(ctx context.Context, mv *domain.Movie) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}

func (m *mockCatalogStore) GetByID(ctx context.Context, movieID string) (*domain.Movie, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *mockCatalogStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockCatalogStore) SearchPage(ctx context.Context, page int) ([]domain.Movie, bool, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.Movie), args.Bool(1), args.Error(2)
}

// mockDownloadLedger is both the ledger and the transaction-bound store:
// InTransaction hands itself to the callback, matching how the real
// repository binds a transaction.
type mockDownloadLedger struct {
	mock.Mock
}

func (m *mockDownloadLedger) CountToday(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDownloadLedger) Create(ctx context.Context, d *domain.MovieDownload) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDownloadLedger) InTransaction(ctx context.Context, fn func(store repository.DownloadStore) error) error {
	return fn(m)
}

type mockLikeStore struct {
	mock.Mock
}

func (m *mockLikeStore) FindByUserAndMovie(ctx context.Context, userID, movieID string) (*domain.MovieLike, error) {
	args := m.Called(ctx, userID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovieLike), args.Error(1)
}

func (m *mockLikeStore) Create(ctx context.Context, l *domain.MovieLike) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockLikeStore) Save(ctx context.Context, l *domain.MovieLike) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func newQuotaService(t *testing.T, movies *mockCatalogStore, downloads *mockDownloadLedger, likes *mockLikeStore) *Service {
	t.Helper()
	registry, err := DefaultPolicyRegistry()
	require.NoError(t, err)
	return NewService(movies, downloads, likes, registry, nil, nil)
}

func TestService_Download_WithinQuotaAppendsEvent(t *testing.T) {
	movies := new(mockCatalogStore)
	downloads := new(mockDownloadLedger)
	likes := new(mockLikeStore)
	svc := newQuotaService(t, movies, downloads, likes)

	downloads.On("CountToday", mock.Anything, "user-1").Return(int64(4), nil)
	movies.On("GetByID", mock.Anything, "movie-1").Return(&domain.Movie{MovieID: "movie-1", MovieName: "Oldboy"}, nil)
	downloads.On("Create", mock.Anything, mock.MatchedBy(func(d *domain.MovieDownload) bool {
		return d.UserID == "user-1" && d.MovieID == "movie-1" && d.DownloadID != ""
	})).Return(nil)

	title, err := svc.Download(context.Background(), "user-1", domain.TierBronze, "movie-1")
	require.NoError(t, err)
	assert.Equal(t, "Oldboy", title)

	downloads.AssertExpectations(t)
}

func TestService_Download_QuotaExceededNoAppend(t *testing.T) {
	movies := new(mockCatalogStore)
	downloads := new(mockDownloadLedger)
	likes := new(mockLikeStore)
	svc := newQuotaService(t, movies, downloads, likes)

	downloads.On("CountToday", mock.Anything, "user-1").Return(int64(5), nil)

	_, err := svc.Download(context.Background(), "user-1", domain.TierBronze, "movie-1")
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	downloads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	movies.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Download_FreeTierAlwaysRejected(t *testing.T) {
	movies := new(mockCatalogStore)
	downloads := new(mockDownloadLedger)
	likes := new(mockLikeStore)
	svc := newQuotaService(t, movies, downloads, likes)

	downloads.On("CountToday", mock.Anything, "user-1").Return(int64(0), nil)

	_, err := svc.Download(context.Background(), "user-1", domain.TierFree, "movie-1")
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestService_Download_GoldUnlimited(t *testing.T) {
	movies := new(mockCatalogStore)
	downloads := new(mockDownloadLedger)
	likes := new(mockLikeStore)
	svc := newQuotaService(t, movies, downloads, likes)

	downloads.On("CountToday", mock.Anything, "user-1").Return(int64(1000), nil)
	movies.On("GetByID", mock.Anything, "movie-1").Return(&domain.Movie{MovieID: "movie-1", MovieName: "Decision to Leave"}, nil)
	downloads.On("Create", mock.Anything, mock.Anything).Return(nil)

	title, err := svc.Download(context.Background(), "user-1", domain.TierGold, "movie-1")
	require.NoError(t, err)
	assert.Equal(t, "Decision to Leave", title)
}

func TestService_Download_MovieNotFound(t *testing.T) {
	movies := new(mockCatalogStore)
	downloads := new(mockDownloadLedger)
	likes := new(mockLikeStore)
	svc := newQuotaService(t, movies, downloads, likes)

	downloads.On("CountToday", mock.Anything, "user-1").Return(int64(0), nil)
	movies.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Download(context.Background(), "user-1", domain.TierSilver, "missing")
	assert.ErrorIs(t, err, ErrMovieNotFound)
	downloads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Like_ToggleRoundTrip(t *testing.T) {
	movies := new(mockCatalogStore)
	downloads := new(mockDownloadLedger)
	likes := new(mockLikeStore)
	svc := newQuotaService(t, movies, downloads, likes)

	movies.On("GetByID", mock.Anything, "movie-1").Return(&domain.Movie{MovieID: "movie-1"}, nil)

	// First call: no row yet, created liked.
	likes.On("FindByUserAndMovie", mock.Anything, "user-1", "movie-1").Return(nil, nil).Once()
	var created *domain.MovieLike
	likes.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.MovieLike)
	}).Return(nil)

	first, err := svc.Like(context.Background(), "user-1", "movie-1")
	require.NoError(t, err)
	assert.True(t, first.Liked)
	require.NotNil(t, created)

	// Second call: same row flips off.
	likes.On("FindByUserAndMovie", mock.Anything, "user-1", "movie-1").Return(created, nil).Once()
	likes.On("Save", mock.Anything, created).Return(nil)

	second, err := svc.Like(context.Background(), "user-1", "movie-1")
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, first.LikeID, second.LikeID)
}

func TestService_FetchFromDB_PassesThroughPage(t *testing.T) {
	movies := new(mockCatalogStore)
	downloads := new(mockDownloadLedger)
	likes := new(mockLikeStore)
	svc := newQuotaService(t, movies, downloads, likes)

	page := []domain.Movie{{MovieID: "m1", MovieName: "Alien"}}
	movies.On("SearchPage", mock.Anything, 2).Return(page, true, nil)

	res, err := svc.FetchFromDB(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Page)
	assert.True(t, res.HasNext)
	assert.Len(t, res.Movies, 1)
}
