package domain

import (
	"time"
	"unicode/utf8"
)

const overviewMaxLen = 200

// Movie is one catalog item, imported from the upstream movie API or seeded.
type Movie struct {
	MovieID    string    `gorm:"column:movie_id;primaryKey" json:"movie_id"`
	MovieName  string    `gorm:"column:movie_name;index" json:"movie_name"`
	IsAdult    bool      `gorm:"column:is_adult" json:"is_adult"`
	Genre      string    `gorm:"column:genre" json:"genre"`
	Overview   string    `gorm:"column:overview" json:"overview"`
	ReleasedAt string    `gorm:"column:released_at" json:"released_at"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Movie) TableName() string { return "movies" }

// TruncateOverview caps an upstream synopsis at the column limit. The limit
// counts characters, not bytes; overviews arrive in Korean and a byte slice
// would split a rune.
func TruncateOverview(overview string) string {
	if utf8.RuneCountInString(overview) <= overviewMaxLen {
		return overview
	}
	return string([]rune(overview)[:overviewMaxLen])
}

// MovieDownload is an append-only usage event. Quota enforcement only ever
// counts rows per user inside a day window.
type MovieDownload struct {
	DownloadID string    `gorm:"column:download_id;primaryKey" json:"download_id"`
	UserID     string    `gorm:"column:user_id;index" json:"user_id"`
	MovieID    string    `gorm:"column:movie_id" json:"movie_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (MovieDownload) TableName() string { return "user_movie_downloads" }

// MovieLike is the per-(user, movie) like flag. One row per pair; repeat
// likes flip the flag instead of inserting a second row.
type MovieLike struct {
	LikeID    string    `gorm:"column:like_id;primaryKey" json:"like_id"`
	UserID    string    `gorm:"column:user_id;uniqueIndex:idx_user_movie" json:"user_id"`
	MovieID   string    `gorm:"column:movie_id;uniqueIndex:idx_user_movie" json:"movie_id"`
	Liked     bool      `gorm:"column:liked" json:"liked"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (MovieLike) TableName() string { return "user_movie_likes" }
