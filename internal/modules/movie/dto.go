package movie

import "streamfix/internal/domain"

// ClientMovie is one upstream catalog entry as served to clients.
type ClientMovie struct {
	MovieName  string `json:"movie_name"`
	IsAdult    bool   `json:"is_adult"`
	Genre      string `json:"genre"`
	Overview   string `json:"overview"`
	ReleasedAt string `json:"released_at"`
}

// ClientPage is one page of upstream results, cacheable as JSON.
type ClientPage struct {
	Page    int           `json:"page"`
	HasNext bool          `json:"has_next"`
	Movies  []ClientMovie `json:"movies"`
}

type SearchResponse struct {
	Page    int            `json:"page"`
	HasNext bool           `json:"has_next"`
	Movies  []domain.Movie `json:"movies"`
}

type DownloadResponse struct {
	MovieID   string `json:"movie_id"`
	MovieName string `json:"movie_name"`
}

type LikeResponse struct {
	MovieID string `json:"movie_id"`
	Liked   bool   `json:"liked"`
}
