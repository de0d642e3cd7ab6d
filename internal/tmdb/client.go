package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client fetches now-playing pages from a TMDB-compatible movie API.
type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client
}

// Movie is one upstream catalog entry.
type Movie struct {
	Title       string  `json:"title"`
	Adult       bool    `json:"adult"`
	GenreIDs    []int64 `json:"genre_ids"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
}

// Page is one page of upstream results.
type Page struct {
	Movies  []Movie
	Page    int
	HasNext bool
}

type nowPlayingResponse struct {
	Results    []Movie `json:"results"`
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
}

func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiToken: apiToken,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchNowPlaying returns one page of now-playing movies. Pages are 1-based.
func (c *Client) FetchNowPlaying(ctx context.Context, page int) (*Page, error) {
	url := c.baseURL + "/movie/now_playing?language=ko-KR&page=" + strconv.Itoa(page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb now_playing page %d: unexpected status %d", page, resp.StatusCode)
	}

	var body nowPlayingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("tmdb now_playing page %d: decode: %w", page, err)
	}

	return &Page{
		Movies:  body.Results,
		Page:    page,
		HasNext: page < body.TotalPages,
	}, nil
}

// GenreLabel flattens upstream genre ids to the comma-joined string the
// catalog stores.
func GenreLabel(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
