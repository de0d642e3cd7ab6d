package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTokenURL   = "https://kauth.kakao.com/oauth/token"
	defaultProfileURL = "https://kapi.kakao.com/v2/user/me"
)

// Client completes the Kakao OAuth handshake: authorization code to access
// token, access token to profile. The core only ever sees the resolved
// provider id.
type Client struct {
	clientID     string
	clientSecret string
	redirectURI  string

	// Overridable in tests.
	TokenURL   string
	ProfileURL string

	http *http.Client
}

// Profile is the slice of the Kakao account the platform uses.
type Profile struct {
	ProviderID string
	Nickname   string
}

func NewClient(clientID, clientSecret, redirectURI string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		TokenURL:     defaultTokenURL,
		ProfileURL:   defaultProfileURL,
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

// GetAccessToken exchanges an authorization code for a provider access token.
func (c *Client) GetAccessToken(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("redirect_uri", c.redirectURI)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("kakao token exchange: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("kakao token exchange: decode: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("kakao token exchange: empty access_token")
	}
	return body.AccessToken, nil
}

// GetProfile resolves the provider account behind an access token.
func (c *Client) GetProfile(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ProfileURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kakao profile: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		ID         int64 `json:"id"`
		Properties struct {
			Nickname string `json:"nickname"`
		} `json:"properties"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("kakao profile: decode: %w", err)
	}
	if body.ID == 0 {
		return nil, fmt.Errorf("kakao profile: missing account id")
	}

	return &Profile{
		ProviderID: strconv.FormatInt(body.ID, 10),
		Nickname:   body.Properties.Nickname,
	}, nil
}
