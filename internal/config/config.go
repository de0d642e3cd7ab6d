package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAccessTokenTTL  = "3h"
	defaultRefreshTokenTTL = "24h"
	defaultHTTPAddr        = ":8080"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultTmdbBaseURL     = "https://api.themoviedb.org/3"
)

// RuntimeConfig is everything the binaries read from the environment.
// The JWT secret is process-wide: rotating it invalidates every
// outstanding token.
type RuntimeConfig struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	RedisAddr string

	TmdbBaseURL  string
	TmdbAPIToken string

	KakaoClientID     string
	KakaoClientSecret string
	KakaoRedirectURI  string
}

func Load() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.TmdbBaseURL = strings.TrimSpace(getEnv("TMDB_BASE_URL", defaultTmdbBaseURL))
	cfg.TmdbAPIToken = strings.TrimSpace(os.Getenv("TMDB_API_TOKEN"))
	cfg.KakaoClientID = strings.TrimSpace(os.Getenv("KAKAO_CLIENT_ID"))
	cfg.KakaoClientSecret = strings.TrimSpace(os.Getenv("KAKAO_CLIENT_SECRET"))
	cfg.KakaoRedirectURI = strings.TrimSpace(os.Getenv("KAKAO_REDIRECT_URI"))

	var err error
	cfg.AccessTokenTTL, err = parseDurationEnv("ACCESS_TOKEN_TTL", defaultAccessTokenTTL)
	if err != nil {
		return nil, err
	}
	cfg.RefreshTokenTTL, err = parseDurationEnv("REFRESH_TOKEN_TTL", defaultRefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *RuntimeConfig) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if cfg.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL must be > 0")
	}
	if cfg.RefreshTokenTTL <= 0 {
		return fmt.Errorf("REFRESH_TOKEN_TTL must be > 0")
	}
	if cfg.AccessTokenTTL > cfg.RefreshTokenTTL {
		return fmt.Errorf("ACCESS_TOKEN_TTL must not exceed REFRESH_TOKEN_TTL")
	}

	if isProdLike(cfg.AppEnv) && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}

	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
