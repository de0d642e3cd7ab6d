package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"streamfix/internal/cache"
	"streamfix/internal/config"
	"streamfix/internal/database"
	"streamfix/internal/kakao"
	"streamfix/internal/middleware"
	"streamfix/internal/modules/movie"
	"streamfix/internal/modules/subscription"
	"streamfix/internal/modules/token"
	"streamfix/internal/modules/user"
	jwtsvc "streamfix/internal/pkg/jwt"
	"streamfix/internal/repository"
	"streamfix/internal/tmdb"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}

	signer, err := jwtsvc.New(cfg.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("jwt service init failed")
	}

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	downloadRepo := repository.NewDownloadRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	historyRepo := repository.NewUserHistoryRepository(db)

	var pageCache movie.PageCache
	if cfg.RedisAddr != "" {
		c := cache.New(cfg.RedisAddr)
		defer c.Close()
		pageCache = c
	}

	tmdbClient := tmdb.NewClient(cfg.TmdbBaseURL, cfg.TmdbAPIToken)
	kakaoClient := kakao.NewClient(cfg.KakaoClientID, cfg.KakaoClientSecret, cfg.KakaoRedirectURI)

	policies, err := movie.DefaultPolicyRegistry()
	if err != nil {
		log.Fatal().Err(err).Msg("policy registry init failed")
	}

	tokenService := token.NewService(tokenRepo, userRepo, signer, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	subscriptionService := subscription.NewService(subscriptionRepo)
	userService := user.NewService(userRepo, tokenService, subscriptionService, kakaoClient)
	movieService := movie.NewService(movieRepo, downloadRepo, likeRepo, policies, pageCache, tmdbClient)

	userHandler := user.NewHandler(userService)
	subscriptionHandler := subscription.NewHandler(subscriptionService)
	movieHandler := movie.NewHandler(movieService, subscriptionRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.Metrics())

	r.GET("/metrics", middleware.MetricsHandler())

	v1 := r.Group("/api/v1")
	{
		userHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(signer))
		protected.Use(middleware.History(historyRepo))
		{
			subscriptionHandler.RegisterRoutes(protected)
		}

		movieHandler.RegisterRoutes(v1, protected)
	}

	log.Info().Str("addr", cfg.HTTPAddr).Msg("starting api server")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
