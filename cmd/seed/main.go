package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"streamfix/internal/config"
	"streamfix/internal/database"
	"streamfix/internal/domain"
	"streamfix/internal/repository"
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

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Token{},
		&domain.Subscription{},
		&domain.Movie{},
		&domain.MovieDownload{},
		&domain.MovieLike{},
		&domain.UserHistory{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("automigrate failed")
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	subs := repository.NewSubscriptionRepository(db)
	movies := repository.NewMovieRepository(db)

	demoEmail := "demo@streamfix.local"
	exists, err := users.ExistsByEmail(ctx, demoEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("seed check failed")
	}
	if !exists {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash failed")
		}

		u := &domain.User{
			UserID:   uuid.NewString(),
			UserName: "demo",
			Email:    demoEmail,
			Password: string(hash),
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal().Err(err).Msg("demo user seed failed")
		}
		if err := subs.Create(ctx, domain.NewSubscription(u.UserID)); err != nil {
			log.Fatal().Err(err).Msg("demo subscription seed failed")
		}
		log.Info().Str("email", demoEmail).Msg("seeded demo user")
	}

	demoMovies := []domain.Movie{
		{MovieName: "Oldboy", Genre: "53,18", Overview: "A man imprisoned for fifteen years is released and hunts his captor.", ReleasedAt: "2003-11-21"},
		{MovieName: "The Host", Genre: "27,18,878", Overview: "A monster emerges from the Han River and a family fights to get their daughter back.", ReleasedAt: "2006-07-27"},
		{MovieName: "Decision to Leave", Genre: "9648,53,10749", Overview: "A detective investigating a death becomes entangled with the widow.", ReleasedAt: "2022-06-29"},
	}
	for _, m := range demoMovies {
		exists, err := movies.ExistsByName(ctx, m.MovieName)
		if err != nil {
			log.Fatal().Err(err).Msg("movie seed check failed")
		}
		if exists {
			continue
		}
		m.MovieID = uuid.NewString()
		if err := movies.Create(ctx, &m); err != nil {
			log.Fatal().Err(err).Msg("movie seed failed")
		}
		log.Info().Str("movie", m.MovieName).Msg("seeded movie")
	}

	log.Info().Msg("seed complete")
}
