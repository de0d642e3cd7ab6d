package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"streamfix/internal/config"
	"streamfix/internal/database"
	"streamfix/internal/modules/movie"
	"streamfix/internal/repository"
	"streamfix/internal/tmdb"
)

func main() {
	pages := flag.Int("pages", 5, "maximum number of upstream pages to import")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}

	policies, err := movie.DefaultPolicyRegistry()
	if err != nil {
		log.Fatal().Err(err).Msg("policy registry init failed")
	}

	svc := movie.NewService(
		repository.NewMovieRepository(db),
		repository.NewDownloadRepository(db),
		repository.NewLikeRepository(db),
		policies,
		nil,
		tmdb.NewClient(cfg.TmdbBaseURL, cfg.TmdbAPIToken),
	)

	ctx := context.Background()
	total := 0
	for page := 1; page <= *pages; page++ {
		imported, hasNext, err := svc.IngestPage(ctx, page)
		if err != nil {
			log.Fatal().Err(err).Int("page", page).Msg("ingest failed")
		}
		total += imported
		log.Info().Int("page", page).Int("imported", imported).Msg("page ingested")
		if !hasNext {
			break
		}
	}

	log.Info().Int("total", total).Msg("ingest complete")
}
