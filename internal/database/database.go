package database

import (
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the pure-Go "sqlite" driver the dialector below names.
	_ "modernc.org/sqlite"
)

// Connect opens Postgres for postgres:// DSNs and falls back to SQLite for
// anything else (file path or :memory:), which local dev and tests use.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Info().Msg("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Info().Str("dsn", dsn).Msg("using SQLite")

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}
