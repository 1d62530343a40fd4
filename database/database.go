package database

import (
	"fmt"

	"github.com/akozyreva/coursehub/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the postgres connection used by every repository.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
	)

	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.Name).Msg("Database connection established")
	return db, nil
}

// gormConfig enables driver error translation: without it the postgres driver
// reports a unique-index violation as a raw pgconn error instead of
// gorm.ErrDuplicatedKey, and the duplicate-submission insert path depends on
// matching that sentinel.
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}
