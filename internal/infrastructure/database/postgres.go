package database

import (
	"fmt"

	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mautops/next-better-auth/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError is enabled so
// unique constraint violations surface as gorm.ErrDuplicatedKey and the
// repositories can map them to domain conflicts; the database constraint,
// not the pre-check query, is the race-safe source of truth.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates or updates the schema for all persisted aggregates
// plus the Casbin policy table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBToken{},
		&repositories.DBProject{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	if _, err := gormadapter.NewAdapterByDB(db); err != nil {
		return fmt.Errorf("failed to initialize Casbin GORM adapter: %w", err)
	}

	return nil
}
