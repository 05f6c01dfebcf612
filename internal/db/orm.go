package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	gormModels "pilotbid/bidboard/internal/models/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM opens the primary GORM connection.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	return db, nil
}

// InitSQLiteORM opens a file-backed (or :memory:) SQLite database for
// local development and tests.
func InitSQLiteORM(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	PgDB = db
	return db, nil
}

// AutoMigrate creates or updates the bidboard tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&gormModels.Pairing{},
		&gormModels.Preference{},
		&gormModels.APIKey{},
	)
}
