package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tesoreria-paralelo/backend/internal/models"
	"gorm.io/gorm"
)

// Connect opens the database with the given dialector and configures
// the connection pool.
func Connect(dialector func(string) gorm.Dialector, dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: models.NewLogger(log.Logger),
	}

	db, err := gorm.Open(dialector(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// SQLite only supports one writer. A single connection prevents SQLITE_BUSY errors.
	if db.Dialector.Name() == "sqlite" {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
