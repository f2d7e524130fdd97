package database

import (
	"fmt"
	"os"

	"github.com/heergandhi/axon-backend/internal/config"
	"github.com/heergandhi/axon-backend/internal/database/migrations"
	"github.com/heergandhi/axon-backend/internal/domain"
	"github.com/heergandhi/axon-backend/internal/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresDB opens the connection and brings the schema up to date.
// AutoMigrate covers the model tables; registered migrations cover anything
// AutoMigrate cannot express (data backfills, dropped columns).
func NewPostgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Habit{}, &domain.CheckIn{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	if _, err := os.Stat("migrations"); err == nil {
		if err := migrations.LoadSQLMigrations("migrations"); err != nil {
			return nil, fmt.Errorf("failed to load SQL migrations: %w", err)
		}
	}

	if err := migrations.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("database connection established and migrations completed")
	return db, nil
}
