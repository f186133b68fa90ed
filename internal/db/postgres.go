package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/setforge/setforge-backend/internal/domain"
	"github.com/setforge/setforge-backend/internal/platform/config"
	"github.com/setforge/setforge-backend/internal/platform/logger"
)

// PostgresService owns the application's database handle.
type PostgresService struct {
	DB  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(cfg config.DatabaseConfig, log *logger.Logger) (*PostgresService, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	log.Info("connected to postgres", "host", cfg.Host, "database", cfg.Name)
	return &PostgresService{DB: gormDB, log: log.With("component", "postgres")}, nil
}

// AutoMigrateAll creates the uuid extension and migrates every model.
func (s *PostgresService) AutoMigrateAll() error {
	if err := s.DB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("create uuid extension: %w", err)
	}
	if err := s.DB.AutoMigrate(
		&domain.Exercise{},
		&domain.Workout{},
		&domain.WorkoutExercise{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	s.log.Info("database migration complete")
	return nil
}

func (s *PostgresService) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
