package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/recetasproyecto/ms-catalogo/config"
	"github.com/recetasproyecto/ms-catalogo/internal/model"
)

// Connect opens the Postgres connection, retrying a bounded number of times
// with a fixed delay so the service survives the database coming up after
// it. Blocks until connected or the attempts are exhausted.
func Connect(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= cfg.DBMaxRetries; attempt++ {
		db, err := open(cfg.DatabaseURL)
		if err == nil {
			log.Info("connected to database", zap.Int("attempt", attempt))
			return db, nil
		}
		lastErr = err
		log.Warn("database not ready, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", cfg.DBMaxRetries),
			zap.Duration("delay", cfg.DBRetryDelay),
			zap.Error(err))
		if attempt < cfg.DBMaxRetries {
			time.Sleep(cfg.DBRetryDelay)
		}
	}
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", cfg.DBMaxRetries, lastErr)
}

func open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// AutoMigrate creates or updates the recetas table. Deliberately
// non-destructive: no drop-and-recreate at startup.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Recipe{})
}

// HealthCheck pings the underlying connection.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
