package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service. Values come from the
// environment; DATABASE_URL is the only required one.
type Config struct {
	// Server configuration
	ServerPort string

	// Database configuration
	DatabaseURL  string
	DBMaxRetries int
	DBRetryDelay time.Duration

	// Optional Redis cache; empty disables caching
	RedisURL string

	// CSV source for the admin bulk import
	CSVPath string

	// Logging
	LogLevel    string
	LogEncoding string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_MAX_RETRIES", 10)
	v.SetDefault("DB_RETRY_DELAY", "3s")
	v.SetDefault("CSV_PATH", "./data-externa/recetas_externas.csv")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_ENCODING", "json")

	cfg := &Config{
		ServerPort:   v.GetString("PORT"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		DBMaxRetries: v.GetInt("DB_MAX_RETRIES"),
		DBRetryDelay: v.GetDuration("DB_RETRY_DELAY"),
		RedisURL:     v.GetString("REDIS_URL"),
		CSVPath:      v.GetString("CSV_PATH"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogEncoding:  v.GetString("LOG_ENCODING"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.DBMaxRetries < 1 {
		cfg.DBMaxRetries = 1
	}

	return cfg, nil
}
