package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/recetasproyecto/ms-catalogo/config"
)

// NewRedisClient builds the optional cache client. Returns nil when no URL
// is configured or Redis is unreachable; the service runs without caching
// in that case.
func NewRedisClient(cfg *config.Config, log *zap.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Warn("invalid REDIS_URL, continuing without cache", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, continuing without cache", zap.Error(err))
		return nil
	}

	return client
}
