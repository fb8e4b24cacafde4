package cache

import (
	"context"
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to Redis for dashboard snapshot caching.
// Returns nil when Redis is disabled or unreachable; callers degrade to
// computing every request.
func NewRedisClient(config utils.RedisConfig, log *zap.Logger) *redis.Client {
	if !config.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, dashboard cache disabled",
			zap.Error(err),
			zap.String("addr", config.Addr),
		)
		return nil
	}

	log.Info("Redis connected", zap.String("addr", config.Addr))
	return client
}
