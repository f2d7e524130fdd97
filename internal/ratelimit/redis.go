package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/heergandhi/axon-backend/internal/logger"
	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts requests per key in a fixed window backed by a shared
// Redis instance, so the limit holds across process restarts and multiple
// replicas. Keys expire with the window; no eviction bookkeeping needed.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(host, port string, limit int, window time.Duration) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisLimiter{client: client, limit: limit, window: window}, nil
}

// Allow increments the key's window counter and permits the request while
// the counter is within the limit. Redis being unreachable fails open: the
// guarded endpoints are non-critical enhancements and locking every caller
// out on an infra blip is the worse trade.
func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	redisKey := "ratelimit:" + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		logger.Warn("rate limiter unavailable, allowing request", "error", err)
		return true
	}
	if count == 1 {
		if err := l.client.PExpire(ctx, redisKey, l.window).Err(); err != nil {
			logger.Warn("failed to set rate limit TTL", "key", key, "error", err)
		}
	}
	return count <= int64(l.limit)
}
