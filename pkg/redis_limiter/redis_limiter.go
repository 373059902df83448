package redis_limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// fixedWindowScript increments the window counter and starts its expiry on first use.
// Returns the count after the increment.
var fixedWindowScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('EXPIRE', KEYS[1], tonumber(ARGV[1]))
end
return count`)

// RedisLimiter is a fixed-window request counter shared across server instances
type RedisLimiter struct {
	client      *redis.Client
	maxRequests int
	keyPrefix   string
	window      time.Duration
	logger      *logrus.Logger
}

// NewRedisLimiter creates a limiter allowing maxRequests per window for each key
func NewRedisLimiter(client *redis.Client, maxRequests int, keyPrefix string, window time.Duration, logger *logrus.Logger) *RedisLimiter {
	if window < time.Second {
		window = time.Second
	}
	return &RedisLimiter{
		client:      client,
		maxRequests: maxRequests,
		keyPrefix:   keyPrefix,
		window:      window,
		logger:      logger,
	}
}

// Allow counts one request for key and reports whether it is within the limit,
// together with the requests left in the current window
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, int, error) {
	redisKey := rl.keyPrefix + key

	result, err := fixedWindowScript.Run(ctx, rl.client, []string{redisKey}, int(rl.window.Seconds())).Result()
	if err != nil {
		return false, 0, fmt.Errorf("run rate limit script: %w", err)
	}

	count, ok := result.(int64)
	if !ok {
		return false, 0, fmt.Errorf("unexpected rate limit script result %T", result)
	}

	if int(count) > rl.maxRequests {
		rl.logger.WithFields(logrus.Fields{
			"key":   key,
			"count": count,
			"limit": rl.maxRequests,
		}).Warn("rate limit exceeded")
		return false, 0, nil
	}

	return true, rl.maxRequests - int(count), nil
}

// GetMaxRequests returns the per-window limit
func (rl *RedisLimiter) GetMaxRequests() int {
	return rl.maxRequests
}
