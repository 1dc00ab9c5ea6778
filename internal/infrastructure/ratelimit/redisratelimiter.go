package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter keeps one Redis sorted set per key and window, with
// request timestamps as both score and member. Every check trims entries
// older than the window before counting, so the window slides.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{client: client}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, quota Quota) (bool, error) {
	now := time.Now()

	for _, w := range quota {
		if w.Limit <= 0 {
			continue
		}

		setKey := fmt.Sprintf("ratelimit:%s:%s", key, w.Per)
		cutoff := now.Add(-w.Per).UnixNano()

		pipe := l.client.Pipeline()
		pipe.ZRemRangeByScore(ctx, setKey, "0", strconv.FormatInt(cutoff, 10))
		count := pipe.ZCard(ctx, setKey)
		pipe.ZAdd(ctx, setKey, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
		pipe.Expire(ctx, setKey, w.Per+time.Minute)

		if _, err := pipe.Exec(ctx); err != nil {
			return false, fmt.Errorf("rate limit check on %s: %w", setKey, err)
		}

		if count.Val() >= int64(w.Limit) {
			return false, nil
		}
	}

	return true, nil
}
