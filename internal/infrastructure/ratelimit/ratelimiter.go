package ratelimit

import (
	"context"
	"time"
)

// Window caps the number of requests allowed inside one rolling duration.
type Window struct {
	Per   time.Duration
	Limit int
}

// Quota is a set of rolling windows applied together. A request passes
// only when it fits inside every window; windows with a non-positive
// limit are ignored.
type Quota []Window

func PerMinute(limit int) Window { return Window{Per: time.Minute, Limit: limit} }
func PerHour(limit int) Window   { return Window{Per: time.Hour, Limit: limit} }

type RateLimiter interface {
	Allow(ctx context.Context, key string, quota Quota) (bool, error)
}
