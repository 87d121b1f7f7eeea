package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/Manzzzx/barasakti/internal/constants"
	"github.com/Manzzzx/barasakti/pkg/redis"
)

// RedisLimiter shares fixed-window counters across processes through Redis.
// When Redis is unreachable the error is surfaced to the caller; the
// middleware admits the request without quota headers rather than report
// counts that were never taken.
type RedisLimiter struct {
	client     *redis.Client
	name       string
	maxRequest int
	window     time.Duration
	now        func() time.Time
}

func NewRedisLimiter(client *redis.Client, name string, maxRequest int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:     client,
		name:       name,
		maxRequest: maxRequest,
		window:     window,
		now:        time.Now,
	}
}

func (l *RedisLimiter) Check(ctx context.Context, identifier string) (Decision, error) {
	key := constants.CacheKeyRateLimit + l.name + ":" + identifier

	count, ttl, err := l.client.IncrWindow(ctx, key, l.window)
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit store unavailable for %s: %w", l.name, err)
	}

	remaining := l.maxRequest - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   count <= int64(l.maxRequest),
		Limit:     l.maxRequest,
		Remaining: remaining,
		Reset:     l.now().Add(ttl),
	}, nil
}
