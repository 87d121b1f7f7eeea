package ratelimit

import (
	"context"
	"testing"
	"time"

	pkgredis "github.com/Manzzzx/barasakti/pkg/redis"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestRedisLimiter(t *testing.T, maxRequest int, window time.Duration) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewRedisLimiter(pkgredis.NewClientFromRDB(rdb), "test", maxRequest, window), srv
}

func TestRedisLimiterBoundary(t *testing.T) {
	limiter, _ := newTestRedisLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		decision, err := limiter.Check(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("Unexpected error on request %d: %v", i, err)
		}
		if !decision.Allowed {
			t.Fatalf("Expected request %d of 3 to be allowed", i)
		}
		if decision.Remaining != 3-i {
			t.Errorf("Expected remaining %d, got %d", 3-i, decision.Remaining)
		}
	}

	decision, err := limiter.Check(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if decision.Allowed {
		t.Error("Expected request 4 to be rejected")
	}
	if decision.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", decision.Remaining)
	}
}

func TestRedisLimiterWindowExpiry(t *testing.T) {
	limiter, srv := newTestRedisLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if d, _ := limiter.Check(ctx, "10.0.0.1"); !d.Allowed {
		t.Fatal("Expected the first request to be allowed")
	}
	if d, _ := limiter.Check(ctx, "10.0.0.1"); d.Allowed {
		t.Fatal("Expected the second request to be rejected")
	}

	srv.FastForward(time.Minute)

	if d, _ := limiter.Check(ctx, "10.0.0.1"); !d.Allowed {
		t.Error("Expected a fresh window after the key expired")
	}
}

func TestRedisLimiterSurfacesBackendError(t *testing.T) {
	limiter, srv := newTestRedisLimiter(t, 1, time.Minute)
	ctx := context.Background()

	srv.Close()

	if _, err := limiter.Check(ctx, "10.0.0.1"); err == nil {
		t.Error("Expected a backend error when the store is down")
	}
}
