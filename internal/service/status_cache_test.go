package service

import (
	"context"
	"testing"
	"time"

	"github.com/Manzzzx/barasakti/internal/dto"
	pkgredis "github.com/Manzzzx/barasakti/pkg/redis"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func sampleStatus() *dto.OrderStatus {
	return &dto.OrderStatus{
		ID:                "ORD-1700000000000-K3J9X2M1Q",
		Status:            "processing",
		CreatedAt:         "2025-06-01T12:00:00Z",
		EstimatedDelivery: "2025-06-08T12:00:00Z",
	}
}

func TestMemoryStatusCacheRoundTrip(t *testing.T) {
	cache := NewMemoryStatusCache(time.Minute)
	ctx := context.Background()
	status := sampleStatus()

	if _, ok := cache.Get(ctx, status.ID); ok {
		t.Fatal("Expected a cold cache to miss")
	}

	cache.Set(ctx, status.ID, status)

	got, ok := cache.Get(ctx, status.ID)
	if !ok {
		t.Fatal("Expected a hit after Set")
	}
	if *got != *status {
		t.Errorf("Expected %+v, got %+v", status, got)
	}
}

func TestRedisStatusCacheRoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cache := NewRedisStatusCache(pkgredis.NewClientFromRDB(rdb), time.Minute)
	ctx := context.Background()
	status := sampleStatus()

	if _, ok := cache.Get(ctx, status.ID); ok {
		t.Fatal("Expected a cold cache to miss")
	}

	cache.Set(ctx, status.ID, status)

	got, ok := cache.Get(ctx, status.ID)
	if !ok {
		t.Fatal("Expected a hit after Set")
	}
	if *got != *status {
		t.Errorf("Expected %+v, got %+v", status, got)
	}

	// Entries expire with the configured TTL
	srv.FastForward(2 * time.Minute)
	if _, ok := cache.Get(ctx, status.ID); ok {
		t.Error("Expected the entry to expire")
	}
}
