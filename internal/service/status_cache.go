package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Manzzzx/barasakti/internal/constants"
	"github.com/Manzzzx/barasakti/internal/dto"
	"github.com/Manzzzx/barasakti/pkg/cache"
	"github.com/Manzzzx/barasakti/pkg/logger"
	"github.com/Manzzzx/barasakti/pkg/redis"
	"go.uber.org/zap"
)

// OrderStatusCache keeps recent status lookups hot. Misses and backend
// failures are both treated as a miss; the cache never fails a lookup.
type OrderStatusCache interface {
	Get(ctx context.Context, id string) (*dto.OrderStatus, bool)
	Set(ctx context.Context, id string, status *dto.OrderStatus)
}

// MemoryStatusCache backs the status cache with the in-process TTL cache.
type MemoryStatusCache struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewMemoryStatusCache(ttl time.Duration) *MemoryStatusCache {
	return &MemoryStatusCache{
		cache: cache.NewCache(),
		ttl:   ttl,
	}
}

func (c *MemoryStatusCache) Get(_ context.Context, id string) (*dto.OrderStatus, bool) {
	data, ok := c.cache.Get(constants.CacheKeyOrder + id)
	if !ok {
		return nil, false
	}

	var status dto.OrderStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, false
	}
	return &status, true
}

func (c *MemoryStatusCache) Set(_ context.Context, id string, status *dto.OrderStatus) {
	data, err := json.Marshal(status)
	if err != nil {
		return
	}
	c.cache.Set(constants.CacheKeyOrder+id, data, c.ttl)
}

// RedisStatusCache shares status lookups across processes.
type RedisStatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatusCache(client *redis.Client, ttl time.Duration) *RedisStatusCache {
	return &RedisStatusCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisStatusCache) Get(ctx context.Context, id string) (*dto.OrderStatus, bool) {
	data, err := c.client.GetJSON(ctx, constants.CacheKeyOrder+id)
	if err != nil || data == nil {
		return nil, false
	}

	var status dto.OrderStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, false
	}
	return &status, true
}

func (c *RedisStatusCache) Set(ctx context.Context, id string, status *dto.OrderStatus) {
	data, err := json.Marshal(status)
	if err != nil {
		return
	}
	if err := c.client.SetJSON(ctx, constants.CacheKeyOrder+id, data, c.ttl); err != nil {
		logger.GetLogger().Debug("Order status cache write skipped",
			zap.String("order_id", id),
			zap.Error(err),
		)
	}
}
