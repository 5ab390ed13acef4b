package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-booking/internal/logger"
)

// SlotsCache caches the availability response per date. Purely an
// optimization: a miss or a cache failure falls through to the store.
type SlotsCache interface {
	Get(ctx context.Context, date time.Time) ([]string, bool)
	Set(ctx context.Context, date time.Time, slots []string)
	Invalidate(ctx context.Context, date time.Time)
}

const slotsKeyPrefix = "booking:available-slots:"

func slotsKey(date time.Time) string {
	return fmt.Sprintf("%s%s", slotsKeyPrefix, date.Format("2006-01-02"))
}

// --------------------------------------------------
// Redis
// --------------------------------------------------

type RedisSlotsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSlotsCache(client *redis.Client, ttl time.Duration) SlotsCache {
	return &RedisSlotsCache{client: client, ttl: ttl}
}

func (c *RedisSlotsCache) Get(ctx context.Context, date time.Time) ([]string, bool) {
	val, err := c.client.Get(ctx, slotsKey(date)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(val), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *RedisSlotsCache) Set(ctx context.Context, date time.Time, slots []string) {
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, slotsKey(date), data, c.ttl).Err(); err != nil {
		logger.Get().Warn("slots cache set failed", zap.Error(err))
	}
}

func (c *RedisSlotsCache) Invalidate(ctx context.Context, date time.Time) {
	if err := c.client.Del(ctx, slotsKey(date)).Err(); err != nil {
		logger.Get().Warn("slots cache invalidate failed", zap.Error(err))
	}
}

// --------------------------------------------------
// Noop (no Redis configured)
// --------------------------------------------------

type noopSlotsCache struct{}

func NewNoopSlotsCache() SlotsCache {
	return noopSlotsCache{}
}

func (noopSlotsCache) Get(context.Context, time.Time) ([]string, bool) { return nil, false }
func (noopSlotsCache) Set(context.Context, time.Time, []string)        {}
func (noopSlotsCache) Invalidate(context.Context, time.Time)           {}
