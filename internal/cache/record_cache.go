package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/change-adapter/internal/domain"
)

const recordListKey = "change-adapter:records:list"

// RecordCache keeps the last successful record list in Redis so repeated
// host reads do not hammer the remote service. Cache failures degrade to
// misses; they never surface to callers.
type RecordCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRecordCache builds the cache; a zero TTL disables it.
func NewRecordCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RecordCache {
	return &RecordCache{client: client, ttl: ttl, logger: logger}
}

// GetList returns the cached record list, if any.
func (c *RecordCache) GetList(ctx context.Context) ([]domain.ChangeRecord, bool) {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return nil, false
	}

	raw, err := c.client.Get(ctx, recordListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("record cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var records []domain.ChangeRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		c.logger.Warn("record cache entry corrupt; dropping", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}
	return records, true
}

// SetList stores a successful record list.
func (c *RecordCache) SetList(ctx context.Context, records []domain.ChangeRecord) {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return
	}

	raw, err := json.Marshal(records)
	if err != nil {
		c.logger.Warn("record cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, recordListKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("record cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached list, e.g. after a create.
func (c *RecordCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, recordListKey).Err(); err != nil {
		c.logger.Warn("record cache invalidate failed", zap.Error(err))
	}
}
