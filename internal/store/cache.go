package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/villagehq/village/internal/config"
	"github.com/villagehq/village/internal/logger"
	"github.com/villagehq/village/internal/model"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultCacheTTL = 5 * time.Minute

// Cache is a read-through Redis cache for entity lookups. A nil *Cache is
// valid and disables caching.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache connects to Redis per cfg. Returns nil (caching disabled) when
// cfg is nil or disabled; returns an error when the configured server is
// unreachable.
func NewCache(cfg *config.RedisConfig) (*Cache, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	ttl := defaultCacheTTL
	if cfg.TTL > 0 {
		ttl = time.Duration(cfg.TTL) * time.Second
	}
	return &Cache{client: client, ttl: ttl}, nil
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

func entityKey(guid int64) string {
	return fmt.Sprintf("entity:%d", guid)
}

func (c *Cache) getEntity(ctx context.Context, guid int64) *model.Entity {
	if c == nil {
		return nil
	}

	data, err := c.client.Get(ctx, entityKey(guid)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("entity cache read failed", zap.Int64("guid", guid), zap.Error(err))
		}
		return nil
	}

	var e model.Entity
	if err := json.Unmarshal(data, &e); err != nil {
		return nil
	}
	return &e
}

func (c *Cache) putEntity(ctx context.Context, e *model.Entity) {
	if c == nil || e == nil {
		return
	}

	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, entityKey(e.GUID), data, c.ttl).Err(); err != nil {
		logger.Warn("entity cache write failed", zap.Int64("guid", e.GUID), zap.Error(err))
	}
}
