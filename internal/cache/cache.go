// Package cache provides a redis cache-aside layer for analysis responses.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/channel-lens/channel-analyzer-go/internal/models"
	"github.com/channel-lens/channel-analyzer-go/internal/service"
	"github.com/channel-lens/channel-analyzer-go/pkg/logger"
)

// Cache stores serialized analysis responses keyed by request parameters.
// A Cache with a nil client is valid; all operations become no-ops.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to redis and returns a Cache. An empty URL or a failed
// connection yields a disabled cache rather than an error; analysis still
// works, just without reuse.
func New(redisURL string, ttl time.Duration) *Cache {
	if redisURL == "" {
		logger.Log.Info("redis not configured, response caching disabled")
		return &Cache{ttl: ttl}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Log.Warn("invalid redis URL, response caching disabled", zap.Error(err))
		return &Cache{ttl: ttl}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warn("redis connection failed, response caching disabled", zap.Error(err))
		return &Cache{ttl: ttl}
	}

	logger.Log.Info("redis connected, response caching enabled")
	return &Cache{rdb: rdb, ttl: ttl}
}

// Enabled reports whether a redis connection is available.
func (c *Cache) Enabled() bool {
	return c.rdb != nil
}

// Get retrieves a cached serialized analysis. A nil slice means not cached.
func (c *Cache) Get(ctx context.Context, req *models.AnalysisRequest) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}

	data, err := c.rdb.Get(ctx, Key(req)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// Set stores a serialized analysis response under the request's key.
func (c *Cache) Set(ctx context.Context, req *models.AnalysisRequest, data []byte) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Set(ctx, Key(req), data, c.ttl).Err()
}

// Ping checks the redis connection for health reporting.
func (c *Cache) Ping(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

// Close shuts down the redis connection.
func (c *Cache) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

// Key derives the cache key for a request from the extracted channel
// identifier plus count, order and timezone. Keying on the identifier lets
// different URL shapes for the same channel share an entry. URLs that match
// no known shape key on the raw URL; those requests fail validation before
// anything is stored.
func Key(req *models.AnalysisRequest) string {
	id := service.ExtractChannelIdentifier(req.ChannelURL)
	if id == "" {
		id = req.ChannelURL
	}
	return fmt.Sprintf("analysis:%s:%d:%s:%s", id, req.VideoCount, req.SortOrder, req.Timezone)
}
