// Package cache provides a Redis-backed response cache for read-heavy
// schedule endpoints. The cache degrades to a no-op when Redis is
// unavailable so the API never depends on it.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mmqops/booking-api/internal/config"
)

// NewRedisClient connects to Redis using the given config. Returns nil when
// no address is configured or the server doesn't answer a ping; callers get
// a disabled cache in that case.
func NewRedisClient(conf *config.RedisConfig) *redis.Client {
	if conf == nil || conf.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unreachable, response cache disabled", zap.Error(err))
		return nil
	}

	return client
}

type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func New(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	if prefix == "" {
		prefix = "cache"
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return &Cache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *Cache) key(k string) string {
	return c.prefix + ":" + k
}

func (c *Cache) Get(ctx context.Context, k string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}

	val, err := c.client.Get(ctx, c.key(k)).Bytes()
	if err != nil {
		return nil, false
	}

	return val, true
}

func (c *Cache) Set(ctx context.Context, k string, val []byte) {
	if !c.Enabled() {
		return
	}

	if err := c.client.Set(ctx, c.key(k), val, c.ttl).Err(); err != nil {
		zap.L().Warn("cache set failed", zap.String("key", k), zap.Error(err))
	}
}

// InvalidateAll drops every entry under the cache prefix. Called after any
// schedule write so the month views never serve stale grids. Uses SCAN
// rather than KEYS to stay polite to a shared Redis.
func (c *Cache) InvalidateAll(ctx context.Context) {
	if !c.Enabled() {
		return
	}

	iter := c.client.Scan(ctx, 0, c.prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			zap.L().Warn("cache invalidate failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		zap.L().Warn("cache scan failed", zap.Error(err))
	}
}
