package cache

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
	"golang.org/x/sync/singleflight"
)

// PayloadCache caches raw upstream payloads with a caller-chosen freshness window.
type PayloadCache interface {
	GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) ([]byte, error)) ([]byte, error)
}

// MemoryPayloadCache adapts Store to PayloadCache.
type MemoryPayloadCache struct {
	store *Store
}

func NewMemoryPayloadCache(store *Store) *MemoryPayloadCache {
	return &MemoryPayloadCache{store: store}
}

// Store returns the backing store so its janitor can be scheduled.
func (c *MemoryPayloadCache) Store() *Store {
	return c.store
}

func (c *MemoryPayloadCache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) ([]byte, error)) ([]byte, error) {
	v, err := c.store.GetOrLoadTTL(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return nil, err
	}
	raw, ok := v.([]byte)
	if !ok {
		return nil, errors.Newf("unexpected cached payload type %T", v)
	}
	return raw, nil
}

// RedisPayloadCache shares cached payloads between replicas through Redis.
// Redis errors degrade to a direct load so the cache never fails a request.
type RedisPayloadCache struct {
	client      redis.UniversalClient
	prefix      string
	loadTimeout time.Duration
	flight      singleflight.Group
	observer    Observer
	logger      *logging.Logger
}

func NewRedisPayloadCache(client redis.UniversalClient, prefix string) *RedisPayloadCache {
	return &RedisPayloadCache{client: client, prefix: prefix, logger: logging.NewNop()}
}

func (c *RedisPayloadCache) WithObserver(o Observer) *RedisPayloadCache {
	c.observer = o
	return c
}

func (c *RedisPayloadCache) WithLogger(l *logging.Logger) *RedisPayloadCache {
	if l != nil {
		c.logger = l
	}
	return c
}

// WithLoadTimeout bounds a shared load once it is detached from its callers.
func (c *RedisPayloadCache) WithLoadTimeout(d time.Duration) *RedisPayloadCache {
	c.loadTimeout = d
	return c
}

func (c *RedisPayloadCache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) ([]byte, error)) ([]byte, error) {
	if loader == nil {
		return nil, errors.New("loader is required")
	}
	fullKey := c.prefix + key
	namespace := namespaceOf(key)

	raw, err := c.client.Get(ctx, fullKey).Bytes()
	switch {
	case err == nil:
		c.hit(namespace)
		return raw, nil
	case !errors.Is(err, redis.Nil):
		c.fail(ctx, namespace, "redis get failed", fullKey, err)
	}

	ch := c.flight.DoChan(fullKey, func() (any, error) {
		c.miss(namespace)
		loadCtx, cancel := detach(ctx, c.loadTimeout)
		defer cancel()
		raw, loadErr := loader(loadCtx)
		if loadErr != nil {
			return nil, loadErr
		}
		if ttl > 0 {
			if err := c.client.Set(loadCtx, fullKey, raw, ttl).Err(); err != nil {
				c.fail(ctx, namespace, "redis set failed", fullKey, err)
			}
		}
		return raw, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *RedisPayloadCache) hit(namespace string) {
	if c.observer != nil {
		c.observer.CacheHit(namespace)
	}
}

func (c *RedisPayloadCache) miss(namespace string) {
	if c.observer != nil {
		c.observer.CacheMiss(namespace)
	}
}

func (c *RedisPayloadCache) fail(ctx context.Context, namespace, msg, key string, err error) {
	if c.observer != nil {
		c.observer.CacheError(namespace)
	}
	c.logger.DebugContext(ctx, msg, "key", key, "error", err)
}
