// Package cache implements the transient subscription caches on go-redis/cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"interest/config"
	"interest/internal/domain/lifecycle"
	"interest/internal/domain/service"
	"interest/internal/errors"

	rediscache "github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

const (
	defaultLocalCacheSize = 1000
	defaultLocalCacheTTL  = time.Minute
)

type transientCache struct {
	cache *rediscache.Cache
	ttl   time.Duration
}

// Params defines the dependencies of the cache
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New builds the transient cache. Without a Redis address it keeps entries in process only.
func New(params Params) (service.TransientCache, error) {
	cfg := params.Config.Redis
	if cfg == nil {
		cfg = &config.RedisConfig{}
	}

	size := cfg.LocalCacheSize
	if size <= 0 {
		size = defaultLocalCacheSize
	}
	localTTL := cfg.LocalCacheTTL
	if localTTL <= 0 {
		localTTL = defaultLocalCacheTTL
	}

	if cfg.Address == "" {
		params.Logger.Info("Redis not configured, using in-process cache only",
			slog.Int("size", size),
			slog.Duration("ttl", localTTL),
		)

		return NewLocal(size, localTTL), nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := rdb.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Redis cache connected", slog.String("address", cfg.Address))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(rdb.Close())
		},
	})

	return NewShared(rdb, cfg.TTL), nil
}

// NewShared returns a cache stored only in Redis. There is no in-process tier,
// so a delete from any process (the worker included) is seen by every reader.
func NewShared(rdb *redis.Client, ttl time.Duration) service.TransientCache {
	return newTransientCache(&rediscache.Options{Redis: rdb}, ttl)
}

// NewLocal returns an in-process cache holding up to size entries for ttl.
func NewLocal(size int, ttl time.Duration) service.TransientCache {
	return newTransientCache(&rediscache.Options{
		LocalCache: rediscache.NewTinyLFU(size, ttl),
	}, ttl)
}

func newTransientCache(opts *rediscache.Options, ttl time.Duration) *transientCache {
	return &transientCache{
		cache: rediscache.New(opts),
		ttl:   ttl,
	}
}

func (c *transientCache) Get(ctx context.Context, key string, dst any) error {
	if err := c.cache.Get(ctx, key, dst); err != nil {
		if errors.Is(err, rediscache.ErrCacheMiss) {
			return service.ErrCacheMiss
		}

		return errors.Wrapf(err, "cache get %s", key)
	}

	return nil
}

func (c *transientCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.ttl
	}

	if err := c.cache.Set(&rediscache.Item{
		Ctx:   ctx,
		Key:   key,
		Value: value,
		TTL:   ttl,
	}); err != nil {
		return errors.Wrapf(err, "cache set %s", key)
	}

	return nil
}

func (c *transientCache) Delete(ctx context.Context, key string) error {
	// Redis reports a missing key as a miss
	if err := c.cache.Delete(ctx, key); err != nil && !errors.Is(err, rediscache.ErrCacheMiss) {
		return errors.Wrapf(err, "cache delete %s", key)
	}

	return nil
}
