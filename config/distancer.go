package config

import (
	"errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/katalvlaran/geotour/distance"
)

// Distancer builds the configured backend chain:
//
//	backend → Redis cache (if distance.redis.addr is set) → LRU cache (unless cache_size < 0)
//
// The returned close function releases the Redis client and is never nil.
func (c Config) Distancer(logger *zap.Logger) (distance.Distancer, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	noop := func() error { return nil }

	var d distance.Distancer
	switch c.Distance.Backend {
	case BackendHaversine:
		d = distance.Haversine{}
	case BackendGeoIndex:
		d = distance.GeoIndex{}
	case BackendHTTP:
		h := distance.NewHTTP(c.Distance.URL, c.Distance.Timeout)
		h.Logger = logger.Named("http")
		d = h
	case BackendCommand:
		d = distance.Command{Path: c.Distance.Command, Args: c.Distance.Args}
	default:
		return nil, noop, invalid("unknown distance backend %q", c.Distance.Backend)
	}

	closeFn := noop
	if c.Distance.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: c.Distance.Redis.Addr})
		rc, err := distance.NewRedisCache(d, rdb, c.Distance.Redis.Prefix, c.Distance.Redis.TTL, logger.Named("redis"))
		if err != nil {
			return nil, noop, errors.Join(err, rdb.Close())
		}
		d, closeFn = rc, rdb.Close
	}

	if c.Distance.CacheSize >= 0 {
		cached, err := distance.NewCached(d, c.Distance.CacheSize, logger.Named("lru"))
		if err != nil {
			return nil, noop, errors.Join(err, closeFn())
		}
		d = cached
	}

	return d, closeFn, nil
}
