package distance

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/katalvlaran/geotour/geo"
)

// DefaultRedisPrefix namespaces cached distances in a shared Redis.
const DefaultRedisPrefix = "geotour:dist:"

// RedisCache is a read-through cache shared between processes, intended to
// sit in front of slow remote backends. Redis failures degrade to a direct
// backend call and are only logged; backend failures are returned as-is.
type RedisCache struct {
	next   Distancer
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisCache wraps next with a Redis cache. ttl==0 keeps entries forever.
func NewRedisCache(next Distancer, rdb redis.Cmdable, prefix string, ttl time.Duration, logger *zap.Logger) (*RedisCache, error) {
	if next == nil || rdb == nil {
		return nil, ErrNilBackend
	}
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RedisCache{next: next, rdb: rdb, prefix: prefix, ttl: ttl, log: logger}, nil
}

// Distance reads (a, b) from Redis, falling back to the wrapped backend and
// storing its answer.
func (r *RedisCache) Distance(ctx context.Context, a, b geo.Location) (float64, error) {
	key := r.key(a, b)

	d, err := r.rdb.Get(ctx, key).Float64()
	switch {
	case err == nil:
		return d, nil
	case !errors.Is(err, redis.Nil):
		r.log.Warn("redis distance lookup failed", zap.String("key", key), zap.Error(err))
	}

	d, err = r.next.Distance(ctx, a, b)
	if err != nil {
		return 0, Wrap(a, b, err)
	}
	if err = r.rdb.Set(ctx, key, strconv.FormatFloat(d, 'g', -1, 64), r.ttl).Err(); err != nil {
		r.log.Warn("redis distance store failed", zap.String("key", key), zap.Error(err))
	}

	return d, nil
}

func (r *RedisCache) key(a, b geo.Location) string {
	var sb strings.Builder
	sb.WriteString(r.prefix)
	for i, v := range [4]float64{a.Latitude, a.Longitude, b.Latitude, b.Longitude} {
		if i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}

	return sb.String()
}
