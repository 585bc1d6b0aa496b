package distance

import (
	"context"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/geotour/geo"
)

// DefaultCacheSize is the LRU capacity used when NewCached is given size <= 0.
const DefaultCacheSize = 8192

// Cached memoizes an underlying Distancer in a bounded LRU keyed by the ordered
// coordinate pair. Failed lookups are never cached. Safe for concurrent use.
type Cached struct {
	next   Distancer
	c      *lru.Cache[coordKey, float64]
	log    *zap.Logger
	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats is a snapshot of Cached counters.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// NewCached wraps next with an LRU of the given capacity.
func NewCached(next Distancer, size int, logger *zap.Logger) (*Cached, error) {
	if next == nil {
		return nil, ErrNilBackend
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c, err := lru.New[coordKey, float64](size)
	if err != nil {
		return nil, err
	}

	return &Cached{next: next, c: c, log: logger}, nil
}

// Distance returns the cached value for (a, b) or asks the wrapped backend.
func (c *Cached) Distance(ctx context.Context, a, b geo.Location) (float64, error) {
	k := keyOf(a, b)
	if d, ok := c.c.Get(k); ok {
		c.hits.Add(1)
		return d, nil
	}
	c.misses.Add(1)

	d, err := c.next.Distance(ctx, a, b)
	if err != nil {
		return 0, Wrap(a, b, err)
	}
	if evicted := c.c.Add(k, d); evicted {
		c.log.Debug("distance cache eviction", zap.Int("len", c.c.Len()))
	}

	return d, nil
}

// Stats returns the current hit/miss counters and cache length.
func (c *Cached) Stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load(), Len: c.c.Len()}
}

// Purge drops every cached entry; counters are kept.
func (c *Cached) Purge() { c.c.Purge() }
