package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/TemirB/rental-cart/internal/domain"
	"github.com/TemirB/rental-cart/internal/observability"
)

// warmKeys are the snapshots every page view reads.
var warmKeys = []string{domain.KeyCart, domain.KeySelectedItems}

// Cached is a read-through, write-through LRU in front of a slower KV. Entries expire after
// ttl so the cache never outlives the backend's own expiry; zero keeps them until evicted.
type Cached struct {
	next    KV
	size    int
	lru     *expirable.LRU[string, []byte]
	metrics observability.Metrics
}

func NewCached(next KV, size int, ttl time.Duration, metrics observability.Metrics) (*Cached, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", size)
	}
	c := expirable.NewLRU[string, []byte](size, nil, ttl)
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Cached{
		next:    next,
		size:    size,
		lru:     c,
		metrics: metrics,
	}, nil
}

type warmSource interface {
	KV
	SessionLister
}

// Warm preloads the snapshots of the most recently active sessions. Errors are ignored.
func (c *Cached) Warm(ctx context.Context, src warmSource) {
	limit := c.size / len(warmKeys)
	if limit < 1 {
		return
	}
	sessions, err := src.RecentSessions(ctx, limit)
	if err != nil {
		return
	}
	for _, s := range sessions {
		for _, k := range warmKeys {
			if v, err := src.Get(ctx, s, k); err == nil {
				c.lru.Add(compositeKey(s, k), v)
			}
		}
	}
}

func (c *Cached) Get(ctx context.Context, session, key string) ([]byte, error) {
	ck := compositeKey(session, key)
	if v, ok := c.lru.Get(ck); ok {
		c.metrics.IncCacheHit()
		return append([]byte(nil), v...), nil
	}
	c.metrics.IncCacheMiss()

	v, err := c.next.Get(ctx, session, key)
	if err != nil {
		return nil, err
	}
	c.lru.Add(ck, append([]byte(nil), v...))
	return v, nil
}

func (c *Cached) Set(ctx context.Context, session, key string, value []byte) error {
	if err := c.next.Set(ctx, session, key, value); err != nil {
		c.lru.Remove(compositeKey(session, key))
		return err
	}
	c.lru.Add(compositeKey(session, key), append([]byte(nil), value...))
	return nil
}
