package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

//go:generate mockgen -source internal/cache/cache.go -destination=internal/cache/cache_mock_test.go -package=cache

type repo interface {
	RecentSessions(ctx context.Context, limit int) ([]string, error)
}

// Cache keeps the most recently used open sessions. A miss opens the session with the
// supplied function; evicted sessions are simply reopened on their next request.
type Cache[V any] struct {
	size int
	lru  *lru.Cache[string, V]
	open func(ctx context.Context, id string) V
}

func New[V any](size int, open func(ctx context.Context, id string) V) (*Cache[V], error) {
	c, err := lru.New[string, V](size)
	if err != nil {
		return nil, err
	}
	return &Cache[V]{
		size: size,
		lru:  c,
		open: open,
	}, nil
}

// Warm opens the most recently active sessions ahead of their first request.
func (c *Cache[V]) Warm(ctx context.Context, repo repo) int {
	ids, err := repo.RecentSessions(ctx, c.size)
	if err != nil {
		return 0
	}
	for _, id := range ids {
		c.Acquire(ctx, id)
	}
	return len(ids)
}

// Acquire returns the open session for id, opening it on a miss. The bool reports a hit.
// Two concurrent misses for the same id both open, but only the first one is kept.
func (c *Cache[V]) Acquire(ctx context.Context, id string) (V, bool) {
	if v, ok := c.lru.Get(id); ok {
		return v, true
	}
	v := c.open(ctx, id)
	if prev, ok, _ := c.lru.PeekOrAdd(id, v); ok {
		return prev, true
	}
	return v, false
}

func (c *Cache[V]) Get(id string) (V, bool) {
	return c.lru.Get(id)
}

func (c *Cache[V]) Remove(id string) bool {
	return c.lru.Remove(id)
}

func (c *Cache[V]) Len() int {
	return c.lru.Len()
}
