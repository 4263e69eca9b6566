package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sm8ta/motodash/internal/core/ports"
)

const cleanupInterval = 10 * time.Minute

// CacheAdapter keeps cached records in process memory.
type CacheAdapter struct {
	store *cache.Cache
}

func NewCacheAdapter(defaultTTL time.Duration) *CacheAdapter {
	return &CacheAdapter{
		store: cache.New(defaultTTL, cleanupInterval),
	}
}

func (c *CacheAdapter) Get(_ context.Context, key string) ([]byte, error) {
	value, found := c.store.Get(key)
	if !found {
		return nil, ports.ErrCacheMiss
	}
	data, ok := value.([]byte)
	if !ok {
		return nil, ports.ErrCacheMiss
	}
	return data, nil
}

func (c *CacheAdapter) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.store.Set(key, value, ttl)
	return nil
}

func (c *CacheAdapter) Delete(_ context.Context, key string) error {
	c.store.Delete(key)
	return nil
}

func (c *CacheAdapter) Len() int {
	return c.store.ItemCount()
}
