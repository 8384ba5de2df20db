package memstorage

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libringchart/segment"
)

// NewMemStorage keeps data in process. ttl <= 0 means entries never expire.
func NewMemStorage(ttl time.Duration) *MemStorage {
	cleanupInterval := ttl * 2

	if ttl <= 0 {
		ttl = cache.NoExpiration
		cleanupInterval = 0
	}

	return &MemStorage{
		c: cache.New(ttl, cleanupInterval),
	}
}

type MemStorage struct {
	c *cache.Cache
}

func (impl *MemStorage) Load(_ context.Context, key string) ([]segment.DataPoint, error) {
	i, ok := impl.c.Get(key)
	if !ok {
		return nil, commerr.ErrNotFound
	}

	ds, _ := i.([]segment.DataPoint)

	return append([]segment.DataPoint{}, ds...), nil
}

func (impl *MemStorage) Save(_ context.Context, key string, ds []segment.DataPoint) error {
	impl.c.Set(key, append([]segment.DataPoint{}, ds...), cache.DefaultExpiration)

	return nil
}

func (impl *MemStorage) Del(_ context.Context, key string) error {
	impl.c.Delete(key)

	return nil
}
