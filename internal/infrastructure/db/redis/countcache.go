package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	countKey = "products:count"
	countTTL = 30 * time.Second
)

// CountCache caches the estimated product count so /productCount does not hit
// the document store on every request. Entries expire after countTTL.
type CountCache struct {
	client *redis.Client
}

// NewCountCache creates a CountCache wrapping the given Redis client.
func NewCountCache(client *redis.Client) *CountCache {
	return &CountCache{client: client}
}

// Get returns the cached count and whether a value was present.
func (c *CountCache) Get(ctx context.Context) (int64, bool, error) {
	n, err := c.client.Get(ctx, countKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("count cache get: %w", err)
	}
	return n, true, nil
}

// Set stores the count for countTTL.
func (c *CountCache) Set(ctx context.Context, n int64) error {
	return c.client.Set(ctx, countKey, n, countTTL).Err()
}
