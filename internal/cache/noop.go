package cache

import (
	"context"
	"time"
)

// NoOpCache is a cache implementation that does nothing. Used when no cache
// backend is configured - all operations succeed but every lookup misses.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache instance
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// GetSummary always returns "" (cache miss)
func (c *NoOpCache) GetSummary(ctx context.Context, key string) (string, error) {
	return "", nil
}

// SetSummary does nothing and always succeeds
func (c *NoOpCache) SetSummary(ctx context.Context, key string, summary string, ttl time.Duration) error {
	return nil
}

// Close does nothing and always succeeds
func (c *NoOpCache) Close() error {
	return nil
}
