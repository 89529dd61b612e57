package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key prefix for cached slide summaries
const summaryKeyPrefix = "summary:"

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache client
func NewRedisCache(addr, password string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisCache{
		client: client,
	}, nil
}

// GetSummary retrieves a cached summary by key
func (c *RedisCache) GetSummary(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, summaryKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", nil // Cache miss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetSummary stores a summary with TTL
func (c *RedisCache) SetSummary(ctx context.Context, key string, summary string, ttl time.Duration) error {
	return c.client.Set(ctx, summaryKeyPrefix+key, summary, ttl).Err()
}

// Close closes the cache connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
