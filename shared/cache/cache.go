package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Cache stores JSON encoded values with a time-to-live.
type Cache interface {
	// Get decodes the value stored at key into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value at key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

type redisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Cache backed by Redis.
func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}

	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) DeletePrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	return c.client.Del(ctx, keys...).Err()
}

type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates an in-process Cache, used when Redis is not configured.
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) Cache {
	return &memoryCache{store: gocache.New(defaultTTL, cleanupInterval)}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	value, ok := c.store.Get(key)
	if !ok {
		return false, nil
	}

	data, ok := value.([]byte)
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}

	return true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.store.Set(key, data, ttl)
	return nil
}

func (c *memoryCache) DeletePrefix(_ context.Context, prefix string) error {
	for key := range c.store.Items() {
		if strings.HasPrefix(key, prefix) {
			c.store.Delete(key)
		}
	}

	return nil
}
