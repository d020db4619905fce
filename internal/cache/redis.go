package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a Redis-backed cache implementation
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// RedisConfig holds configuration for the Redis cache
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewRedis creates a new Redis cache with the specified configuration
func NewRedis(cfg RedisConfig, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "vehiclecatalog:"
	}

	return &RedisCache{
		client: client,
		ttl:    ttl,
		prefix: prefix,
	}, nil
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

func (c *RedisCache) Get(key string) ([]byte, bool) {
	ctx := context.Background()

	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *RedisCache) Set(key string, value []byte) {
	c.SetWithTTL(key, value, c.ttl)
}

func (c *RedisCache) SetWithTTL(key string, value []byte, ttl time.Duration) {
	ctx := context.Background()
	c.client.Set(ctx, c.key(key), value, ttl)
}

func (c *RedisCache) Delete(key string) {
	ctx := context.Background()
	c.client.Del(ctx, c.key(key))
}

func (c *RedisCache) Clear() {
	ctx := context.Background()

	// Use SCAN to find all keys with our prefix and delete them
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ensure RedisCache implements Cache interface
var _ Cache = (*RedisCache)(nil)
