package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrKeyNotFound is returned by Get for a missing key.
var ErrKeyNotFound = errors.New("key not found")

// GoRedisClient struct holds the Redis client and context
type GoRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewGoRedisClient wraps an existing go-redis client.
func NewGoRedisClient(ctx context.Context, client *redis.Client) *GoRedisClient {
	return &GoRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *GoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// SetWithTTL sets a key-value pair that expires after ttl.
func (r *GoRedisClient) SetWithTTL(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis
func (r *GoRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return val, err
}

// Keys lists keys matching a glob pattern. SCAN is used so a large keyspace
// does not block the server.
func (r *GoRedisClient) Keys(pattern string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(r.ctx, 0, pattern, 100).Iterator()
	for iter.Next(r.ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan keys %q: %w", pattern, err)
	}
	return keys, nil
}

// Del removes keys. Missing keys are not an error.
func (r *GoRedisClient) Del(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(r.ctx, keys...).Err()
}

func (r *GoRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *GoRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	if err != nil {
		return err
	}
	log.Println("[GoRedisClient] Connected to Redis")
	return nil
}
