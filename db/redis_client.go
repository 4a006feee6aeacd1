package db

import (
	"context"
	"time"
)

// RedisClient is the subset of Redis the dashboard cache needs.
type RedisClient interface {
	Set(key, value string) error
	SetWithTTL(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Keys(pattern string) ([]string, error)
	Del(keys ...string) error
	GetContext() context.Context
	Ping() error
}
