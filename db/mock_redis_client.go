package db

import (
	"context"
	"fmt"
	"log"
	"path"
	"sort"
	"sync"
	"time"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data    map[string]string
	expires map[string]time.Time
	mu      sync.RWMutex
	context context.Context
	now     func() time.Time
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		expires: make(map[string]time.Time),
		context: ctx,
		now:     time.Now,
	}
}

// SetClock replaces the clock used for expiry checks.
func (m *MockRedisClient) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	delete(m.expires, key)
	return nil
}

// SetWithTTL stores a key-value pair that expires after ttl.
func (m *MockRedisClient) SetWithTTL(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	if ttl > 0 {
		m.expires[key] = m.now().Add(ttl)
	} else {
		delete(m.expires, key)
	}
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.expired(key) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

// Keys returns live keys matching a glob pattern, sorted.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if m.expired(k) {
			continue
		}
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MockRedisClient) Del(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
		delete(m.expires, k)
	}
	return nil
}

// GetContext returns the mock Redis client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	log.Println("MockRedisClient: Ping successful")
	return nil
}

// expired must be called with the lock held.
func (m *MockRedisClient) expired(key string) bool {
	at, ok := m.expires[key]
	return ok && !m.now().Before(at)
}
