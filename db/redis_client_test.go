package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-dashboard/db"
)

// Test the Set and Get methods against the RedisClient implementations
func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient(context.Background())},
		// Replace with a real Redis client configuration for integration testing
		// {"GoRedisClient", db.NewGoRedisClient(context.Background(), realRedisClient)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key := "test-key"
			value := "test-value"

			err := test.client.Set(key, value)
			if err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			retrieved, err := test.client.Get(key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}

			if retrieved != value {
				t.Errorf("Expected %s, got %s", value, retrieved)
			}
		})
	}
}

func TestMockRedisClient_GetMissingKey(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	_, err := client.Get("missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, db.ErrKeyNotFound))
}

func TestMockRedisClient_SetWithTTLExpires(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	client.SetClock(func() time.Time { return now })

	require.NoError(t, client.SetWithTTL("snap", "{}", time.Minute))

	v, err := client.Get("snap")
	require.NoError(t, err)
	assert.Equal(t, "{}", v)

	now = now.Add(2 * time.Minute)
	_, err = client.Get("snap")
	assert.True(t, errors.Is(err, db.ErrKeyNotFound))

	keys, err := client.Keys("*")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMockRedisClient_KeysAndDel(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	require.NoError(t, client.Set("dashboard_snapshot_v1:1:a", "x"))
	require.NoError(t, client.Set("dashboard_snapshot_v1:1:b", "y"))
	require.NoError(t, client.Set("dashboard_bounds_v1", "z"))

	keys, err := client.Keys("dashboard_snapshot_v1:*")
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard_snapshot_v1:1:a", "dashboard_snapshot_v1:1:b"}, keys)

	require.NoError(t, client.Del(keys...))
	keys, err = client.Keys("*")
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard_bounds_v1"}, keys)
}

// Test Ping for the RedisClient implementations
func TestRedisClient_Ping(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient(context.Background())},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.client.Ping()

			if err != nil {
				t.Errorf("Ping failed: %v", err)
			}
		})
	}
}
