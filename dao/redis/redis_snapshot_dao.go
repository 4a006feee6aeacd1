package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"marketing-dashboard/db"
	"marketing-dashboard/models"
	"marketing-dashboard/models/snapshot"
)

const SNAPSHOT_KEY_FORMAT_V1 = "dashboard_snapshot_v1:%d:%s"
const SNAPSHOT_KEY_PATTERN_V1 = "dashboard_snapshot_v1:*"
const BOUNDS_KEY_V1 = "dashboard_bounds_v1"
const LOAD_ERRORS_KEY_V1 = "dashboard_load_errors_v1"

// RedisSnapshotDAO caches analysis results in Redis. Snapshot keys carry
// the dataset generation, so results of an older load are never served for
// a newer one.
type RedisSnapshotDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisSnapshotDAO initializes a RedisSnapshotDAO. A ttl of zero keeps
// entries until they are invalidated.
func NewRedisSnapshotDAO(client db.RedisClient, ttl time.Duration) *RedisSnapshotDAO {
	return &RedisSnapshotDAO{client: client, ttl: ttl}
}

func snapshotKey(generation uint64, sel models.DateRangeSelection) string {
	return fmt.Sprintf(SNAPSHOT_KEY_FORMAT_V1, generation, sel.Key())
}

// SetSnapshot caches the snapshots computed for a selection.
func (dao *RedisSnapshotDAO) SetSnapshot(generation uint64, sel models.DateRangeSelection, s snapshot.PlatformSnapshots) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for %s: %w", sel.Key(), err)
	}
	if err := dao.client.SetWithTTL(snapshotKey(generation, sel), string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set snapshot in redis: %w", err)
	}
	return nil
}

// GetSnapshot returns the cached snapshots for a selection. A miss is
// reported as ok=false with a nil error.
func (dao *RedisSnapshotDAO) GetSnapshot(generation uint64, sel models.DateRangeSelection) (*snapshot.PlatformSnapshots, bool, error) {
	str, err := dao.client.Get(snapshotKey(generation, sel))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get snapshot from redis: %w", err)
	}
	var s snapshot.PlatformSnapshots
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal snapshot JSON: %w", err)
	}
	return &s, true, nil
}

// InvalidateSnapshots drops every cached snapshot.
func (dao *RedisSnapshotDAO) InvalidateSnapshots() error {
	keys, err := dao.client.Keys(SNAPSHOT_KEY_PATTERN_V1)
	if err != nil {
		return fmt.Errorf("failed to list snapshot keys: %w", err)
	}
	if err := dao.client.Del(keys...); err != nil {
		return fmt.Errorf("failed to delete snapshot keys: %w", err)
	}
	log.Printf("[RedisSnapshotDAO] Invalidated %d cached snapshots", len(keys))
	return nil
}

// SetBounds stores the available date bounds of the latest load.
func (dao *RedisSnapshotDAO) SetBounds(b models.AvailableDateBounds) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal bounds: %w", err)
	}
	if err := dao.client.Set(BOUNDS_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set bounds in redis: %w", err)
	}
	return nil
}

// GetBounds returns the stored bounds, ok=false when none are stored.
func (dao *RedisSnapshotDAO) GetBounds() (*models.AvailableDateBounds, bool, error) {
	str, err := dao.client.Get(BOUNDS_KEY_V1)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get bounds from redis: %w", err)
	}
	var b models.AvailableDateBounds
	if err := json.Unmarshal([]byte(str), &b); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal bounds JSON: %w", err)
	}
	return &b, true, nil
}

// SetLoadErrors stores the per-file load failures of the latest load.
func (dao *RedisSnapshotDAO) SetLoadErrors(errs map[string]string) error {
	data, err := json.Marshal(errs)
	if err != nil {
		return fmt.Errorf("failed to marshal load errors: %w", err)
	}
	if err := dao.client.Set(LOAD_ERRORS_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set load errors in redis: %w", err)
	}
	return nil
}

// GetLoadErrors returns the stored load failures, empty when none are stored.
func (dao *RedisSnapshotDAO) GetLoadErrors() (map[string]string, error) {
	str, err := dao.client.Get(LOAD_ERRORS_KEY_V1)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to get load errors from redis: %w", err)
	}
	errs := map[string]string{}
	if err := json.Unmarshal([]byte(str), &errs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal load errors JSON: %w", err)
	}
	return errs, nil
}
