package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"marketing-dashboard/analyzer"
	"marketing-dashboard/config"
	"marketing-dashboard/dao/dataset"
	"marketing-dashboard/models"
	"marketing-dashboard/models/snapshot"
)

// ErrUnknownFile is returned for file names outside the manifest.
var ErrUnknownFile = errors.New("unknown dataset file")

// SnapshotCache stores computed snapshots and load metadata outside the
// process. Bounds and load errors are read back until the first local
// commit. RedisSnapshotDAO implements it.
type SnapshotCache interface {
	GetSnapshot(generation uint64, sel models.DateRangeSelection) (*snapshot.PlatformSnapshots, bool, error)
	SetSnapshot(generation uint64, sel models.DateRangeSelection, s snapshot.PlatformSnapshots) error
	InvalidateSnapshots() error
	GetBounds() (*models.AvailableDateBounds, bool, error)
	SetBounds(b models.AvailableDateBounds) error
	GetLoadErrors() (map[string]string, error)
	SetLoadErrors(errs map[string]string) error
}

// DashboardService loads the export files, keeps them in the dataset store
// and answers snapshot requests for a date selection.
type DashboardService struct {
	loader  *CSVLoaderService
	store   *dataset.Store
	suite   *analyzer.Suite
	parsers analyzer.ParserSet
	cache   SnapshotCache
	now     func() time.Time

	mu        sync.RWMutex
	bounds    models.AvailableDateBounds
	boundsGen uint64
}

// NewDashboardService wires the service. cache may be nil.
func NewDashboardService(
	loader *CSVLoaderService,
	store *dataset.Store,
	parsers analyzer.ParserSet,
	cache SnapshotCache) *DashboardService {

	ds := &DashboardService{
		loader:  loader,
		store:   store,
		suite:   analyzer.NewSuite(parsers),
		parsers: parsers,
		cache:   cache,
		now:     time.Now,
	}
	ds.bounds = analyzer.ExtractBounds(nil, ds.now(), parsers)
	return ds
}

// SetClock replaces the time source used for fallback bounds.
func (ds *DashboardService) SetClock(now func() time.Time) {
	ds.now = now
}

// LoadAll loads every manifest file and publishes them as a new generation.
func (ds *DashboardService) LoadAll(ctx context.Context) (models.LoadResult, error) {
	cycleID := uuid.NewString()
	gen := ds.store.Begin()
	log.Printf("[DashboardService] Load cycle %s started (generation %d)", cycleID, gen)

	outcome, err := ds.loader.LoadAll(ctx)
	if err != nil {
		log.Printf("[DashboardService] Load cycle %s aborted: %v", cycleID, err)
		return models.LoadResult{}, fmt.Errorf("load cycle %s: %w", cycleID, err)
	}

	if err := ds.store.Commit(gen, outcome.Datasets, outcome.Errors); err != nil {
		log.Printf("[DashboardService] Load cycle %s discarded: %v", cycleID, err)
		return models.LoadResult{}, fmt.Errorf("load cycle %s: %w", cycleID, err)
	}

	bounds := ds.refreshBounds()
	ds.publish(outcome.Errors)

	log.Printf("[DashboardService] Load cycle %s committed: %d files, %d errors, bounds %s .. %s",
		cycleID, len(outcome.Files), len(outcome.Errors),
		bounds.Earliest.Format(models.DAY_LAYOUT), bounds.Latest.Format(models.DAY_LAYOUT))

	return models.LoadResult{
		CycleID:    cycleID,
		Generation: gen,
		Bounds:     bounds,
		Errors:     outcome.Errors,
		Files:      outcome.Files,
	}, nil
}

// ReplaceDataset decodes an uploaded file and swaps it in for the stored
// one. A file that cannot be decoded leaves the store untouched.
func (ds *DashboardService) ReplaceDataset(ctx context.Context, name string, data []byte) (models.FileStatus, error) {
	if !config.IsManifestFile(name) {
		return models.FileStatus{Name: name}, fmt.Errorf("%w: %s", ErrUnknownFile, name)
	}
	if err := ctx.Err(); err != nil {
		return models.FileStatus{Name: name}, err
	}

	set, status, err := ds.loader.Decode(name, data)
	if err != nil {
		return status, err
	}

	gen := ds.store.Replace(name, set)
	ds.refreshBounds()
	ds.publish(ds.store.Errors())

	log.Printf("[DashboardService] Replaced %s with %d rows (generation %d)", name, status.Rows, gen)
	return status, nil
}

// Analyze validates the selection, snaps it to whole days and runs every
// platform analyzer over the current datasets.
func (ds *DashboardService) Analyze(sel models.DateRangeSelection) (snapshot.PlatformSnapshots, error) {
	sel, err := sel.Normalize()
	if err != nil {
		return snapshot.PlatformSnapshots{}, err
	}

	datasets, gen := ds.store.Snapshot()

	if ds.cache != nil {
		cached, ok, err := ds.cache.GetSnapshot(gen, sel)
		if err != nil {
			log.Printf("[DashboardService] Snapshot cache read failed: %v", err)
		} else if ok {
			return *cached, nil
		}
	}

	result := ds.suite.Analyze(analyzer.DatasetMap(datasets), sel)
	result.Generation = gen

	if ds.cache != nil {
		if err := ds.cache.SetSnapshot(gen, sel, result); err != nil {
			log.Printf("[DashboardService] Snapshot cache write failed: %v", err)
		}
	}
	return result, nil
}

// Bounds returns the date bounds of the latest committed datasets. Before
// the first local commit the cached bounds are used when there are any.
func (ds *DashboardService) Bounds() models.AvailableDateBounds {
	ds.mu.RLock()
	bounds, gen := ds.bounds, ds.boundsGen
	ds.mu.RUnlock()

	if gen == 0 && ds.cache != nil {
		cached, ok, err := ds.cache.GetBounds()
		if err != nil {
			log.Printf("[DashboardService] Bounds cache read failed: %v", err)
		} else if ok {
			return *cached
		}
	}
	return bounds
}

// Errors returns the per-file load failures of the latest commit. Before
// the first local commit the cached errors are used.
func (ds *DashboardService) Errors() map[string]string {
	if ds.store.Generation() == 0 && ds.cache != nil {
		cached, err := ds.cache.GetLoadErrors()
		if err == nil {
			return cached
		}
		log.Printf("[DashboardService] Load errors cache read failed: %v", err)
	}
	return ds.store.Errors()
}

func (ds *DashboardService) Generation() uint64 {
	return ds.store.Generation()
}

// refreshBounds recomputes bounds from the store. Bounds computed from an
// older generation never replace newer ones.
func (ds *DashboardService) refreshBounds() models.AvailableDateBounds {
	datasets, gen := ds.store.Snapshot()
	bounds := analyzer.ExtractBounds(datasets, ds.now(), ds.parsers)

	ds.mu.Lock()
	defer ds.mu.Unlock()
	if gen >= ds.boundsGen {
		ds.bounds = bounds
		ds.boundsGen = gen
	}
	return ds.bounds
}

func (ds *DashboardService) publish(loadErrors map[string]string) {
	if ds.cache == nil {
		return
	}
	if err := ds.cache.InvalidateSnapshots(); err != nil {
		log.Printf("[DashboardService] Failed to invalidate cached snapshots: %v", err)
	}
	if err := ds.cache.SetBounds(ds.Bounds()); err != nil {
		log.Printf("[DashboardService] Failed to cache bounds: %v", err)
	}
	if err := ds.cache.SetLoadErrors(loadErrors); err != nil {
		log.Printf("[DashboardService] Failed to cache load errors: %v", err)
	}
}
