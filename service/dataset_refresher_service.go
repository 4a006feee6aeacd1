package services

import (
	"context"
	"log"
	"time"

	"marketing-dashboard/models"
)

// DatasetLoader reloads every dataset. DashboardService implements it.
type DatasetLoader interface {
	LoadAll(ctx context.Context) (models.LoadResult, error)
}

// DatasetRefresherService periodically reloads the export files.
type DatasetRefresherService struct {
	loader DatasetLoader
}

// NewDatasetRefresherService constructs a new refresher with its dependency.
func NewDatasetRefresherService(loader DatasetLoader) *DatasetRefresherService {
	return &DatasetRefresherService{loader: loader}
}

// StartPeriodicJob launches the background loop at the given interval. A
// non-positive interval disables it.
func (dr *DatasetRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		log.Println("[DatasetRefresherService] Periodic refresh disabled.")
		return
	}
	go dr.startPeriodicJob(ctx, interval)
}

func (dr *DatasetRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[DatasetRefresherService] Stopping periodic dataset refresher job.")
			return
		case <-ticker.C:
			log.Println("[DatasetRefresherService] Running periodic dataset refresher job.")
			if err := dr.RefreshDatasets(ctx); err != nil {
				log.Printf("[DatasetRefresherService] RefreshDatasets returned error: %v", err)
			} else {
				log.Println("[DatasetRefresherService] RefreshDatasets completed successfully.")
			}
		}
	}
}

// RefreshDatasets runs one load cycle and logs per-file failures.
func (dr *DatasetRefresherService) RefreshDatasets(ctx context.Context) error {
	result, err := dr.loader.LoadAll(ctx)
	if err != nil {
		return err
	}
	for name, msg := range result.Errors {
		log.Printf("[DatasetRefresherService] %s failed to load: %s", name, msg)
	}
	log.Printf("[DatasetRefresherService] Cycle %s loaded generation %d", result.CycleID, result.Generation)
	return nil
}
