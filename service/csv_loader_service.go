package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"marketing-dashboard/api"
	"marketing-dashboard/config"
	"marketing-dashboard/models"
	"marketing-dashboard/util"
)

// LoadOutcome is the settled result of loading a set of files. Every
// requested file has an entry in Datasets, empty when it failed.
type LoadOutcome struct {
	Datasets map[string]models.RawRowSet
	Errors   map[string]string
	Files    []models.FileStatus
}

// CSVLoaderService fetches export files from a source and decodes them
// through the encoding fallback chain.
type CSVLoaderService struct {
	source         api.CSVSource
	encodings      []util.Encoding
	maxConcurrency int
	batchPause     time.Duration
}

// NewCSVLoaderService constructs a loader. maxConcurrency below 1 means one
// file at a time.
func NewCSVLoaderService(source api.CSVSource, maxConcurrency int, batchPause time.Duration) *CSVLoaderService {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &CSVLoaderService{
		source:         source,
		encodings:      util.DefaultEncodings(),
		maxConcurrency: maxConcurrency,
		batchPause:     batchPause,
	}
}

// Load fetches and decodes one file. The returned set is never nil-valued:
// on failure it is empty and the error says why.
func (s *CSVLoaderService) Load(ctx context.Context, name string) (models.RawRowSet, models.FileStatus, error) {
	data, err := s.source.Fetch(ctx, name)
	if err != nil {
		log.Printf("[CSVLoaderService] Failed to fetch %s: %v", name, err)
		return models.NewRawRowSet(name), models.FileStatus{Name: name}, fmt.Errorf("fetch %s: %w", name, err)
	}
	return s.Decode(name, data)
}

// Decode runs the encoding chain over raw bytes.
func (s *CSVLoaderService) Decode(name string, data []byte) (models.RawRowSet, models.FileStatus, error) {
	set, attempts := util.DecodeCSV(name, data, s.encodings)
	status := models.FileStatus{Name: name}
	for _, a := range attempts {
		if a.OK() {
			status.Rows = set.Len()
			status.Encoding = a.Encoding
			status.Loaded = true
			if a.Encoding != util.ENCODING_UTF8 {
				log.Printf("[CSVLoaderService] Decoded %s as %s", name, a.Encoding)
			}
			return set, status, nil
		}
	}
	err := util.JoinAttemptErrors(attempts)
	log.Printf("[CSVLoaderService] Could not decode %s with any encoding: %v", name, err)
	return set, status, fmt.Errorf("decode %s: %w", name, err)
}

// LoadAll loads the core batch, pauses, then loads the extended batch.
func (s *CSVLoaderService) LoadAll(ctx context.Context) (LoadOutcome, error) {
	return s.LoadBatches(ctx, config.CoreFiles, config.ExtendedFiles)
}

// LoadBatches loads each batch fully before starting the next. A failing
// file never cancels its siblings. Only a canceled context aborts the run.
func (s *CSVLoaderService) LoadBatches(ctx context.Context, batches ...[]string) (LoadOutcome, error) {
	out := LoadOutcome{
		Datasets: map[string]models.RawRowSet{},
		Errors:   map[string]string{},
		Files:    []models.FileStatus{},
	}

	for i, batch := range batches {
		if i > 0 && s.batchPause > 0 {
			select {
			case <-ctx.Done():
				return out, ctx.Err()
			case <-time.After(s.batchPause):
			}
		}

		log.Printf("[CSVLoaderService] Loading batch %d/%d (%d files)", i+1, len(batches), len(batch))
		s.loadBatch(ctx, batch, &out)

		if err := ctx.Err(); err != nil {
			return out, err
		}
	}
	return out, nil
}

type loadResult struct {
	set    models.RawRowSet
	status models.FileStatus
	err    error
}

func (s *CSVLoaderService) loadBatch(ctx context.Context, batch []string, out *LoadOutcome) {
	results := make([]loadResult, len(batch))

	var g errgroup.Group
	g.SetLimit(s.maxConcurrency)
	for i, name := range batch {
		i, name := i, name
		g.Go(func() error {
			set, status, err := s.Load(ctx, name)
			results[i] = loadResult{set: set, status: status, err: err}
			return nil
		})
	}
	_ = g.Wait()

	for i, name := range batch {
		r := results[i]
		out.Datasets[name] = r.set
		out.Files = append(out.Files, r.status)
		if r.err != nil {
			out.Errors[name] = r.err.Error()
		}
	}
}
