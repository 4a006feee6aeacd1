package dataset

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"marketing-dashboard/models"
)

// ErrStaleGeneration is returned when a load tries to commit after a newer
// load has already been committed.
var ErrStaleGeneration = errors.New("stale dataset generation")

// Store holds the latest loaded datasets. Every load or replacement runs
// under a generation number handed out by Begin; a commit carrying an older
// generation than the one stored is rejected so slow loads cannot overwrite
// newer data.
type Store struct {
	mu         sync.RWMutex
	datasets   map[string]models.RawRowSet
	errors     map[string]string
	generation uint64
	next       uint64
}

func NewStore() *Store {
	return &Store{
		datasets: map[string]models.RawRowSet{},
		errors:   map[string]string{},
	}
}

// Begin reserves the generation number for a new load.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next
}

// Commit replaces all datasets and load errors with the result of load gen.
func (s *Store) Commit(gen uint64, datasets map[string]models.RawRowSet, loadErrors map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.generation {
		log.Printf("[DatasetStore] Rejected commit of generation %d, current is %d", gen, s.generation)
		return fmt.Errorf("%w: %d <= %d", ErrStaleGeneration, gen, s.generation)
	}
	s.datasets = make(map[string]models.RawRowSet, len(datasets))
	for name, set := range datasets {
		s.datasets[name] = set
	}
	s.errors = make(map[string]string, len(loadErrors))
	for name, msg := range loadErrors {
		s.errors[name] = msg
	}
	s.generation = gen
	return nil
}

// Replace swaps one dataset wholesale and clears its load error. It
// allocates its own generation so it orders correctly against full loads.
func (s *Store) Replace(name string, set models.RawRowSet) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	gen := s.next

	datasets := make(map[string]models.RawRowSet, len(s.datasets)+1)
	for k, v := range s.datasets {
		datasets[k] = v
	}
	datasets[name] = set
	s.datasets = datasets

	errs := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		if k != name {
			errs[k] = v
		}
	}
	s.errors = errs
	s.generation = gen
	return gen
}

// Dataset returns the named set, or an empty set when it was never loaded.
func (s *Store) Dataset(name string) models.RawRowSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if set, ok := s.datasets[name]; ok {
		return set
	}
	return models.NewRawRowSet(name)
}

// Snapshot returns the current datasets and the generation they belong to.
// The map is a copy; the row sets are shared and must not be mutated.
func (s *Store) Snapshot() (map[string]models.RawRowSet, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.RawRowSet, len(s.datasets))
	for k, v := range s.datasets {
		out[k] = v
	}
	return out, s.generation
}

func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Errors returns a copy of the per-file load errors.
func (s *Store) Errors() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}
