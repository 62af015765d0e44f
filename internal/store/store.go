// Package store holds the session read model: the five record collections
// the ingestion layer replaces wholesale after each upload. Aggregators read
// an immutable snapshot and never mutate records.
package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/gulfops/vesselmetrics/internal/domain/models"
)

// Dataset is a point-in-time view of the loaded collections. Version
// increases with every wholesale replace, so caches can key on it.
type Dataset struct {
	Version         uint64
	Ready           bool
	VoyageEvents    []models.VoyageEvent
	VesselManifests []models.VesselManifest
	CostAllocations []models.CostAllocation
	BulkActions     []models.BulkAction
	VoyageList      []models.VoyageListEntry
}

// Store is the process-wide read model. Replacements and snapshots may come
// from different goroutines; the aggregation itself only ever sees the
// immutable Dataset value.
type Store struct {
	mu      sync.RWMutex
	current Dataset
	logger  *zap.Logger
}

// New wires an empty store.
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// ReplaceAll swaps in a freshly ingested dataset and marks the store ready.
func (s *Store) ReplaceAll(
	events []models.VoyageEvent,
	manifests []models.VesselManifest,
	costs []models.CostAllocation,
	bulk []models.BulkAction,
	voyages []models.VoyageListEntry,
) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Dataset{
		Version:         s.current.Version + 1,
		Ready:           true,
		VoyageEvents:    events,
		VesselManifests: manifests,
		CostAllocations: costs,
		BulkActions:     bulk,
		VoyageList:      voyages,
	}

	s.logger.Info("dataset replaced",
		zap.Uint64("version", s.current.Version),
		zap.Int("voyage_events", len(events)),
		zap.Int("manifests", len(manifests)),
		zap.Int("cost_allocations", len(costs)),
		zap.Int("bulk_actions", len(bulk)),
		zap.Int("voyages", len(voyages)),
	)
}

// Snapshot returns the current dataset. The slices are shared with the
// store; callers treat them as read-only.
func (s *Store) Snapshot() Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Ready reports whether an upload has been loaded yet.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Ready
}

// Version returns the current dataset version.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Version
}
