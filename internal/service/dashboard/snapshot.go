package dashboard

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gulfops/vesselmetrics/internal/domain/models"
	"github.com/gulfops/vesselmetrics/internal/filters"
	"github.com/gulfops/vesselmetrics/internal/memo"
)

// Snapshot bundles every dashboard for one scope, so a view switch needs no
// further computation.
type Snapshot struct {
	Scope          filters.Scope                `json:"scope"`
	DatasetVersion uint64                       `json:"dataset_version"`
	DataReady      bool                         `json:"data_ready"`
	Drilling       models.DrillingMetrics       `json:"drilling"`
	Production     models.ProductionMetrics     `json:"production"`
	Comparison     models.ComparisonMetrics     `json:"comparison"`
	CostAllocation models.CostAllocationMetrics `json:"cost_allocation"`
	Voyages        models.VoyageMetrics         `json:"voyages"`
	Bulk           models.BulkMetrics           `json:"bulk"`
}

// Snapshot computes all six dashboards for the scope. The aggregates are
// independent pure computations, so they run concurrently; results are
// memoized per (dataset version, scope) when a cache is configured.
func (s *Service) Snapshot(ctx context.Context, scope filters.Scope) (Snapshot, error) {
	version := s.store.Version()

	var key string
	if s.cache != nil {
		key = memo.Key("snapshot", version, scope)
		if cached, ok := s.cache.Get(key); ok {
			if snap, ok := cached.(Snapshot); ok {
				return snap, nil
			}
		}
	}

	snap := Snapshot{
		Scope:          scope,
		DatasetVersion: version,
		DataReady:      s.store.Ready(),
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error { snap.Drilling = s.Drilling(scope); return nil })
	eg.Go(func() error { snap.Production = s.Production(scope); return nil })
	eg.Go(func() error { snap.Comparison = s.Comparison(scope, GroupByLocation); return nil })
	eg.Go(func() error { snap.CostAllocation = s.CostAllocation(scope); return nil })
	eg.Go(func() error { snap.Voyages = s.Voyages(scope); return nil })
	eg.Go(func() error { snap.Bulk = s.Bulk(scope); return nil })
	if err := eg.Wait(); err != nil {
		// Aggregators absorb degenerate input, so this only fires on a
		// cancelled context.
		return Snapshot{}, err
	}

	if s.cache != nil {
		s.cache.Set(key, version, snap)
	}

	s.logger.Debug("dashboard snapshot computed",
		zap.Uint64("dataset_version", version),
		zap.Any("scope", scope),
	)
	return snap, nil
}
