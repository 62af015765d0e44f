// Package vesselmetrics is the aggregation engine behind the offshore
// vessel logistics dashboards. It holds the session read model (the record
// collections an upstream ingestion component replaces wholesale after each
// upload) and computes deterministic KPI aggregates for a caller-selected
// scope. It has no server, storage or ingestion surface of its own.
package vesselmetrics

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gulfops/vesselmetrics/internal/config"
	"github.com/gulfops/vesselmetrics/internal/dedup"
	"github.com/gulfops/vesselmetrics/internal/domain/models"
	"github.com/gulfops/vesselmetrics/internal/filters"
	"github.com/gulfops/vesselmetrics/internal/memo"
	"github.com/gulfops/vesselmetrics/internal/refdata"
	"github.com/gulfops/vesselmetrics/internal/service/dashboard"
	"github.com/gulfops/vesselmetrics/internal/store"
	"github.com/gulfops/vesselmetrics/pkg/logger"
)

// Record types the ingestion layer loads and the aggregators consume.
type (
	VoyageEvent     = models.VoyageEvent
	VesselManifest  = models.VesselManifest
	CostAllocation  = models.CostAllocation
	BulkAction      = models.BulkAction
	VoyageListEntry = models.VoyageListEntry
)

// Scope is the filter state dashboards are rendered under.
type Scope = filters.Scope

// Snapshot bundles every dashboard aggregate for one scope.
type Snapshot = dashboard.Snapshot

// FluidMetrics is the deduplicated bulk transfer result.
type FluidMetrics = dedup.FluidMetrics

// Options configures an engine.
type Options struct {
	// RefDataPath optionally overrides the embedded reference tables.
	RefDataPath string
	// CacheEnabled turns on memoization of computed snapshots.
	CacheEnabled bool
	// CacheMaxEntries bounds the memo cache; <= 0 uses the default.
	CacheMaxEntries int
}

// Engine owns the read model and the dashboard aggregators.
type Engine struct {
	Store      *store.Store
	Dashboards *dashboard.Service
	logger     *zap.Logger
}

// New wires an engine.
func New(opts Options, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}

	tables, err := refdata.Load(opts.RefDataPath)
	if err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}

	var cache *memo.Cache
	if opts.CacheEnabled {
		cache = memo.New(opts.CacheMaxEntries)
	}

	st := store.New(logger.Named(log, "store"))
	svc := dashboard.NewService(st, tables, cache, logger.Named(log, "dashboard"))

	return &Engine{Store: st, Dashboards: svc, logger: log}, nil
}

// NewFromEnv wires an engine from the process environment (and an optional
// .env file), building its own logger.
func NewFromEnv() (*Engine, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return New(Options{
		RefDataPath:     cfg.RefData.Path,
		CacheEnabled:    cfg.Cache.Enabled,
		CacheMaxEntries: cfg.Cache.MaxEntries,
	}, log)
}
