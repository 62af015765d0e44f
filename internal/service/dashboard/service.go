// Package dashboard computes the per-view KPI aggregates. Every method is a
// deterministic pure function of (dataset snapshot, scope): records are never
// mutated, degenerate input is absorbed into zero values, and no NaN or Inf
// ever escapes.
package dashboard

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gulfops/vesselmetrics/internal/classify"
	"github.com/gulfops/vesselmetrics/internal/dedup"
	"github.com/gulfops/vesselmetrics/internal/domain/models"
	"github.com/gulfops/vesselmetrics/internal/filters"
	"github.com/gulfops/vesselmetrics/internal/memo"
	"github.com/gulfops/vesselmetrics/internal/refdata"
	"github.com/gulfops/vesselmetrics/internal/store"
)

// Service exposes the dashboard aggregators over the session read model.
type Service struct {
	store      *store.Store
	classifier *classify.Classifier
	engine     *dedup.Engine
	tables     *refdata.Tables
	cache      *memo.Cache
	logger     *zap.Logger
}

// NewService wires a dashboard service. cache may be nil to disable
// memoization.
func NewService(st *store.Store, tables *refdata.Tables, cache *memo.Cache, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	classifier := classify.NewClassifier(tables)
	return &Service{
		store:      st,
		classifier: classifier,
		engine:     dedup.NewEngine(classifier, logger.Named("dedup")),
		tables:     tables,
		cache:      cache,
		logger:     logger,
	}
}

// kpi builds a KPIValue for a metric. When the prior period held data the
// trend is real; otherwise the configured synthetic baseline stands in and
// the value is flagged Estimated so callers can tell the two apart.
func (s *Service) kpi(metric, unit string, cur, prev float64, hasPrior bool) models.KPIValue {
	if cur == 0 && !hasPrior {
		// Canonical zero aggregate: no value, no trend, nothing estimated.
		return models.KPIValue{Unit: unit}
	}

	estimated := false
	if !hasPrior {
		prev = cur * s.tables.TrendBaseline(metric)
		estimated = true
	}

	var trend float64
	if prev != 0 {
		trend = (cur - prev) / prev * 100
	}

	return models.KPIValue{
		Value:      cur,
		Unit:       unit,
		TrendPct:   trend,
		IsPositive: trend > 0,
		Estimated:  estimated,
	}
}

// safeRate divides two aggregates, defining x/0 as 0.
func safeRate(numerator, divisor float64) float64 {
	if divisor == 0 {
		return 0
	}
	return numerator / divisor
}

// monthKey formats a date as a breakdown key like "March 2024".
func monthKey(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Month().String() + " " + t.Format("2006")
}

// orUnknown routes blank grouping keys into the explicit Unknown bucket so
// no record is ever dropped from a total.
func orUnknown(key string) string {
	if strings.TrimSpace(key) == "" {
		return "Unknown"
	}
	return key
}

// defaultDepartment pins a dashboard to its home department when the caller
// left the scope open. An explicit "All" still bypasses.
func defaultDepartment(scope filters.Scope, department string) filters.Scope {
	if scope.Department == "" {
		scope.Department = department
	}
	return scope
}
