package dashboard

import (
	"go.uber.org/zap"

	"github.com/gulfops/vesselmetrics/internal/domain/models"
	"github.com/gulfops/vesselmetrics/internal/filters"
	"github.com/gulfops/vesselmetrics/internal/store"
)

// Production computes the production dashboard aggregate. An open department
// on the scope defaults to "Production".
func (s *Service) Production(scope filters.Scope) models.ProductionMetrics {
	scope = defaultDepartment(scope, "Production")
	ds := s.store.Snapshot()

	cur := s.vesselCore(ds, scope)
	prev, hasPrior := s.priorVesselCore(ds, scope)

	curWet := s.wetBulk(ds, scope)
	var prevWet float64
	if prevScope, ok := filters.PreviousPeriod(scope); ok {
		prevWet = s.wetBulk(ds, prevScope)
	}

	out := models.ProductionMetrics{
		CargoTons:       s.kpi("cargo_tons", "tons", cur.cargoTons, prev.cargoTons, hasPrior),
		TotalLifts:      s.kpi("total_lifts", "lifts", cur.lifts, prev.lifts, hasPrior),
		LiftsPerHour:    s.kpi("lifts_per_hour", "lifts/hr", safeRate(cur.lifts, cur.cargoOpsHours), safeRate(prev.lifts, prev.cargoOpsHours), hasPrior),
		CargoOpsHours:   s.kpi("cargo_ops_hours", "hours", cur.cargoOpsHours, prev.cargoOpsHours, hasPrior),
		ProductiveHours: s.kpi("productive_hours", "hours", cur.productiveHours, prev.productiveHours, hasPrior),
		NPTHours:        s.kpi("npt_hours", "hours", cur.nptHours, prev.nptHours, hasPrior),
		VesselUtilizationPct: s.kpi("vessel_utilization_pct", "%",
			utilization(cur), utilization(prev), hasPrior),
		ChemicalVolumeBbls: s.kpi("fluid_volume_bbls", "bbls", cur.fluidBbls, prev.fluidBbls, hasPrior),
		WetBulkBbls:        s.kpi("wet_bulk_bbls", "bbls", curWet, prevWet, hasPrior),
		MonthlyCargoTons:   s.monthlyCargoTons(ds, scope),
	}

	s.logger.Debug("production dashboard computed",
		zap.Int("matched_records", cur.matched),
		zap.Bool("trend_estimated", !hasPrior),
	)
	return out
}

// wetBulk sums manifest wet bulk volume (canonical barrels) for a scope.
func (s *Service) wetBulk(ds store.Dataset, scope filters.Scope) float64 {
	var total float64
	for _, m := range ds.VesselManifests {
		if !filters.Matches(s.classifier, m.ManifestDate, m.FinalDepartment, m.MappedLocation, scope) {
			continue
		}
		total += m.WetBulk()
	}
	return total
}
