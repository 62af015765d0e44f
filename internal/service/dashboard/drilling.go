package dashboard

import (
	"strings"

	"go.uber.org/zap"

	"github.com/gulfops/vesselmetrics/internal/domain/models"
	"github.com/gulfops/vesselmetrics/internal/filters"
	"github.com/gulfops/vesselmetrics/internal/store"
)

// vesselCore is the shared spine of the drilling and production dashboards:
// cargo and lift totals from manifests, hour splits from voyage events, and
// the deduplicated fluid volume for the department.
type vesselCore struct {
	cargoTons       float64
	lifts           float64
	cargoOpsHours   float64
	productiveHours float64
	nptHours        float64
	fluidBbls       float64
	matched         int
}

// Drilling computes the drilling dashboard aggregate. An open department on
// the scope defaults to "Drilling"; pass "All" to aggregate across
// departments.
func (s *Service) Drilling(scope filters.Scope) models.DrillingMetrics {
	scope = defaultDepartment(scope, "Drilling")
	ds := s.store.Snapshot()

	cur := s.vesselCore(ds, scope)
	prev, hasPrior := s.priorVesselCore(ds, scope)

	out := models.DrillingMetrics{
		CargoTons:       s.kpi("cargo_tons", "tons", cur.cargoTons, prev.cargoTons, hasPrior),
		TotalLifts:      s.kpi("total_lifts", "lifts", cur.lifts, prev.lifts, hasPrior),
		LiftsPerHour:    s.kpi("lifts_per_hour", "lifts/hr", safeRate(cur.lifts, cur.cargoOpsHours), safeRate(prev.lifts, prev.cargoOpsHours), hasPrior),
		CargoOpsHours:   s.kpi("cargo_ops_hours", "hours", cur.cargoOpsHours, prev.cargoOpsHours, hasPrior),
		ProductiveHours: s.kpi("productive_hours", "hours", cur.productiveHours, prev.productiveHours, hasPrior),
		NPTHours:        s.kpi("npt_hours", "hours", cur.nptHours, prev.nptHours, hasPrior),
		VesselUtilizationPct: s.kpi("vessel_utilization_pct", "%",
			utilization(cur), utilization(prev), hasPrior),
		FluidVolumeBbls:  s.kpi("fluid_volume_bbls", "bbls", cur.fluidBbls, prev.fluidBbls, hasPrior),
		MonthlyCargoTons: s.monthlyCargoTons(ds, scope),
	}

	s.logger.Debug("drilling dashboard computed",
		zap.Int("matched_records", cur.matched),
		zap.Bool("trend_estimated", !hasPrior),
	)
	return out
}

// vesselCore aggregates the department spine for one scope.
func (s *Service) vesselCore(ds store.Dataset, scope filters.Scope) vesselCore {
	var core vesselCore

	for _, m := range ds.VesselManifests {
		if !filters.Matches(s.classifier, m.ManifestDate, m.FinalDepartment, m.MappedLocation, scope) {
			continue
		}
		core.cargoTons += m.CargoTons()
		core.lifts += float64(m.Lifts)
		core.matched++
	}

	for _, e := range ds.VoyageEvents {
		if !filters.Matches(s.classifier, e.EventDate, e.Department, e.Location, scope) {
			continue
		}
		hours := e.Hours()
		if isCargoOps(e.ParentEvent) {
			core.cargoOpsHours += hours
		}
		// Anything not explicitly productive counts as NPT, so the two
		// buckets always sum to total hours for the scope.
		if e.IsProductive() {
			core.productiveHours += hours
		} else {
			core.nptHours += hours
		}
		core.matched++
	}

	fluids := s.engine.Consolidate(ds.BulkActions, scope)
	core.fluidBbls = fluids.TotalFluidVolumeBbls
	core.matched += len(fluids.Operations)

	return core
}

// priorVesselCore reruns the spine over the previous comparison window.
// hasPrior is false when the scope has no period or the window held nothing.
func (s *Service) priorVesselCore(ds store.Dataset, scope filters.Scope) (vesselCore, bool) {
	prevScope, ok := filters.PreviousPeriod(scope)
	if !ok {
		return vesselCore{}, false
	}
	prev := s.vesselCore(ds, prevScope)
	return prev, prev.matched > 0
}

// monthlyCargoTons breaks cargo tons down by month across the scope's year,
// ignoring any selected month so the full trend line is available.
func (s *Service) monthlyCargoTons(ds store.Dataset, scope filters.Scope) models.Breakdown {
	yearScope := scope
	yearScope.Month = ""

	out := make(models.Breakdown)
	for _, m := range ds.VesselManifests {
		if !filters.Matches(s.classifier, m.ManifestDate, m.FinalDepartment, m.MappedLocation, yearScope) {
			continue
		}
		out[monthKey(m.ManifestDate)] += m.CargoTons()
	}
	return out
}

func utilization(c vesselCore) float64 {
	return safeRate(c.productiveHours, c.productiveHours+c.nptHours) * 100
}

func isCargoOps(parentEvent string) bool {
	return strings.EqualFold(strings.TrimSpace(parentEvent), "Cargo Ops")
}
