package dashboard

import (
	"go.uber.org/zap"

	"github.com/gulfops/vesselmetrics/internal/dedup"
	"github.com/gulfops/vesselmetrics/internal/domain/models"
	"github.com/gulfops/vesselmetrics/internal/filters"
)

// Bulk computes the bulk actions dashboard aggregate from the deduplicated
// transfer operations, so a paired load/offload is never counted twice.
func (s *Service) Bulk(scope filters.Scope) models.BulkMetrics {
	ds := s.store.Snapshot()

	cur := s.engine.Consolidate(ds.BulkActions, scope)
	var prev dedup.FluidMetrics
	hasPrior := false
	if prevScope, ok := filters.PreviousPeriod(scope); ok {
		prev = s.engine.Consolidate(ds.BulkActions, prevScope)
		hasPrior = len(prev.Operations) > 0
	}

	curFamilies := deliveredByFamily(cur)
	prevFamilies := deliveredByFamily(prev)

	byFamily := make(models.Breakdown, len(curFamilies))
	for family, bbls := range curFamilies {
		byFamily[string(family)] = bbls
	}

	out := models.BulkMetrics{
		TotalFluidVolumeBbls:   s.kpi("fluid_volume_bbls", "bbls", cur.TotalFluidVolumeBbls, prev.TotalFluidVolumeBbls, hasPrior),
		DrillingFluidBbls:      s.kpi("drilling_fluid_bbls", "bbls", curFamilies[models.FluidDrilling], prevFamilies[models.FluidDrilling], hasPrior),
		CompletionFluidBbls:    s.kpi("completion_fluid_bbls", "bbls", curFamilies[models.FluidCompletion], prevFamilies[models.FluidCompletion], hasPrior),
		ProductionChemicalBbls: s.kpi("production_chemical_bbls", "bbls", curFamilies[models.FluidProductionChemical], prevFamilies[models.FluidProductionChemical], hasPrior),
		DieselBbls:             s.kpi("diesel_bbls", "bbls", curFamilies[models.FluidDiesel], prevFamilies[models.FluidDiesel], hasPrior),
		OperationCount:         s.kpi("operation_count", "operations", float64(len(cur.Operations)), float64(len(prev.Operations)), hasPrior),
		ByFluidFamily:          byFamily,
	}

	s.logger.Debug("bulk dashboard computed",
		zap.Int("operations", len(cur.Operations)),
		zap.Float64("total_bbls", cur.TotalFluidVolumeBbls),
		zap.Bool("trend_estimated", !hasPrior),
	)
	return out
}

// deliveredByFamily sums delivery-side volume per fluid family.
func deliveredByFamily(m dedup.FluidMetrics) map[models.FluidFamily]float64 {
	out := make(map[models.FluidFamily]float64)
	for _, op := range m.Operations {
		if op.IsDelivery {
			out[op.FluidFamily] += op.TotalVolumeBbls
		}
	}
	return out
}
