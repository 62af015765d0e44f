package dashboard

import (
	"strings"
	"time"

	"github.com/gulfops/vesselmetrics/internal/domain/models"
	"github.com/gulfops/vesselmetrics/internal/filters"
)

// Grouping dimensions accepted by the comparison dashboard.
const (
	GroupByLocation    = "location"
	GroupByDepartment  = "department"
	GroupByMonth       = "month"
	GroupByProjectType = "projectType"
)

// Comparison computes the core KPI set split by a grouping dimension.
// Unknown dimensions fall back to location. Records with a blank grouping
// key land in the "Unknown" slice rather than being dropped.
func (s *Service) Comparison(scope filters.Scope, groupBy string) models.ComparisonMetrics {
	switch groupBy {
	case GroupByLocation, GroupByDepartment, GroupByMonth, GroupByProjectType:
	default:
		groupBy = GroupByLocation
	}

	ds := s.store.Snapshot()
	slices := make(map[string]models.ComparisonSlice)

	upsert := func(key string, apply func(*models.ComparisonSlice)) {
		key = orUnknown(key)
		slice := slices[key]
		apply(&slice)
		slices[key] = slice
	}

	for _, m := range ds.VesselManifests {
		if !filters.Matches(s.classifier, m.ManifestDate, m.FinalDepartment, m.MappedLocation, scope) {
			continue
		}
		key := s.groupKey(groupBy, m.ManifestDate, m.FinalDepartment, m.MappedLocation, "")
		cargo, lifts := m.CargoTons(), float64(m.Lifts)
		upsert(key, func(sl *models.ComparisonSlice) {
			sl.CargoTons += cargo
			sl.Lifts += lifts
		})
	}

	for _, e := range ds.VoyageEvents {
		if !filters.Matches(s.classifier, e.EventDate, e.Department, e.Location, scope) {
			continue
		}
		hours, productive := e.Hours(), e.IsProductive()
		key := s.groupKey(groupBy, e.EventDate, e.Department, e.Location, "")
		upsert(key, func(sl *models.ComparisonSlice) {
			if productive {
				sl.ProductiveHours += hours
			} else {
				sl.NPTHours += hours
			}
		})
	}

	for _, c := range ds.CostAllocations {
		date := allocationDate(c)
		if !filters.Matches(s.classifier, date, c.Department, c.RigLocation, scope) {
			continue
		}
		project := string(s.classifier.ProjectType("", c.CostElement, c.LCNumber, c.ProjectType))
		key := s.groupKey(groupBy, date, c.Department, c.RigLocation, project)
		cost := c.EffectiveCost()
		upsert(key, func(sl *models.ComparisonSlice) {
			sl.CostUSD += cost
		})
	}

	for _, op := range s.engine.Consolidate(ds.BulkActions, scope).Operations {
		if !op.IsDelivery {
			continue
		}
		key := s.groupKey(groupBy, op.OffloadDate, fluidDepartment(op.FluidFamily), op.Destination, "")
		volume := op.TotalVolumeBbls
		upsert(key, func(sl *models.ComparisonSlice) {
			sl.FluidVolumeBbls += volume
		})
	}

	return models.ComparisonMetrics{GroupBy: groupBy, Slices: slices}
}

// groupKey picks the record field matching the grouping dimension.
func (s *Service) groupKey(groupBy string, date time.Time, department, location, projectType string) string {
	switch groupBy {
	case GroupByDepartment:
		return strings.TrimSpace(department)
	case GroupByMonth:
		return monthKey(date)
	case GroupByProjectType:
		return projectType
	default:
		return s.classifier.NormalizeLocation(location)
	}
}

// fluidDepartment maps a fluid family back to the department that consumes
// it, for department-grouped fluid volumes.
func fluidDepartment(family models.FluidFamily) string {
	switch family {
	case models.FluidDrilling, models.FluidCompletion:
		return "Drilling"
	case models.FluidProductionChemical:
		return "Production"
	}
	return "Other"
}
