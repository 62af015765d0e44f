package dashboard

import (
	"strings"

	"go.uber.org/zap"

	"github.com/gulfops/vesselmetrics/internal/domain/models"
	"github.com/gulfops/vesselmetrics/internal/filters"
	"github.com/gulfops/vesselmetrics/internal/store"
)

type voyageCore struct {
	count     int
	duration  float64
	stops     int
	mixed     int
	byPurpose map[models.VoyagePurpose]int
}

// Voyages computes the voyage analytics dashboard aggregate.
func (s *Service) Voyages(scope filters.Scope) models.VoyageMetrics {
	ds := s.store.Snapshot()

	cur := s.voyageCore(ds, scope)
	var prev voyageCore
	hasPrior := false
	if prevScope, ok := filters.PreviousPeriod(scope); ok {
		prev = s.voyageCore(ds, prevScope)
		hasPrior = prev.count > 0
	}

	byPurpose := make(models.Breakdown, len(cur.byPurpose))
	for purpose, n := range cur.byPurpose {
		byPurpose[string(purpose)] = float64(n)
	}

	out := models.VoyageMetrics{
		VoyageCount:      s.kpi("voyage_count", "voyages", float64(cur.count), float64(prev.count), hasPrior),
		AvgDurationHours: s.kpi("avg_duration_hours", "hours", safeRate(cur.duration, float64(cur.count)), safeRate(prev.duration, float64(prev.count)), hasPrior),
		AvgStops:         s.kpi("avg_stops", "stops", safeRate(float64(cur.stops), float64(cur.count)), safeRate(float64(prev.stops), float64(prev.count)), hasPrior),
		MixedPurposePct:  s.kpi("mixed_purpose_pct", "%", safeRate(float64(cur.mixed), float64(cur.count))*100, safeRate(float64(prev.mixed), float64(prev.count))*100, hasPrior),
		ByPurpose:        byPurpose,
		ByVesselType:     s.voyagesByVesselType(ds, scope),
		TopDestinations:  s.topDestinations(ds, scope),
	}

	s.logger.Debug("voyage dashboard computed",
		zap.Int("voyages", cur.count),
		zap.Bool("trend_estimated", !hasPrior),
	)
	return out
}

func (s *Service) voyageCore(ds store.Dataset, scope filters.Scope) voyageCore {
	core := voyageCore{byPurpose: make(map[models.VoyagePurpose]int)}
	for _, v := range ds.VoyageList {
		if !s.voyageMatches(v, scope) {
			continue
		}
		core.count++
		if v.DurationHours > 0 {
			core.duration += v.DurationHours
		}
		core.stops += voyageStops(v)
		purpose := v.VoyagePurpose
		if purpose == "" {
			purpose = models.PurposeOther
		}
		core.byPurpose[purpose]++
		if purpose == models.PurposeMixed {
			core.mixed++
		}
	}
	return core
}

// voyageMatches filters voyages by period, location (any stop on the path
// counts) and department. Departments map onto purposes: a Drilling scope
// keeps Drilling and Mixed voyages, a Production scope keeps Production and
// Mixed.
func (s *Service) voyageMatches(v models.VoyageListEntry, scope filters.Scope) bool {
	if !filters.MatchesPeriod(v.VoyageDate, scope) {
		return false
	}

	if scope.Location != "" {
		found := false
		for _, stop := range v.Stops() {
			if s.classifier.LocationsMatch(stop, scope.Location) {
				found = true
				break
			}
		}
		if !found && !s.classifier.LocationsMatch(v.MainDestination, scope.Location) {
			return false
		}
	}

	switch {
	case scope.Department == "" || strings.EqualFold(scope.Department, filters.DepartmentAll):
		return true
	case strings.EqualFold(scope.Department, "Drilling"):
		return v.VoyagePurpose == models.PurposeDrilling || v.VoyagePurpose == models.PurposeMixed
	case strings.EqualFold(scope.Department, "Production"):
		return v.VoyagePurpose == models.PurposeProduction || v.VoyagePurpose == models.PurposeMixed
	}
	return true
}

// voyagesByVesselType counts voyages per vessel classification.
func (s *Service) voyagesByVesselType(ds store.Dataset, scope filters.Scope) models.Breakdown {
	out := make(models.Breakdown)
	for _, v := range ds.VoyageList {
		if !s.voyageMatches(v, scope) {
			continue
		}
		out[s.classifier.VesselType(v.Vessel)]++
	}
	return out
}

// topDestinations counts voyages per normalized main destination.
func (s *Service) topDestinations(ds store.Dataset, scope filters.Scope) models.Breakdown {
	out := make(models.Breakdown)
	for _, v := range ds.VoyageList {
		if !s.voyageMatches(v, scope) {
			continue
		}
		dest := v.MainDestination
		if dest == "" && len(v.Stops()) > 0 {
			dest = v.Stops()[len(v.Stops())-1]
		}
		out[orUnknown(s.classifier.NormalizeLocation(dest))]++
	}
	return out
}

func voyageStops(v models.VoyageListEntry) int {
	if v.StopCount > 0 {
		return v.StopCount
	}
	return len(v.Stops())
}
