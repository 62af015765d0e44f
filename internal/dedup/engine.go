// Package dedup pairs bulk fluid load/offload rows back into the single
// physical transfers they describe. Uploads record both legs of a transfer,
// so naive summing doubles every tracked movement; the engine counts volume
// on the delivery (offload) leg only.
package dedup

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gulfops/vesselmetrics/internal/classify"
	"github.com/gulfops/vesselmetrics/internal/domain/models"
	"github.com/gulfops/vesselmetrics/internal/filters"
)

// pairingWindow bounds how far apart in time a load and its offload may be
// and still belong to the same logistics run.
const pairingWindow = 96 * time.Hour

// ConsolidatedOperation is one physical transfer reconstructed from its
// recorded legs. Volume is counted toward totals only when IsDelivery is
// true, which happens exactly once per transfer.
type ConsolidatedOperation struct {
	ID              string             `json:"id"`
	Vessel          string             `json:"vessel"`
	BulkType        string             `json:"bulk_type"`
	FluidFamily     models.FluidFamily `json:"fluid_family"`
	Origin          string             `json:"origin"`
	Destination     string             `json:"destination"`
	LoadDate        time.Time          `json:"load_date,omitempty"`
	OffloadDate     time.Time          `json:"offload_date,omitempty"`
	TotalVolumeBbls float64            `json:"total_volume_bbls"`
	IsDelivery      bool               `json:"is_delivery"`
	IsReturn        bool               `json:"is_return"`
}

// FluidMetrics is the engine's result for one scope.
type FluidMetrics struct {
	TotalFluidVolumeBbls float64
	Operations           []ConsolidatedOperation
}

// Engine consolidates bulk actions. Stateless apart from its collaborators;
// safe for concurrent use.
type Engine struct {
	classifier *classify.Classifier
	logger     *zap.Logger
}

// NewEngine wires a dedup engine.
func NewEngine(classifier *classify.Classifier, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{classifier: classifier, logger: logger}
}

// Consolidate filters actions by scope, pairs load legs with their offload
// legs, and returns the deduplicated volume total. The result is a pure
// function of (actions, scope): input order never changes the totals, and
// operation IDs are derived from record content so repeated runs are
// identical.
//
// Window-boundary rule: a load whose offload falls outside the filtered
// window contributes zero (conservative), while an offload without a visible
// load counts at face value (assumes an untracked prior load).
func (e *Engine) Consolidate(actions []models.BulkAction, scope filters.Scope) FluidMetrics {
	filtered := make([]models.BulkAction, 0, len(actions))
	for _, a := range actions {
		if !filters.MatchesPeriod(a.StartDate, scope) {
			continue
		}
		if !e.departmentKeeps(a, scope) {
			continue
		}
		if scope.Location != "" &&
			!e.classifier.LocationsMatch(a.StandardizedDestination, scope.Location) &&
			!e.classifier.LocationsMatch(a.StandardizedOrigin, scope.Location) {
			continue
		}
		filtered = append(filtered, a)
	}

	// Deterministic processing order regardless of upload order.
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].StartDate.Equal(filtered[j].StartDate) {
			return filtered[i].StartDate.Before(filtered[j].StartDate)
		}
		if filtered[i].VesselName != filtered[j].VesselName {
			return filtered[i].VesselName < filtered[j].VesselName
		}
		return filtered[i].Action < filtered[j].Action
	})

	groups := make(map[string][]models.BulkAction)
	order := make([]string, 0)
	for _, a := range filtered {
		key := strings.ToLower(a.VesselName) + "|" + strings.ToLower(a.BulkType)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], a)
	}

	var ops []ConsolidatedOperation
	for _, key := range order {
		ops = append(ops, e.consolidateGroup(groups[key])...)
	}

	var total float64
	for _, op := range ops {
		if op.IsDelivery {
			total += op.TotalVolumeBbls
		}
	}

	e.logger.Debug("bulk actions consolidated",
		zap.Int("input", len(actions)),
		zap.Int("filtered", len(filtered)),
		zap.Int("operations", len(ops)),
		zap.Float64("total_bbls", total),
	)

	return FluidMetrics{TotalFluidVolumeBbls: total, Operations: ops}
}

// consolidateGroup pairs within one vessel+bulk-type group. Each offload
// claims the nearest-in-time unpaired load on the same leg; leftovers stand
// alone as their own operation.
func (e *Engine) consolidateGroup(group []models.BulkAction) []ConsolidatedOperation {
	var loads, offloads, others []models.BulkAction
	for _, a := range group {
		switch a.Action {
		case models.ActionLoad:
			loads = append(loads, a)
		case models.ActionOffload:
			offloads = append(offloads, a)
		default:
			others = append(others, a)
		}
	}

	claimed := make([]bool, len(loads))
	var ops []ConsolidatedOperation

	for _, off := range offloads {
		best := -1
		var bestGap time.Duration
		for i, ld := range loads {
			if claimed[i] || !e.sameLeg(ld, off) {
				continue
			}
			gap := off.StartDate.Sub(ld.StartDate)
			if gap < 0 {
				gap = -gap
			}
			if gap > pairingWindow {
				continue
			}
			if best == -1 || gap < bestGap {
				best, bestGap = i, gap
			}
		}

		op := ConsolidatedOperation{
			Vessel:          off.VesselName,
			BulkType:        off.BulkType,
			FluidFamily:     e.classifier.Fluid(off),
			Origin:          off.StandardizedOrigin,
			Destination:     off.StandardizedDestination,
			OffloadDate:     off.StartDate,
			TotalVolumeBbls: off.Volume(),
			IsDelivery:      true, // volume counted at the delivery leg only
			IsReturn:        off.IsReturn,
		}
		if best >= 0 {
			claimed[best] = true
			ld := loads[best]
			op.LoadDate = ld.StartDate
			if op.Origin == "" {
				op.Origin = ld.StandardizedOrigin
			}
			if op.Destination == "" {
				op.Destination = ld.StandardizedDestination
			}
		}
		op.ID = operationID(op)
		ops = append(ops, op)
	}

	// Loads with no offload in the window: recorded, but zero toward totals
	// until the matching offload shows up in a later upload.
	for i, ld := range loads {
		if claimed[i] {
			continue
		}
		op := ConsolidatedOperation{
			Vessel:          ld.VesselName,
			BulkType:        ld.BulkType,
			FluidFamily:     e.classifier.Fluid(ld),
			Origin:          ld.StandardizedOrigin,
			Destination:     ld.StandardizedDestination,
			LoadDate:        ld.StartDate,
			TotalVolumeBbls: ld.Volume(),
			IsDelivery:      false,
			IsReturn:        ld.IsReturn,
		}
		op.ID = operationID(op)
		ops = append(ops, op)
	}

	for _, a := range others {
		op := ConsolidatedOperation{
			Vessel:          a.VesselName,
			BulkType:        a.BulkType,
			FluidFamily:     e.classifier.Fluid(a),
			Origin:          a.StandardizedOrigin,
			Destination:     a.StandardizedDestination,
			LoadDate:        a.StartDate,
			TotalVolumeBbls: a.Volume(),
			IsDelivery:      false,
			IsReturn:        a.IsReturn,
		}
		op.ID = operationID(op)
		ops = append(ops, op)
	}

	return ops
}

// sameLeg reports whether a load and an offload describe one logistics run:
// the load's destination is where the offload happened, or both rows carry
// the same origin/destination pair for a round-trip leg.
func (e *Engine) sameLeg(load, offload models.BulkAction) bool {
	if e.classifier.LocationsMatch(load.StandardizedDestination, offload.StandardizedDestination) {
		return true
	}
	if e.classifier.LocationsMatch(load.StandardizedDestination, offload.StandardizedOrigin) {
		return true
	}
	return e.classifier.LocationsMatch(load.StandardizedOrigin, offload.StandardizedOrigin) &&
		load.StandardizedDestination == "" && offload.StandardizedDestination == ""
}

// departmentKeeps maps the department filter onto fluid families, since bulk
// rows carry no department of their own: Drilling keeps drilling and
// completion fluids, Production keeps production chemicals. "All" and
// unrecognized departments bypass.
func (e *Engine) departmentKeeps(a models.BulkAction, scope filters.Scope) bool {
	if scope.Department == "" || strings.EqualFold(scope.Department, filters.DepartmentAll) {
		return true
	}
	family := e.classifier.Fluid(a)
	switch {
	case strings.EqualFold(scope.Department, "Drilling"):
		return family == models.FluidDrilling || family == models.FluidCompletion
	case strings.EqualFold(scope.Department, "Production"):
		return family == models.FluidProductionChemical
	}
	return true
}

// operationID derives a stable identifier from the operation's content, so
// identical inputs always produce identical output (uuid v5 over the
// consolidated fields).
func operationID(op ConsolidatedOperation) string {
	seed := fmt.Sprintf("%s|%s|%s|%s|%s|%s|%.4f|%t",
		op.Vessel, op.BulkType, op.Origin, op.Destination,
		op.LoadDate.UTC().Format(time.RFC3339), op.OffloadDate.UTC().Format(time.RFC3339),
		op.TotalVolumeBbls, op.IsDelivery,
	)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String()
}
