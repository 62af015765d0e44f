package models

import (
	"time"

	"github.com/gulfops/vesselmetrics/internal/domain/units"
)

// BulkActionType is the recorded direction of a bulk fluid movement.
type BulkActionType string

const (
	ActionLoad    BulkActionType = "load"
	ActionOffload BulkActionType = "offload"
)

// FluidFamily buckets bulk transfers by what the fluid is for.
type FluidFamily string

const (
	FluidDrilling           FluidFamily = "drilling"
	FluidCompletion         FluidFamily = "completion"
	FluidProductionChemical FluidFamily = "production-chemical"
	FluidDiesel             FluidFamily = "diesel"
	FluidNone               FluidFamily = "none"
)

// BulkAction is one recorded load or offload of bulk fluid. A single physical
// transfer usually appears twice in the upload (the load at the base and the
// offload at the rig); the dedup engine pairs those rows back together.
type BulkAction struct {
	StartDate               time.Time
	VesselName              string
	BulkType                string
	BulkDescription         string
	FluidSpecificType       string
	Action                  BulkActionType
	VolumeBbls              float64
	VolumeGals              float64
	StandardizedOrigin      string
	StandardizedDestination string
	PortType                PortType
	IsDrillingFluid         bool
	IsCompletionFluid       bool
	IsReturn                bool
}

// Volume returns the transfer volume in canonical barrels. Rows carry either
// barrels or gallons depending on the source sheet; gallons are converted
// exactly once here and never anywhere else.
func (a BulkAction) Volume() float64 {
	if a.VolumeBbls > 0 {
		return a.VolumeBbls
	}
	if a.VolumeGals > 0 {
		return units.GallonsToBarrels(a.VolumeGals)
	}
	return 0
}
