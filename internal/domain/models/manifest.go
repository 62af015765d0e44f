package models

import (
	"time"

	"github.com/gulfops/vesselmetrics/internal/domain/units"
)

// VesselManifest captures the cargo moved on a single manifest.
type VesselManifest struct {
	ManifestDate    time.Time
	FinalDepartment string
	MappedLocation  string
	DeckTons        float64
	RTTons          float64 // round-trip tons: shipped out and returned unconsumed
	Lifts           int
	WetBulkBbls     float64
	WetBulkGals     float64
	CargoType       string
	Remarks         string
}

// CargoTons is deck tons plus round-trip tons; negative inputs count as zero.
func (m VesselManifest) CargoTons() float64 {
	return nonNegative(m.DeckTons) + nonNegative(m.RTTons)
}

// WetBulk returns the manifest's wet bulk volume in barrels. Manifests carry
// either barrels or gallons depending on the upload template; barrels win when
// both are present.
func (m VesselManifest) WetBulk() float64 {
	if m.WetBulkBbls > 0 {
		return m.WetBulkBbls
	}
	if m.WetBulkGals > 0 {
		return units.GallonsToBarrels(m.WetBulkGals)
	}
	return 0
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
