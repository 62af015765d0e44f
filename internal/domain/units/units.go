// Package units defines the canonical volume unit for the engine.
//
// Barrels are the only unit stored or aggregated internally; gallons exist
// solely at the ingestion boundary and are converted exactly once.
package units

// GallonsPerBarrel is the US oilfield conversion factor.
const GallonsPerBarrel = 42.0

// GallonsToBarrels converts a gallon quantity to barrels.
func GallonsToBarrels(gals float64) float64 {
	return gals / GallonsPerBarrel
}

// BarrelsToGallons converts a barrel quantity to gallons.
func BarrelsToGallons(bbls float64) float64 {
	return bbls * GallonsPerBarrel
}
