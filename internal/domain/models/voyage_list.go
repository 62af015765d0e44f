package models

import (
	"strings"
	"time"
)

// VoyagePurpose classifies a voyage by the departments it served.
type VoyagePurpose string

const (
	PurposeDrilling   VoyagePurpose = "Drilling"
	PurposeProduction VoyagePurpose = "Production"
	PurposeMixed      VoyagePurpose = "Mixed"
	PurposeOther      VoyagePurpose = "Other"
)

// VoyageListEntry is one voyage from the voyage list sheet.
type VoyageListEntry struct {
	VoyageDate      time.Time
	Vessel          string
	VoyagePurpose   VoyagePurpose
	Mission         string
	Locations       string // delimited path, e.g. "Fourchon -> Thunder Horse -> Fourchon"
	LocationList    []string
	DurationHours   float64
	StopCount       int
	MainDestination string
	OriginPort      string
}

// Stops returns the visited locations, preferring the parsed list and falling
// back to splitting the raw path string.
func (v VoyageListEntry) Stops() []string {
	if len(v.LocationList) > 0 {
		return v.LocationList
	}
	raw := v.Locations
	for _, sep := range []string{"->", ";", ","} {
		if strings.Contains(raw, sep) {
			parts := strings.Split(raw, sep)
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					out = append(out, p)
				}
			}
			return out
		}
	}
	if raw = strings.TrimSpace(raw); raw != "" {
		return []string{raw}
	}
	return nil
}
