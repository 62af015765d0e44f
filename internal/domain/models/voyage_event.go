package models

import "time"

// ActivityCategory partitions voyage events into exactly two buckets whose
// hours sum to the total hours for any scope.
type ActivityCategory string

const (
	ActivityProductive    ActivityCategory = "Productive"
	ActivityNonProductive ActivityCategory = "Non-Productive"
)

// PortType identifies where an event took place.
type PortType string

const (
	PortRig  PortType = "rig"
	PortBase PortType = "base"
)

// VoyageEvent captures a single timed activity recorded against a voyage.
type VoyageEvent struct {
	EventDate        time.Time
	Department       string
	Location         string
	Vessel           string
	VoyageNumber     string
	ParentEvent      string // e.g. "Cargo Ops", "Transit", "Waiting on Weather"
	Event            string
	ActivityCategory ActivityCategory
	PortType         PortType
	FinalHours       float64
}

// Hours returns the event duration, clamped to zero for degenerate rows.
func (e VoyageEvent) Hours() float64 {
	if e.FinalHours < 0 {
		return 0
	}
	return e.FinalHours
}

// IsProductive reports whether the event counts toward operational throughput.
func (e VoyageEvent) IsProductive() bool {
	return e.ActivityCategory == ActivityProductive
}
