package models

import "time"

// ProjectType is the closed set of activity classifications used by cost
// reporting. Free-text records are mapped into this set by the classify
// package; explicit values from the upload always win.
type ProjectType string

const (
	ProjectDrilling        ProjectType = "Drilling"
	ProjectCompletions     ProjectType = "Completions"
	ProjectPlugAndAbandon  ProjectType = "P&A"
	ProjectProduction      ProjectType = "Production"
	ProjectMaintenance     ProjectType = "Maintenance"
	ProjectOperatorSharing ProjectType = "Operator Sharing"
	ProjectOther           ProjectType = "Other"
)

// KnownProjectType reports whether v is one of the closed enum values.
func KnownProjectType(v ProjectType) bool {
	switch v {
	case ProjectDrilling, ProjectCompletions, ProjectPlugAndAbandon,
		ProjectProduction, ProjectMaintenance, ProjectOperatorSharing, ProjectOther:
		return true
	}
	return false
}

// CostAllocation is one vessel cost line allocated to a location and month.
type CostAllocation struct {
	CostAllocationDate  time.Time
	MonthYear           string // e.g. "March 2024", as keyed in the upload
	LCNumber            string
	RigLocation         string
	LocationReference   string
	Department          string
	ProjectType         ProjectType
	CostElement         string
	TotalAllocatedDays  float64
	BudgetedVesselCost  float64
	TotalCost           float64
	VesselDailyRateUsed float64
	RigType             string
	WaterDepth          float64
}

// EffectiveCost prefers the budgeted vessel cost and falls back to the raw
// total when no budget figure is present.
func (c CostAllocation) EffectiveCost() float64 {
	if c.BudgetedVesselCost > 0 {
		return c.BudgetedVesselCost
	}
	return nonNegative(c.TotalCost)
}

// EffectiveDays returns the allocated day count, which may legitimately be 0.
func (c CostAllocation) EffectiveDays() float64 {
	return nonNegative(c.TotalAllocatedDays)
}
