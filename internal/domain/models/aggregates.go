package models

// KPIValue is a single headline metric with its period-over-period trend.
// Aggregators always return a fully populated value; an empty scope yields the
// zero KPIValue (Value 0, TrendPct 0, IsPositive false), never a nil.
type KPIValue struct {
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	TrendPct float64 `json:"trend_pct"`
	// IsPositive is true only for a strictly upward trend.
	IsPositive bool `json:"is_positive"`
	// Estimated marks trends whose baseline came from the configured
	// synthetic multiplier rather than a real prior-period aggregate.
	Estimated bool `json:"estimated"`
}

// Breakdown maps a grouping key (month, location, department, project type)
// to an aggregated value.
type Breakdown map[string]float64

// DrillingMetrics is the drilling dashboard aggregate.
type DrillingMetrics struct {
	CargoTons            KPIValue  `json:"cargo_tons"`
	TotalLifts           KPIValue  `json:"total_lifts"`
	LiftsPerHour         KPIValue  `json:"lifts_per_hour"`
	CargoOpsHours        KPIValue  `json:"cargo_ops_hours"`
	ProductiveHours      KPIValue  `json:"productive_hours"`
	NPTHours             KPIValue  `json:"npt_hours"`
	VesselUtilizationPct KPIValue  `json:"vessel_utilization_pct"`
	FluidVolumeBbls      KPIValue  `json:"fluid_volume_bbls"`
	MonthlyCargoTons     Breakdown `json:"monthly_cargo_tons"`
}

// ProductionMetrics is the production dashboard aggregate.
type ProductionMetrics struct {
	CargoTons            KPIValue  `json:"cargo_tons"`
	TotalLifts           KPIValue  `json:"total_lifts"`
	LiftsPerHour         KPIValue  `json:"lifts_per_hour"`
	CargoOpsHours        KPIValue  `json:"cargo_ops_hours"`
	ProductiveHours      KPIValue  `json:"productive_hours"`
	NPTHours             KPIValue  `json:"npt_hours"`
	VesselUtilizationPct KPIValue  `json:"vessel_utilization_pct"`
	ChemicalVolumeBbls   KPIValue  `json:"chemical_volume_bbls"`
	WetBulkBbls          KPIValue  `json:"wet_bulk_bbls"`
	MonthlyCargoTons     Breakdown `json:"monthly_cargo_tons"`
}

// ComparisonSlice is the per-group row of the comparison dashboard.
type ComparisonSlice struct {
	CargoTons       float64 `json:"cargo_tons"`
	Lifts           float64 `json:"lifts"`
	ProductiveHours float64 `json:"productive_hours"`
	NPTHours        float64 `json:"npt_hours"`
	CostUSD         float64 `json:"cost_usd"`
	FluidVolumeBbls float64 `json:"fluid_volume_bbls"`
}

// ComparisonMetrics groups the core KPI set by a caller-selected dimension.
type ComparisonMetrics struct {
	GroupBy string                     `json:"group_by"`
	Slices  map[string]ComparisonSlice `json:"slices"`
}

// CostAllocationMetrics is the cost allocation dashboard aggregate. Money is
// accumulated in decimals and rounded to cents before it lands here.
type CostAllocationMetrics struct {
	TotalCostUSD       KPIValue  `json:"total_cost_usd"`
	BudgetedCostUSD    KPIValue  `json:"budgeted_cost_usd"`
	TotalAllocatedDays KPIValue  `json:"total_allocated_days"`
	AvgDailyRateUSD    KPIValue  `json:"avg_daily_rate_usd"`
	ByProjectType      Breakdown `json:"by_project_type"`
	ByDepartment       Breakdown `json:"by_department"`
	ByMonthYear        Breakdown `json:"by_month_year"`
}

// VoyageMetrics is the voyage analytics dashboard aggregate.
type VoyageMetrics struct {
	VoyageCount      KPIValue  `json:"voyage_count"`
	AvgDurationHours KPIValue  `json:"avg_duration_hours"`
	AvgStops         KPIValue  `json:"avg_stops"`
	MixedPurposePct  KPIValue  `json:"mixed_purpose_pct"`
	ByPurpose        Breakdown `json:"by_purpose"`
	ByVesselType     Breakdown `json:"by_vessel_type"`
	TopDestinations  Breakdown `json:"top_destinations"`
}

// BulkMetrics is the bulk actions dashboard aggregate. Volumes are barrels
// and already deduplicated, so totals never double-count a paired
// load/offload transfer.
type BulkMetrics struct {
	TotalFluidVolumeBbls   KPIValue  `json:"total_fluid_volume_bbls"`
	DrillingFluidBbls      KPIValue  `json:"drilling_fluid_bbls"`
	CompletionFluidBbls    KPIValue  `json:"completion_fluid_bbls"`
	ProductionChemicalBbls KPIValue  `json:"production_chemical_bbls"`
	DieselBbls             KPIValue  `json:"diesel_bbls"`
	OperationCount         KPIValue  `json:"operation_count"`
	ByFluidFamily          Breakdown `json:"by_fluid_family"`
}
