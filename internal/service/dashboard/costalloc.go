package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gulfops/vesselmetrics/internal/domain/models"
	"github.com/gulfops/vesselmetrics/internal/filters"
	"github.com/gulfops/vesselmetrics/internal/store"
)

// costCore accumulates money in decimals so cents survive the summation;
// float64 only appears after rounding.
type costCore struct {
	totalCost    decimal.Decimal
	budgetedCost decimal.Decimal
	days         float64
	matched      int
}

// CostAllocation computes the cost allocation dashboard aggregate.
func (s *Service) CostAllocation(scope filters.Scope) models.CostAllocationMetrics {
	ds := s.store.Snapshot()

	cur := s.costCore(ds, scope)
	var prev costCore
	hasPrior := false
	if prevScope, ok := filters.PreviousPeriod(scope); ok {
		prev = s.costCore(ds, prevScope)
		hasPrior = prev.matched > 0
	}

	curTotal := cur.totalCost.Round(2).InexactFloat64()
	prevTotal := prev.totalCost.Round(2).InexactFloat64()

	out := models.CostAllocationMetrics{
		TotalCostUSD:       s.kpi("total_cost_usd", "USD", curTotal, prevTotal, hasPrior),
		BudgetedCostUSD:    s.kpi("budgeted_cost_usd", "USD", cur.budgetedCost.Round(2).InexactFloat64(), prev.budgetedCost.Round(2).InexactFloat64(), hasPrior),
		TotalAllocatedDays: s.kpi("total_allocated_days", "days", cur.days, prev.days, hasPrior),
		AvgDailyRateUSD:    s.kpi("avg_daily_rate_usd", "USD/day", safeRate(curTotal, cur.days), safeRate(prevTotal, prev.days), hasPrior),
		ByProjectType:      s.costBreakdown(ds, scope, GroupByProjectType),
		ByDepartment:       s.costBreakdown(ds, scope, GroupByDepartment),
		ByMonthYear:        s.costBreakdown(ds, scope, GroupByMonth),
	}

	s.logger.Debug("cost allocation dashboard computed",
		zap.Int("matched_records", cur.matched),
		zap.Bool("trend_estimated", !hasPrior),
	)
	return out
}

func (s *Service) costCore(ds store.Dataset, scope filters.Scope) costCore {
	core := costCore{}
	for _, c := range ds.CostAllocations {
		if !filters.Matches(s.classifier, allocationDate(c), c.Department, c.RigLocation, scope) {
			continue
		}
		core.totalCost = core.totalCost.Add(decimal.NewFromFloat(c.EffectiveCost()))
		if c.BudgetedVesselCost > 0 {
			core.budgetedCost = core.budgetedCost.Add(decimal.NewFromFloat(c.BudgetedVesselCost))
		}
		core.days += c.EffectiveDays()
		core.matched++
	}
	return core
}

// costBreakdown splits effective cost by a grouping dimension, with blank
// keys routed to "Unknown".
func (s *Service) costBreakdown(ds store.Dataset, scope filters.Scope, groupBy string) models.Breakdown {
	totals := make(map[string]decimal.Decimal)
	for _, c := range ds.CostAllocations {
		date := allocationDate(c)
		if !filters.Matches(s.classifier, date, c.Department, c.RigLocation, scope) {
			continue
		}

		var key string
		switch groupBy {
		case GroupByProjectType:
			key = string(s.classifier.ProjectType("", c.CostElement, c.LCNumber, c.ProjectType))
		case GroupByMonth:
			if date.IsZero() {
				key = c.MonthYear
			} else {
				key = monthKey(date)
			}
		default:
			key = c.Department
		}

		key = orUnknown(key)
		totals[key] = totals[key].Add(decimal.NewFromFloat(c.EffectiveCost()))
	}

	out := make(models.Breakdown, len(totals))
	for key, total := range totals {
		out[key] = total.Round(2).InexactFloat64()
	}
	return out
}

// allocationDate resolves the record's period: the explicit date when
// present, otherwise the parsed "March 2024"-style month key. Unparseable
// rows return the zero time and match only unfiltered scopes.
func allocationDate(c models.CostAllocation) time.Time {
	if !c.CostAllocationDate.IsZero() {
		return c.CostAllocationDate
	}
	if c.MonthYear == "" {
		return time.Time{}
	}
	for _, layout := range []string{"January 2006", "Jan 2006", "01-2006", "2006-01"} {
		if t, err := time.Parse(layout, c.MonthYear); err == nil {
			return t
		}
	}
	return time.Time{}
}
