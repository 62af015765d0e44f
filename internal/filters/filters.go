// Package filters holds the scope predicates the aggregators share. Every
// predicate is a total function: missing dates, blank departments and
// unknown month names make a record non-matching (or let it pass when the
// scope leaves that dimension open) — nothing here ever errors or panics.
package filters

import (
	"strings"
	"time"

	"github.com/gulfops/vesselmetrics/internal/classify"
)

// DepartmentAll is the caller-state sentinel that bypasses the department
// filter. An empty department behaves the same way.
const DepartmentAll = "All"

// Scope is the filter state a dashboard view is rendered under. Zero values
// leave the corresponding dimension unfiltered.
type Scope struct {
	Month      string // full or abbreviated month name, e.g. "March" or "Mar"
	Year       int
	Department string
	Location   string
}

// HasPeriod reports whether the scope constrains time at all.
func (s Scope) HasPeriod() bool {
	return s.Year != 0 || s.Month != ""
}

// MatchesPeriod reports whether t falls inside the scope's period. A zero
// time matches only a scope with no period selected.
func MatchesPeriod(t time.Time, s Scope) bool {
	if !s.HasPeriod() {
		return true
	}
	if t.IsZero() {
		return false
	}
	if s.Year != 0 && t.Year() != s.Year {
		return false
	}
	if s.Month != "" {
		m, ok := ParseMonth(s.Month)
		if !ok {
			return false
		}
		if t.Month() != m {
			return false
		}
	}
	return true
}

// MatchesYearToDate reports whether t falls between January 1 of year and
// now, inclusive. Used by the YTD period selector.
func MatchesYearToDate(t time.Time, year int, now time.Time) bool {
	if t.IsZero() || year == 0 {
		return false
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, t.Location())
	return !t.Before(start) && !t.After(now)
}

// MatchesDepartment reports whether a record department passes the scope.
// "" and "All" on the scope bypass the filter; comparison is case-insensitive.
func MatchesDepartment(department string, s Scope) bool {
	if s.Department == "" || strings.EqualFold(s.Department, DepartmentAll) {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(department), strings.TrimSpace(s.Department))
}

// MatchesLocation reports whether a record location passes the scope, using
// the classifier's normalization and aliasing. An empty scope location
// bypasses the filter.
func MatchesLocation(c *classify.Classifier, location string, s Scope) bool {
	if s.Location == "" {
		return true
	}
	return c.LocationsMatch(location, s.Location)
}

// Matches composes the three predicates with AND for a generic record shape.
func Matches(c *classify.Classifier, date time.Time, department, location string, s Scope) bool {
	return MatchesPeriod(date, s) &&
		MatchesDepartment(department, s) &&
		MatchesLocation(c, location, s)
}

// ParseMonth resolves a month name ("March", "mar") to its time.Month.
func ParseMonth(name string) (time.Month, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}
	for _, layout := range []string{"January", "Jan"} {
		if t, err := time.Parse(layout, name); err == nil {
			return t.Month(), true
		}
	}
	return 0, false
}

// PreviousPeriod returns the scope shifted one comparison step back: month-1
// (with year rollover) when a month is selected, otherwise year-1. The bool
// is false when the scope has no period to shift.
func PreviousPeriod(s Scope) (Scope, bool) {
	switch {
	case s.Month != "" && s.Year != 0:
		m, ok := ParseMonth(s.Month)
		if !ok {
			return s, false
		}
		prev := s
		if m == time.January {
			prev.Month = time.December.String()
			prev.Year = s.Year - 1
		} else {
			prev.Month = (m - 1).String()
		}
		return prev, true
	case s.Year != 0:
		prev := s
		prev.Year = s.Year - 1
		return prev, true
	}
	return s, false
}
