package filters

import (
	"testing"
	"time"

	"github.com/gulfops/vesselmetrics/internal/classify"
	"github.com/gulfops/vesselmetrics/internal/refdata"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestMatchesPeriod(t *testing.T) {
	tests := []struct {
		name  string
		t     time.Time
		scope Scope
		want  bool
	}{
		{"no period matches anything", date(2024, time.March, 5), Scope{}, true},
		{"no period matches zero time", time.Time{}, Scope{}, true},
		{"zero time never matches a period", time.Time{}, Scope{Year: 2024}, false},
		{"year match", date(2024, time.March, 5), Scope{Year: 2024}, true},
		{"year mismatch", date(2023, time.March, 5), Scope{Year: 2024}, false},
		{"month and year match", date(2024, time.March, 5), Scope{Month: "March", Year: 2024}, true},
		{"abbreviated month", date(2024, time.March, 5), Scope{Month: "Mar", Year: 2024}, true},
		{"month mismatch", date(2024, time.April, 5), Scope{Month: "March", Year: 2024}, false},
		{"month without year matches any year", date(2022, time.March, 5), Scope{Month: "March"}, true},
		{"garbage month never matches", date(2024, time.March, 5), Scope{Month: "Marzo", Year: 2024}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchesPeriod(tc.t, tc.scope); got != tc.want {
				t.Fatalf("MatchesPeriod = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestMatchesYearToDate(t *testing.T) {
	now := date(2024, time.June, 15)

	if !MatchesYearToDate(date(2024, time.January, 1), 2024, now) {
		t.Error("January 1 should be inside YTD")
	}
	if !MatchesYearToDate(now, 2024, now) {
		t.Error("now should be inside YTD")
	}
	if MatchesYearToDate(date(2024, time.July, 1), 2024, now) {
		t.Error("future date should be outside YTD")
	}
	if MatchesYearToDate(date(2023, time.December, 31), 2024, now) {
		t.Error("prior year should be outside YTD")
	}
	if MatchesYearToDate(time.Time{}, 2024, now) {
		t.Error("zero time should be outside YTD")
	}
}

func TestMatchesDepartment(t *testing.T) {
	tests := []struct {
		department string
		scope      string
		want       bool
	}{
		{"Drilling", "", true},
		{"Drilling", "All", true},
		{"Drilling", "all", true},
		{"Drilling", "Drilling", true},
		{"drilling", "Drilling", true},
		{" Drilling ", "Drilling", true},
		{"Production", "Drilling", false},
		{"", "Drilling", false},
	}

	for _, tc := range tests {
		if got := MatchesDepartment(tc.department, Scope{Department: tc.scope}); got != tc.want {
			t.Errorf("MatchesDepartment(%q, %q) = %t, want %t", tc.department, tc.scope, got, tc.want)
		}
	}
}

func TestMatchesLocationUsesAliases(t *testing.T) {
	c := classify.NewClassifier(refdata.MustDefaults())

	if !MatchesLocation(c, "Thunder Horse PDQ", Scope{Location: "Thunder Horse Production"}) {
		t.Error("aliased variants should match")
	}
	if MatchesLocation(c, "Mad Dog", Scope{Location: "Thunder Horse"}) {
		t.Error("different facilities should not match")
	}
	if !MatchesLocation(c, "anything", Scope{}) {
		t.Error("empty scope location should bypass")
	}
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		name      string
		scope     Scope
		wantScope Scope
		wantOK    bool
	}{
		{"month shift", Scope{Month: "March", Year: 2024}, Scope{Month: "February", Year: 2024}, true},
		{"january rolls into prior december", Scope{Month: "January", Year: 2024}, Scope{Month: "December", Year: 2023}, true},
		{"year shift", Scope{Year: 2024}, Scope{Year: 2023}, true},
		{"no period", Scope{Department: "Drilling"}, Scope{Department: "Drilling"}, false},
		{"garbage month", Scope{Month: "Marzo", Year: 2024}, Scope{Month: "Marzo", Year: 2024}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PreviousPeriod(tc.scope)
			if ok != tc.wantOK || got != tc.wantScope {
				t.Fatalf("PreviousPeriod(%+v) = %+v, %t; want %+v, %t", tc.scope, got, ok, tc.wantScope, tc.wantOK)
			}
		})
	}
}
