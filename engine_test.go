package vesselmetrics

import (
	"context"
	"testing"
	"time"
)

func TestEngineEndToEnd(t *testing.T) {
	eng, err := New(Options{CacheEnabled: true}, nil)
	if err != nil {
		t.Fatalf("engine should wire from defaults: %v", err)
	}

	march := func(d int) time.Time {
		return time.Date(2024, time.March, d, 9, 0, 0, 0, time.UTC)
	}

	eng.Store.ReplaceAll(
		[]VoyageEvent{{EventDate: march(4), Department: "Drilling", Location: "Thunder Horse", ParentEvent: "Cargo Ops", ActivityCategory: "Productive", FinalHours: 10}},
		[]VesselManifest{{ManifestDate: march(3), FinalDepartment: "Drilling", MappedLocation: "Thunder Horse PDQ", DeckTons: 30, RTTons: 20, Lifts: 40}},
		[]CostAllocation{{CostAllocationDate: march(1), Department: "Drilling", RigLocation: "Thunder Horse", TotalCost: 200000, TotalAllocatedDays: 5}},
		[]BulkAction{
			{StartDate: march(1), VesselName: "HOS Achiever", BulkType: "SOBM", Action: "load", VolumeBbls: 500, StandardizedOrigin: "Fourchon", StandardizedDestination: "Thunder Horse"},
			{StartDate: march(2), VesselName: "HOS Achiever", BulkType: "SOBM", Action: "offload", VolumeBbls: 500, StandardizedOrigin: "Fourchon", StandardizedDestination: "Thunder Horse"},
		},
		[]VoyageListEntry{{VoyageDate: march(2), Vessel: "HOS Achiever", VoyagePurpose: "Drilling", Locations: "Fourchon -> Thunder Horse", DurationHours: 36}},
	)

	snap, err := eng.Dashboards.Snapshot(context.Background(), Scope{Month: "March", Year: 2024})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if !snap.DataReady {
		t.Error("snapshot should see the loaded dataset")
	}
	if snap.Drilling.CargoTons.Value != 50 {
		t.Errorf("cargo tons = %.1f, want 50", snap.Drilling.CargoTons.Value)
	}
	// The paired load/offload is one physical transfer of 500 bbls.
	if snap.Drilling.FluidVolumeBbls.Value != 500 {
		t.Errorf("fluid volume = %.1f, want 500 (deduplicated)", snap.Drilling.FluidVolumeBbls.Value)
	}
	if snap.Drilling.LiftsPerHour.Value != 4 {
		t.Errorf("lifts/hour = %.2f, want 4 (40 lifts over 10 cargo ops hours)", snap.Drilling.LiftsPerHour.Value)
	}
	if snap.CostAllocation.AvgDailyRateUSD.Value != 40000 {
		t.Errorf("daily rate = %.1f, want 40000", snap.CostAllocation.AvgDailyRateUSD.Value)
	}
	if snap.Voyages.VoyageCount.Value != 1 {
		t.Errorf("voyage count = %.0f, want 1", snap.Voyages.VoyageCount.Value)
	}
}
