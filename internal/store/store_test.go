package store

import (
	"testing"

	"github.com/gulfops/vesselmetrics/internal/domain/models"
)

func TestStoreStartsEmptyAndNotReady(t *testing.T) {
	s := New(nil)

	if s.Ready() {
		t.Error("fresh store should not be ready")
	}
	if s.Version() != 0 {
		t.Errorf("fresh store version = %d, want 0", s.Version())
	}
	if ds := s.Snapshot(); ds.Ready || len(ds.VesselManifests) != 0 {
		t.Errorf("fresh snapshot should be empty, got %+v", ds)
	}
}

func TestReplaceAllBumpsVersionAndMarksReady(t *testing.T) {
	s := New(nil)

	s.ReplaceAll(nil, []models.VesselManifest{{DeckTons: 10}}, nil, nil, nil)
	if !s.Ready() {
		t.Error("store should be ready after a load")
	}
	if s.Version() != 1 {
		t.Errorf("version = %d, want 1", s.Version())
	}

	s.ReplaceAll(nil, nil, nil, nil, nil)
	if s.Version() != 2 {
		t.Errorf("version = %d, want 2 after second load", s.Version())
	}
	if len(s.Snapshot().VesselManifests) != 0 {
		t.Error("second load should have replaced the manifests wholesale")
	}
}

func TestSnapshotIsStableAcrossReplace(t *testing.T) {
	s := New(nil)
	s.ReplaceAll(nil, []models.VesselManifest{{DeckTons: 10}}, nil, nil, nil)

	before := s.Snapshot()
	s.ReplaceAll(nil, []models.VesselManifest{{DeckTons: 99}}, nil, nil, nil)

	if before.VesselManifests[0].DeckTons != 10 {
		t.Error("an already-taken snapshot must not see later replacements")
	}
	if before.Version == s.Version() {
		t.Error("replacement should have produced a new version")
	}
}
