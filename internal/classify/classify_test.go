package classify

import (
	"testing"

	"github.com/gulfops/vesselmetrics/internal/domain/models"
	"github.com/gulfops/vesselmetrics/internal/refdata"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	return NewClassifier(refdata.MustDefaults())
}

func TestProjectTypeExplicitWins(t *testing.T) {
	c := newTestClassifier(t)

	got := c.ProjectType("drilling mud services", "drill pipe rental", "", models.ProjectProduction)
	if got != models.ProjectProduction {
		t.Fatalf("explicit type should win, got %q", got)
	}
}

func TestProjectTypeKeywordOrdering(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name        string
		description string
		costElement string
		want        models.ProjectType
	}{
		{"workover beats drill", "workover support while drilling", "", models.ProjectCompletions},
		{"p&a beats everything", "plug and abandon drilling support", "", models.ProjectPlugAndAbandon},
		{"drilling keyword", "", "drill pipe transport", models.ProjectDrilling},
		{"production keyword", "water injection support", "", models.ProjectProduction},
		{"maintenance keyword", "topside repair campaign", "", models.ProjectMaintenance},
		{"operator sharing keyword", "cost share agreement voyage", "", models.ProjectOperatorSharing},
		{"blank falls to other", "", "", models.ProjectOther},
		{"unknown text falls to other", "miscellaneous charges", "sundry", models.ProjectOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.ProjectType(tc.description, tc.costElement, "", "")
			if got != tc.want {
				t.Fatalf("ProjectType(%q, %q) = %q, want %q", tc.description, tc.costElement, got, tc.want)
			}
		})
	}
}

func TestProjectTypeAlwaysInClosedSet(t *testing.T) {
	c := newTestClassifier(t)

	inputs := []string{"", "drill", "workover", "???", "p&a", "asphaltene", "12345", "Thunder Horse"}
	for _, desc := range inputs {
		for _, elem := range inputs {
			got := c.ProjectType(desc, elem, "", "")
			if !models.KnownProjectType(got) {
				t.Fatalf("ProjectType(%q, %q) = %q, outside the closed set", desc, elem, got)
			}
		}
	}
}

func TestVesselType(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name string
		want string
	}{
		{"HOS Mystique Fast Supply", "Fast Supply"},
		{"Harvey Anchor Handler", "AHTS"},
		{"Ocean Intervention MPSV", "MPSV"},
		{"Gulf Supply Runner", "Supply"},
		{"Mystery Boat", "Other"},
	}

	for _, tc := range tests {
		if got := c.VesselType(tc.name); got != tc.want {
			t.Errorf("VesselType(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestFluidClassification(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name   string
		action models.BulkAction
		want   models.FluidFamily
	}{
		{"explicit drilling flag wins", models.BulkAction{IsDrillingFluid: true, BulkType: "methanol"}, models.FluidDrilling},
		{"explicit completion flag wins", models.BulkAction{IsCompletionFluid: true, BulkType: "diesel"}, models.FluidCompletion},
		{"mud keyword", models.BulkAction{BulkType: "SOBM premix"}, models.FluidDrilling},
		{"brine keyword", models.BulkAction{BulkDescription: "calcium chloride brine"}, models.FluidCompletion},
		{"chemical keyword", models.BulkAction{FluidSpecificType: "Asphaltene Inhibitor"}, models.FluidProductionChemical},
		{"diesel keyword", models.BulkAction{BulkType: "Diesel"}, models.FluidDiesel},
		{"unknown is none", models.BulkAction{BulkType: "potable water"}, models.FluidNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Fluid(tc.action); got != tc.want {
				t.Fatalf("Fluid() = %q, want %q", got, tc.want)
			}
		})
	}
}
