package units

import "testing"

func TestConversionRoundTrip(t *testing.T) {
	if got := GallonsToBarrels(4200); got != 100 {
		t.Errorf("GallonsToBarrels(4200) = %.2f, want 100", got)
	}
	if got := BarrelsToGallons(100); got != 4200 {
		t.Errorf("BarrelsToGallons(100) = %.2f, want 4200", got)
	}
	if got := BarrelsToGallons(GallonsToBarrels(84)); got != 84 {
		t.Errorf("round trip changed the value: got %.2f", got)
	}
}
