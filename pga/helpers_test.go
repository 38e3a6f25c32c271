package pga

import (
	"fmt"
	"math"
	"testing"
)

// near fails unless got is within tol of want, relative to the larger of
// |want| and one. The one-floor keeps tiny expected components from
// demanding absurd absolute precision.
func near(t *testing.T, name string, got, want, tol float32) {
	t.Helper()
	scale := math.Max(1, math.Abs(float64(want)))
	if diff := math.Abs(float64(got) - float64(want)); diff > float64(tol)*scale {
		t.Errorf("%s = %v, want %v (tol %v)", name, got, want, tol)
	}
}

func nearQuad(t *testing.T, name string, got, want [4]float32, tol float32) {
	t.Helper()
	for i := range got {
		near(t, fmt.Sprintf("%s[%d]", name, i), got[i], want[i], tol)
	}
}
