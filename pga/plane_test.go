package pga

import "testing"

func TestPlanePacking(t *testing.T) {
	p := NewPlane(1, 2, 3, 4)

	near(t, "e1", p.E1(), 1, 0)
	near(t, "e2", p.E2(), 2, 0)
	near(t, "e3", p.E3(), 3, 0)
	near(t, "e0", p.E0(), 4, 0)

	nearQuad(t, "packed", p.Packed(), [4]float32{4, 1, 2, 3}, 0)

	if got := PlaneFromPacked(p.Packed()); got != p {
		t.Errorf("packed round trip = %+v, want %+v", got, p)
	}
}

func TestPlaneNormalized(t *testing.T) {
	p := NewPlane(3, 0, 4, 10).Normalized()

	// Only the attitude norm counts; e0 scales along with it.
	near(t, "e1", p.E1(), 0.6, 1e-6)
	near(t, "e2", p.E2(), 0, 1e-6)
	near(t, "e3", p.E3(), 0.8, 1e-6)
	near(t, "e0", p.E0(), 2, 1e-6)
}

func TestPlaneArithmetic(t *testing.T) {
	p := NewPlane(1, 2, 3, 4).Add(NewPlane(4, 3, 2, 1))
	nearQuad(t, "sum", p.Packed(), [4]float32{5, 5, 5, 5}, 0)

	q := p.Scale(2).Div(5).Sub(NewPlane(1, 1, 1, 1))
	nearQuad(t, "q", q.Packed(), [4]float32{1, 1, 1, 1}, 1e-6)
}
