package pga

import "testing"

func TestPointPacking(t *testing.T) {
	p := NewPoint(2, 3, 4)

	near(t, "w", p.W(), 1, 0)
	near(t, "e123", p.E123(), 1, 0)
	near(t, "e032", p.E032(), 2, 0)
	near(t, "e013", p.E013(), 3, 0)
	near(t, "e021", p.E021(), 4, 0)

	if got := PointFromPacked(p.Packed()); got != p {
		t.Errorf("packed round trip = %+v, want %+v", got, p)
	}
}

func TestPointNormalized(t *testing.T) {
	p := PointFromPacked([4]float32{2, 2, 4, 6}).Normalized()
	nearQuad(t, "p", p.Packed(), [4]float32{1, 1, 2, 3}, 1e-6)
}

func TestDirectionNormalizedOnConstruction(t *testing.T) {
	d := NewDirection(0, 3, 4)

	near(t, "x", d.X(), 0, 1e-6)
	near(t, "y", d.Y(), 0.6, 1e-6)
	near(t, "z", d.Z(), 0.8, 1e-6)

	p := d.Packed()
	near(t, "weight", p[0], 0, 0)
}

func TestPointArithmetic(t *testing.T) {
	p := NewPoint(1, 2, 3).Add(NewPoint(3, 2, 1))
	nearQuad(t, "sum", p.Packed(), [4]float32{2, 4, 4, 4}, 0)

	q := p.Scale(2).Div(2).Sub(NewPoint(3, 2, 1))
	nearQuad(t, "q", q.Packed(), NewPoint(1, 2, 3).Packed(), 1e-6)
}
