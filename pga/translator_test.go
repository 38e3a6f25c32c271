package pga

import "testing"

func TestTranslatorConstruction(t *testing.T) {
	tr := NewTranslator(2, 0, 1, 0)
	nearQuad(t, "p2", tr.Packed(), [4]float32{0, 0, -1, 0}, 1e-6)

	// The direction is normalized before scaling by the distance.
	tr2 := NewTranslator(2, 0, 10, 0)
	nearQuad(t, "p2", tr2.Packed(), [4]float32{0, 0, -1, 0}, 1e-6)
}

func TestTranslatorTransformPoint(t *testing.T) {
	tr := NewTranslator(2, 1, 0, 0)
	p := tr.TransformPoint(NewPoint(0, 0, 0))

	near(t, "w", p.W(), 1, 1e-6)
	near(t, "x", p.X(), 2, 1e-6)
	near(t, "y", p.Y(), 0, 1e-6)
	near(t, "z", p.Z(), 0, 1e-6)
}

func TestTranslatorTransformPlane(t *testing.T) {
	tr := NewTranslator(2, 1, 0, 0)
	// x = 1 slides to x = 3.
	p := tr.TransformPlane(NewPlane(1, 0, 0, -1))

	near(t, "e1", p.E1(), 1, 1e-6)
	near(t, "e2", p.E2(), 0, 1e-6)
	near(t, "e3", p.E3(), 0, 1e-6)
	near(t, "e0", p.E0(), -3, 1e-6)

	// A plane containing the translation direction is unmoved.
	q := tr.TransformPlane(NewPlane(0, 1, 0, -5))
	nearQuad(t, "q", q.Packed(), NewPlane(0, 1, 0, -5).Packed(), 1e-6)
}

func TestTranslatorTransformLine(t *testing.T) {
	tr := NewTranslator(1, 0, 0, 1)
	// The x axis lifts to the line through (0, 0, 1) along x.
	l := tr.TransformLine(NewLine(0, 0, 0, 1, 0, 0))

	near(t, "e23", l.E23(), 1, 1e-6)
	near(t, "e31", l.E31(), 0, 1e-6)
	near(t, "e12", l.E12(), 0, 1e-6)
	// moment P x D with P = (0, 0, 1): (0, 1, 0)
	near(t, "e01", l.E01(), 0, 1e-6)
	near(t, "e02", l.E02(), 1, 1e-6)
	near(t, "e03", l.E03(), 0, 1e-6)

	// A line parallel to the translation is fixed.
	z := tr.TransformLine(NewLine(0, 0, 0, 0, 0, 1))
	p1, p2 := z.Packed()
	nearQuad(t, "p1", p1, [4]float32{0, 0, 0, 1}, 1e-6)
	nearQuad(t, "p2", p2, [4]float32{0, 0, 0, 0}, 1e-6)
}

func TestTranslatorTransformDirection(t *testing.T) {
	tr := NewTranslator(5, 1, 2, 3)
	d := NewDirection(1, -1, 0.5)
	if got := tr.TransformDirection(d); got != d {
		t.Errorf("TransformDirection(%v) = %v, want identity", d, got)
	}
}

func TestTranslatorComposition(t *testing.T) {
	a := NewTranslator(1, 1, 0, 0)
	b := NewTranslator(2, 0, 1, 0)
	p := a.Mul(b).TransformPoint(NewPoint(0, 0, 0))

	near(t, "x", p.X(), 1, 1e-6)
	near(t, "y", p.Y(), 2, 1e-6)
	near(t, "z", p.Z(), 0, 1e-6)
}

func TestTranslatorInverse(t *testing.T) {
	tr := NewTranslator(3, 1, 2, -1)
	p := tr.Inverse().TransformPoint(tr.TransformPoint(NewPoint(4, 5, 6)))
	nearQuad(t, "point", p.Packed(), NewPoint(4, 5, 6).Packed(), 1e-5)
}

func TestTranslatorMulRotorAgreesWithMotor(t *testing.T) {
	r := NewRotor(1.4, 0, 1, 1)
	tr := NewTranslator(2, 1, 0, 0)

	// t * r and r * t generally differ; each must match applying the
	// factors in the corresponding order.
	p := NewPoint(1, 2, 3)
	got := tr.MulRotor(r).TransformPoint(p)
	want := tr.TransformPoint(r.TransformPoint(p))
	nearQuad(t, "t*r", got.Packed(), want.Packed(), 1e-5)

	got = r.MulTranslator(tr).TransformPoint(p)
	want = r.TransformPoint(tr.TransformPoint(p))
	nearQuad(t, "r*t", got.Packed(), want.Packed(), 1e-5)
}

func TestTranslatorTransformPointsBatch(t *testing.T) {
	tr := NewTranslator(1.5, 1, 1, 0)
	in := []Point{NewPoint(0, 0, 0), NewPoint(1, -1, 2), NewPoint(3, 3, 3)}
	out := make([]Point, len(in))
	tr.TransformPoints(in, out)

	for i := range in {
		want := tr.TransformPoint(in[i])
		nearQuad(t, "point", out[i].Packed(), want.Packed(), 1e-6)
	}
}
