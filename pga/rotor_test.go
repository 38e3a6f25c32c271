package pga

import (
	"math"
	"testing"
)

func TestRotorTransformPoint(t *testing.T) {
	r := NewRotor(math.Pi/2, 0, 0, 1)
	p := r.TransformPoint(NewPoint(1, 0, 0))

	near(t, "w", p.W(), 1, 1e-6)
	near(t, "x", p.X(), 0, 1e-6)
	near(t, "y", p.Y(), 1, 1e-6)
	near(t, "z", p.Z(), 0, 1e-6)
}

func TestRotorTransformPlane(t *testing.T) {
	r := NewRotor(math.Pi/2, 0, 0, 1)
	// The plane x = 1.
	p := r.TransformPlane(NewPlane(1, 0, 0, -1))

	// Rotating a quarter turn about z carries it to y = 1.
	near(t, "e1", p.E1(), 0, 1e-6)
	near(t, "e2", p.E2(), 1, 1e-6)
	near(t, "e3", p.E3(), 0, 1e-6)
	near(t, "e0", p.E0(), -1, 1e-6)
}

func TestRotorTransformDirection(t *testing.T) {
	r := NewRotor(math.Pi/2, 0, 0, 1)
	d := r.TransformDirection(NewDirection(1, 0, 0))

	near(t, "x", d.X(), 0, 1e-6)
	near(t, "y", d.Y(), 1, 1e-6)
	near(t, "z", d.Z(), 0, 1e-6)
}

func TestRotorTransformLine(t *testing.T) {
	r := NewRotor(math.Pi/2, 0, 0, 1)
	// The x axis: zero moment, direction (1, 0, 0).
	l := r.TransformLine(NewLine(0, 0, 0, 1, 0, 0))

	near(t, "e23", l.E23(), 0, 1e-6)
	near(t, "e31", l.E31(), 1, 1e-6)
	near(t, "e12", l.E12(), 0, 1e-6)
	near(t, "e01", l.E01(), 0, 1e-6)
	near(t, "e02", l.E02(), 0, 1e-6)
	near(t, "e03", l.E03(), 0, 1e-6)
}

// An unnormalized operator scales its argument by the squared norm
// rather than being renormalized behind the caller's back.
func TestRotorUnnormalizedScalesByNormSquared(t *testing.T) {
	r := RotorFromPacked(NewRotor(math.Pi/2, 0, 0, 1).Scale(2).Packed())
	p := r.TransformPoint(NewPoint(1, 0, 0))

	near(t, "w", p.W(), 4, 1e-5)
	near(t, "x", p.X(), 0, 1e-5)
	near(t, "y", p.Y(), 4, 1e-5)
	near(t, "z", p.Z(), 0, 1e-5)
}

func TestRotorComposition(t *testing.T) {
	r := NewRotor(math.Pi/2, 0, 0, 1)
	halfTurn := r.Mul(r)
	p := halfTurn.TransformPoint(NewPoint(1, 2, 0))

	near(t, "x", p.X(), -1, 1e-6)
	near(t, "y", p.Y(), -2, 1e-6)
	near(t, "z", p.Z(), 0, 1e-6)
}

func TestRotorInverse(t *testing.T) {
	r := RotorFromPacked([4]float32{1, 2, 3, 4})
	id := r.Mul(r.Inverse())

	near(t, "scalar", id.Scalar(), 1, 1e-5)
	near(t, "e23", id.E23(), 0, 1e-5)
	near(t, "e31", id.E31(), 0, 1e-5)
	near(t, "e12", id.E12(), 0, 1e-5)
}

func TestRotorNormalized(t *testing.T) {
	r := RotorFromPacked([4]float32{4, -3, 3, 28}).Normalized()
	q := r.p1
	norm := q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
	near(t, "norm", norm, 1, 1e-5)
}

func TestRotorTransformPointsBatch(t *testing.T) {
	r := NewRotor(1.1, 0.2, -1, 0.5)
	in := []Point{
		NewPoint(1, 0, 0),
		NewPoint(-2, 3, 0.5),
		NewPoint(0, 0, 0),
		NewPoint(10, -10, 10),
		NewPoint(0.1, 0.2, 0.3),
	}
	out := make([]Point, len(in))
	r.TransformPoints(in, out)

	for i := range in {
		want := r.TransformPoint(in[i])
		nearQuad(t, "point", out[i].Packed(), want.Packed(), 1e-6)
	}
}

// Batched transforms accept in == out for in-place operation.
func TestRotorTransformPointsInPlace(t *testing.T) {
	r := NewRotor(0.7, 1, 1, 0)
	pts := []Point{NewPoint(1, 2, 3), NewPoint(-1, 0, 4)}
	want := []Point{r.TransformPoint(pts[0]), r.TransformPoint(pts[1])}

	r.TransformPoints(pts, pts)
	for i := range pts {
		nearQuad(t, "point", pts[i].Packed(), want[i].Packed(), 1e-6)
	}
}

func TestRotorTransformLinesBatch(t *testing.T) {
	r := NewRotor(2.4, -1, 0.5, 2)
	in := []Line{
		NewLine(0, 0, 0, 1, 0, 0),
		NewLine(1, -2, 3, 0, 1, 0),
		NewLine(0.5, 0.5, 0.5, 1, 1, 1),
	}
	out := make([]Line, len(in))
	r.TransformLines(in, out)

	for i := range in {
		want := r.TransformLine(in[i])
		g1, g2 := out[i].Packed()
		w1, w2 := want.Packed()
		nearQuad(t, "p1", g1, w1, 1e-5)
		nearQuad(t, "p2", g2, w2, 1e-5)
	}
}

func TestRotorTransformBranch(t *testing.T) {
	r := NewRotor(math.Pi/2, 0, 0, 1)
	b := r.TransformBranch(NewBranch(1, 0, 0))

	near(t, "e23", b.E23(), 0, 1e-6)
	near(t, "e31", b.E31(), 1, 1e-6)
	near(t, "e12", b.E12(), 0, 1e-6)
}
