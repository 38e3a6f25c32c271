package pga

// Rotor is a unit even-grade operator a + b·e23 + c·e31 + d·e12
// representing a rotation about an axis through the origin. Packed layout:
// (scalar, e23, e31, e12).
//
// Rotors used for transformation must satisfy r·~r = 1. The transform
// methods do not check this; an unnormalized rotor silently produces a
// scaled result.
type Rotor struct {
	p1 quad
}

// NewRotor returns the rotor for a rotation of angRad radians about the
// axis (x, y, z). The axis is normalized internally; a zero axis yields
// NaN lanes. The half-angle sine and cosine are folded into the register,
// so the rotor is born normalized.
func NewRotor(angRad, x, y, z float32) Rotor {
	invNorm := -rsqrt(x*x + y*y + z*z)
	half := 0.5 * angRad
	s := sin32(half) * invNorm
	return Rotor{p1: quad{cos32(half), x * s, y * s, z * s}}
}

// RotorFromPacked loads a rotor from four floats in the packed blade order
// (scalar, e23, e31, e12). The data must already be normalized: the caller
// asserts r·~r = 1, and nothing re-checks it.
func RotorFromPacked(data [4]float32) Rotor {
	return Rotor{p1: data}
}

// Packed returns the rotor components in the packed blade order
// (scalar, e23, e31, e12).
func (r Rotor) Packed() [4]float32 { return r.p1 }

func (r Rotor) Scalar() float32 { return r.p1[0] }
func (r Rotor) E23() float32    { return r.p1[1] }
func (r Rotor) E31() float32    { return r.p1[2] }
func (r Rotor) E12() float32    { return r.p1[3] }
func (r Rotor) E32() float32    { return -r.p1[1] }
func (r Rotor) E13() float32    { return -r.p1[2] }
func (r Rotor) E21() float32    { return -r.p1[3] }

func (r Rotor) Add(s Rotor) Rotor { return Rotor{p1: r.p1.add(s.p1)} }

func (r Rotor) Sub(s Rotor) Rotor { return Rotor{p1: r.p1.sub(s.p1)} }

func (r Rotor) Scale(s float32) Rotor { return Rotor{p1: r.p1.scale(s)} }

// Div is the uniform inverse scale; dividing by zero yields IEEE
// infinities.
func (r Rotor) Div(s float32) Rotor { return Rotor{p1: r.p1.scale(rcp(s))} }

// Reverse is the reversion operator ~r, negating the bivector lanes.
func (r Rotor) Reverse() Rotor { return Rotor{p1: r.p1.flipUpper()} }

// Normalized returns the rotor scaled so r·~r = 1.
func (r Rotor) Normalized() Rotor {
	return Rotor{p1: r.p1.scale(rsqrt(r.p1.dot(r.p1)))}
}

// Inverse returns r⁻¹ such that r·r⁻¹ = 1, valid for any nonzero rotor.
// For a normalized rotor this is just the reversion.
func (r Rotor) Inverse() Rotor {
	return Rotor{p1: r.p1.flipUpper().scale(rcp(r.p1.dot(r.p1)))}
}

// Mul composes two rotations: r.Mul(s) applies s first, then r.
func (r Rotor) Mul(s Rotor) Rotor { return Rotor{p1: gp11(r.p1, s.p1)} }

// MulTranslator composes a rotation after a translation, producing the
// motor that applies t first, then r.
func (r Rotor) MulTranslator(t Translator) Motor {
	return Motor{p1: r.p1, p2: gpEI(r.p1, t.p2)}
}

// MulMotor composes a rotation after a general rigid motion.
func (r Rotor) MulMotor(m Motor) Motor {
	return Motor{p1: gp11(r.p1, m.p1), p2: gpEI(r.p1, m.p2)}
}

// TransformPlane conjugates a plane: r·p·~r.
func (r Rotor) TransformPlane(p Plane) Plane {
	pk := newPlaneKernel(r.p1, nil)
	return pk.one(p)
}

// TransformPlanes conjugates a slice of planes, reusing the rotor's derived
// coefficients across the batch. Aliasing is permitted only when in and out
// are the identical slice; any other overlap is a precondition violation
// with undefined results.
func (r Rotor) TransformPlanes(in, out []Plane) {
	pk := newPlaneKernel(r.p1, nil)
	pk.batch(in, out)
}

// TransformPoint conjugates a point: r·p·~r. Conjugating a point and a
// plane with a rotor is the same blade formula.
func (r Rotor) TransformPoint(p Point) Point {
	pk := newPointKernel(r.p1, nil)
	return Point{p3: pk.one(p.p3)}
}

// TransformPoints conjugates a slice of points. Aliasing is permitted only
// when in and out are the identical slice.
func (r Rotor) TransformPoints(in, out []Point) {
	pk := newPointKernel(r.p1, nil)
	pk.batchPoints(in, out)
}

// TransformDirection conjugates a direction; directions reuse the point
// formula, which is total at zero weight.
func (r Rotor) TransformDirection(d Direction) Direction {
	pk := newPointKernel(r.p1, nil)
	return Direction{p3: pk.one(d.p3)}
}

// TransformDirections conjugates a slice of directions. Aliasing is
// permitted only when in and out are the identical slice.
func (r Rotor) TransformDirections(in, out []Direction) {
	pk := newPointKernel(r.p1, nil)
	pk.batchDirections(in, out)
}

// TransformBranch conjugates an origin line; rotation never introduces a
// moment, so the result stays a branch.
func (r Rotor) TransformBranch(b Branch) Branch {
	lk := newLineKernel(r.p1, nil)
	out := lk.one(Line{p1: b.p1})
	return Branch{p1: out.p1}
}

// TransformLine conjugates a line: r·l·~r.
func (r Rotor) TransformLine(l Line) Line {
	lk := newLineKernel(r.p1, nil)
	return lk.one(l)
}

// TransformLines conjugates a slice of lines. Aliasing is permitted only
// when in and out are the identical slice.
func (r Rotor) TransformLines(in, out []Line) {
	lk := newLineKernel(r.p1, nil)
	lk.batch(in, out)
}

// Log recovers the branch whose exponential is this rotor. The rotor must
// be normalized; behavior on non-unit input is unspecified. The scalar lane
// is clamped to [-1, 1] before the inverse cosine to absorb rounding drift,
// and angles below smallAngleTol route through a Taylor series instead of
// dividing by a near-zero sine.
func (r Rotor) Log() Branch {
	a := clamp1(r.p1[0])
	bb := r.p1.dot3(r.p1)
	u := acos32(a)
	var scale float32
	if u < smallAngleTol {
		scale = 1 + bb/6
	} else {
		scale = u * rsqrt(bb)
	}
	return Branch{p1: quad{0, r.p1[1] * scale, r.p1[2] * scale, r.p1[3] * scale}}
}

// Sqrt returns the rotor s with s·s = r, via the half-angle identity:
// average with the identity and renormalize. Faster and better conditioned
// than an exp/log round trip.
func (r Rotor) Sqrt() Rotor {
	s := r.p1
	s[0] += 1
	return Rotor{p1: s}.Normalized()
}

// Exp maps a branch to the rotor cos θ + (sin θ / θ)·b, where θ is the
// branch norm. Below smallAngleTol the sin θ / θ factor comes from its
// Taylor series, avoiding the 0/0.
func (b Branch) Exp() Rotor {
	bb := b.p1.dot3(b.p1)
	u := sqrt32(bb)
	var p float32
	if u < smallAngleTol {
		p = 1 - bb/6
	} else {
		p = sin32(u) / u
	}
	return Rotor{p1: quad{cos32(u), b.p1[1] * p, b.p1[2] * p, b.p1[3] * p}}
}

// smallAngleTol is the switchover angle in radians below which the
// exponential and logarithm kernels use Taylor approximations of their
// trigonometric ratios. Results are accurate to this tolerance near the
// degenerate zero-angle case and to float32 rounding elsewhere.
const smallAngleTol = 1e-4

func clamp1(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
