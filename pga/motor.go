package pga

// Motor is a general rigid motion (a screw: rotation about an axis plus
// translation along it), the even-grade operator
//
//	a + b·e23 + c·e31 + d·e12 + e·e01 + f·e02 + g·e03 + h·e0123
//
// stored as two packed registers, p1 = (scalar, e23, e31, e12) and
// p2 = (e0123, e01, e02, e03).
//
// Motors used for transformation must satisfy m·~m = 1; see Normalized.
type Motor struct {
	p1 quad
	p2 quad
}

// NewMotor returns the motor with the given blade coefficients, in the
// order a + b·e23 + c·e31 + d·e12 + e·e01 + f·e02 + g·e03 + h·e0123. The
// caller is responsible for normalization.
func NewMotor(a, b, c, d, e, f, g, h float32) Motor {
	return Motor{p1: quad{a, b, c, d}, p2: quad{h, e, f, g}}
}

// MotorFromScrew returns the motor that rotates by angRad radians about the
// line l and translates by d along it. The line must be normalized (unit
// Euclidean direction); a line through point P with unit direction D has
// moment P×D.
func MotorFromScrew(angRad, d float32, l Line) Motor {
	half := -0.5 * angRad
	gen := Line{
		p1: l.p1.scale(half),
		p2: l.p2.scale(half).sub(l.p1.scale(0.5 * d)),
	}
	return gen.Exp()
}

// MotorFromPacked loads a motor from eight floats in the packed blade order
// (scalar, e23, e31, e12, e0123, e01, e02, e03). The data must already be
// normalized; nothing re-checks it.
func MotorFromPacked(p1, p2 [4]float32) Motor {
	return Motor{p1: p1, p2: p2}
}

// Packed returns the motor components in the packed blade order
// (scalar, e23, e31, e12), (e0123, e01, e02, e03).
func (m Motor) Packed() (p1, p2 [4]float32) { return m.p1, m.p2 }

func (m Motor) Scalar() float32 { return m.p1[0] }
func (m Motor) E23() float32    { return m.p1[1] }
func (m Motor) E31() float32    { return m.p1[2] }
func (m Motor) E12() float32    { return m.p1[3] }
func (m Motor) E32() float32    { return -m.p1[1] }
func (m Motor) E13() float32    { return -m.p1[2] }
func (m Motor) E21() float32    { return -m.p1[3] }
func (m Motor) E0123() float32  { return m.p2[0] }
func (m Motor) E01() float32    { return m.p2[1] }
func (m Motor) E02() float32    { return m.p2[2] }
func (m Motor) E03() float32    { return m.p2[3] }
func (m Motor) E10() float32    { return -m.p2[1] }
func (m Motor) E20() float32    { return -m.p2[2] }
func (m Motor) E30() float32    { return -m.p2[3] }

func (m Motor) Add(n Motor) Motor {
	return Motor{p1: m.p1.add(n.p1), p2: m.p2.add(n.p2)}
}

func (m Motor) Sub(n Motor) Motor {
	return Motor{p1: m.p1.sub(n.p1), p2: m.p2.sub(n.p2)}
}

func (m Motor) Scale(s float32) Motor {
	return Motor{p1: m.p1.scale(s), p2: m.p2.scale(s)}
}

// Div is the uniform inverse scale; dividing by zero yields IEEE
// infinities.
func (m Motor) Div(s float32) Motor {
	inv := rcp(s)
	return Motor{p1: m.p1.scale(inv), p2: m.p2.scale(inv)}
}

// Reverse is the reversion operator ~m, negating the grade-2 blades of both
// registers. For a normalized motor this is the inverse motion.
func (m Motor) Reverse() Motor {
	return Motor{p1: m.p1.flipUpper(), p2: m.p2.flipUpper()}
}

// Normalized returns the motor scaled so m·~m = 1. The reversion product of
// a motor is a scalar plus a pseudoscalar, so beyond the uniform scale the
// ideal register needs a correction along the even register; without it the
// transform would shear ideal components.
func (m Motor) Normalized() Motor {
	n2 := m.p1.dot(m.p1)
	inv := rsqrt(n2)
	lam := m.p1.dot(m.p2.flipUpper())
	k := lam * inv / n2
	return Motor{
		p1: m.p1.scale(inv),
		p2: m.p2.scale(inv).sub(m.p1.flipUpper().scale(k)),
	}
}

// Inverse returns m⁻¹ such that m·m⁻¹ = 1, valid for any motor with a
// nonzero even part. For a normalized motor this is just the reversion.
func (m Motor) Inverse() Motor {
	n2 := m.p1.dot(m.p1)
	inv := rcp(n2)
	lam := m.p1.dot(m.p2.flipUpper())
	k := 2 * lam * inv * inv
	return Motor{
		p1: m.p1.flipUpper().scale(inv),
		p2: m.p2.flipUpper().scale(inv).sub(m.p1.scale(k)),
	}
}

// Mul composes two rigid motions: m.Mul(n) applies n first, then m.
func (m Motor) Mul(n Motor) Motor {
	p1, p2 := gpMM(m.p1, m.p2, n.p1, n.p2)
	return Motor{p1: p1, p2: p2}
}

// MulRotor composes a rigid motion after a rotation.
func (m Motor) MulRotor(r Rotor) Motor {
	return Motor{p1: gp11(m.p1, r.p1), p2: gpIE(m.p2, r.p1)}
}

// MulTranslator composes a rigid motion after a translation.
func (m Motor) MulTranslator(t Translator) Motor {
	return Motor{p1: m.p1, p2: m.p2.add(gpEI(m.p1, t.p2))}
}

// TransformPlane conjugates a plane: m·p·~m.
func (m Motor) TransformPlane(p Plane) Plane {
	pk := newPlaneKernel(m.p1, &m.p2)
	return pk.one(p)
}

// TransformPlanes conjugates a slice of planes, deriving the motor's
// transform coefficients once for the whole batch. Aliasing is permitted
// only when in and out are the identical slice; any other overlap is a
// precondition violation with undefined results.
func (m Motor) TransformPlanes(in, out []Plane) {
	pk := newPlaneKernel(m.p1, &m.p2)
	pk.batch(in, out)
}

// TransformPoint conjugates a point: m·p·~m. The weight never divides
// anything, so ideal points transform correctly.
func (m Motor) TransformPoint(p Point) Point {
	pk := newPointKernel(m.p1, &m.p2)
	return Point{p3: pk.one(p.p3)}
}

// TransformPoints conjugates a slice of points. Aliasing is permitted only
// when in and out are the identical slice.
func (m Motor) TransformPoints(in, out []Point) {
	pk := newPointKernel(m.p1, &m.p2)
	pk.batchPoints(in, out)
}

// TransformDirection conjugates a direction. The translational coupling is
// weighted by the zero e123 lane, so only the rotational part acts; the
// point formula is reused because it is total at zero weight.
func (m Motor) TransformDirection(d Direction) Direction {
	pk := newPointKernel(m.p1, nil)
	return Direction{p3: pk.one(d.p3)}
}

// TransformDirections conjugates a slice of directions. Aliasing is
// permitted only when in and out are the identical slice.
func (m Motor) TransformDirections(in, out []Direction) {
	pk := newPointKernel(m.p1, nil)
	pk.batchDirections(in, out)
}

// TransformLine conjugates a line: m·l·~m.
func (m Motor) TransformLine(l Line) Line {
	lk := newLineKernel(m.p1, &m.p2)
	return lk.one(l)
}

// TransformLines conjugates a slice of lines. Aliasing is permitted only
// when in and out are the identical slice.
func (m Motor) TransformLines(in, out []Line) {
	lk := newLineKernel(m.p1, &m.p2)
	lk.batch(in, out)
}

// Log recovers the line whose exponential is this motor. The motor must be
// normalized; behavior on non-unit input is unspecified.
//
// The rotational part follows the rotor logarithm. The translational part
// needs the derivative of the rotational series at the same angle to couple
// pitch and rotation; near zero rotation it switches to a Taylor series,
// and a motor with an exactly zero rotational bivector (a pure translation)
// returns its ideal coefficients unscaled, with no series evaluation at
// all.
func (m Motor) Log() Line {
	bb := m.p1.dot3(m.p1)
	if bb == 0 {
		return Line{p2: quad{0, m.p2[1], m.p2[2], m.p2[3]}}
	}
	a := clamp1(m.p1[0])
	s := m.p2[0]
	u := acos32(a)
	sn := sqrt32(bb)
	var p, q float32
	if u < smallAngleTol {
		p = 1 + bb/6
		q = s / 3
	} else {
		p = u / sn
		q = s * (sn - u*a) / (bb * sn)
	}
	return Line{
		p1: quad{0, p * m.p1[1], p * m.p1[2], p * m.p1[3]},
		p2: quad{
			0,
			p*m.p2[1] + q*m.p1[1],
			p*m.p2[2] + q*m.p1[2],
			p*m.p2[3] + q*m.p1[3],
		},
	}
}

// Sqrt returns the motor s with s·s = m, by averaging with the identity and
// renormalizing over both registers. No log/exp round trip is needed.
func (m Motor) Sqrt() Motor {
	m.p1[0] += 1
	return m.Normalized()
}

// Exp maps a line to the motor exp(l). The rotational part follows the
// branch exponential exactly; the translational part couples the pitch
// through the derivative of the rotational series, with a Taylor fallback
// below smallAngleTol and an exact identity-rotor path for a pure
// translation.
func (l Line) Exp() Motor {
	bb := l.p1.dot3(l.p1)
	if bb == 0 {
		return Motor{p1: quad{1, 0, 0, 0}, p2: quad{0, l.p2[1], l.p2[2], l.p2[3]}}
	}
	u := sqrt32(bb)
	bt := l.p1.dot3(l.p2)
	var p, q float32
	if u < smallAngleTol {
		p = 1 - bb/6
		q = 1.0/3 - bb/30
	} else {
		su, cu := sin32(u), cos32(u)
		p = su / u
		q = (su - u*cu) / (u * bb)
	}
	return Motor{
		p1: quad{cos32(u), p * l.p1[1], p * l.p1[2], p * l.p1[3]},
		p2: quad{
			bt * p,
			p*l.p2[1] - bt*q*l.p1[1],
			p*l.p2[2] - bt*q*l.p1[2],
			p*l.p2[3] - bt*q*l.p1[3],
		},
	}
}
