package pga

// Translator is the even-grade operator 1 + t1·e01 + t2·e02 + t3·e03
// representing a pure translation. The unit scalar is implicit and not
// stored; the packed register holds (e0123, e01, e02, e03) with a zero
// e0123 lane. Translators are always unit under the reversion norm, so
// there is nothing to normalize.
type Translator struct {
	p2 quad
}

// NewTranslator returns the translator that moves by delta along the axis
// (x, y, z). The axis is normalized internally; a zero axis yields NaN
// lanes.
func NewTranslator(delta, x, y, z float32) Translator {
	s := -0.5 * delta * rsqrt(x*x+y*y+z*z)
	return Translator{p2: quad{0, x * s, y * s, z * s}}
}

// TranslatorFromPacked loads a translator from four floats in the packed
// blade order (e0123, e01, e02, e03). The e0123 lane must be zero.
func TranslatorFromPacked(data [4]float32) Translator {
	return Translator{p2: data}
}

// Packed returns the translator components in the packed blade order
// (e0123, e01, e02, e03).
func (t Translator) Packed() [4]float32 { return t.p2 }

// Scalar returns the implicit unit scalar part.
func (t Translator) Scalar() float32 { return 1 }

func (t Translator) E01() float32 { return t.p2[1] }
func (t Translator) E02() float32 { return t.p2[2] }
func (t Translator) E03() float32 { return t.p2[3] }
func (t Translator) E10() float32 { return -t.p2[1] }
func (t Translator) E20() float32 { return -t.p2[2] }
func (t Translator) E30() float32 { return -t.p2[3] }

// Reverse is the reversion operator ~t, negating the ideal bivector lanes.
func (t Translator) Reverse() Translator { return Translator{p2: t.p2.flipUpper()} }

// Inverse returns the opposite translation; for a translator reversion and
// inversion coincide.
func (t Translator) Inverse() Translator { return t.Reverse() }

// Mul composes two translations. Translator composition commutes, unlike
// every other operator pair.
func (t Translator) Mul(u Translator) Translator {
	return Translator{p2: t.p2.add(u.p2)}
}

// MulRotor composes a translation after a rotation, producing the motor
// that applies r first, then t.
func (t Translator) MulRotor(r Rotor) Motor {
	return Motor{p1: r.p1, p2: gpIE(t.p2, r.p1)}
}

// MulMotor composes a translation after a general rigid motion.
func (t Translator) MulMotor(m Motor) Motor {
	return Motor{p1: m.p1, p2: m.p2.add(gpIE(t.p2, m.p1))}
}

// Sqrt returns the translator s with s·s = t: half the displacement. Exact,
// since ideal bivectors square to zero.
func (t Translator) Sqrt() Translator {
	return Translator{p2: t.p2.scale(0.5)}
}

// Log returns the line generating this translation: zero rotational
// coefficients and the translator's ideal coefficients, exactly. There is
// no small-angle series in this path.
func (t Translator) Log() Line {
	return Line{p2: t.p2}
}

// TransformPlane conjugates a plane: the normal is unchanged and the offset
// shifts by the translation's component along it.
func (t Translator) TransformPlane(p Plane) Plane {
	e0 := p.p0[0] + 2*(t.p2[1]*p.p0[1]+t.p2[2]*p.p0[2]+t.p2[3]*p.p0[3])
	return Plane{p0: quad{e0, p.p0[1], p.p0[2], p.p0[3]}}
}

// TransformPlanes conjugates a slice of planes. Aliasing is permitted only
// when in and out are the identical slice.
func (t Translator) TransformPlanes(in, out []Plane) {
	for i := range min(len(in), len(out)) {
		out[i] = t.TransformPlane(in[i])
	}
}

// TransformPoint conjugates a point, displacing it by the weight-scaled
// translation. Ideal points are fixed points of the formula.
func (t Translator) TransformPoint(p Point) Point {
	w := p.p3[0]
	return Point{p3: quad{
		w,
		p.p3[1] - 2*t.p2[1]*w,
		p.p3[2] - 2*t.p2[2]*w,
		p.p3[3] - 2*t.p2[3]*w,
	}}
}

// TransformPoints conjugates a slice of points. Aliasing is permitted only
// when in and out are the identical slice.
func (t Translator) TransformPoints(in, out []Point) {
	for i := range min(len(in), len(out)) {
		out[i] = t.TransformPoint(in[i])
	}
}

// TransformDirection is the identity: a free vector has no position to
// displace. Exposed so translators cover the same entity set as the other
// operators.
func (t Translator) TransformDirection(d Direction) Direction { return d }

// TransformLine conjugates a line: the direction is unchanged and the
// moment picks up the cross coupling with the translation.
func (t Translator) TransformLine(l Line) Line {
	return Line{
		p1: l.p1,
		p2: quad{
			0,
			l.p2[1] + 2*(t.p2[3]*l.p1[2]-t.p2[2]*l.p1[3]),
			l.p2[2] + 2*(t.p2[1]*l.p1[3]-t.p2[3]*l.p1[1]),
			l.p2[3] + 2*(t.p2[2]*l.p1[1]-t.p2[1]*l.p1[2]),
		},
	}
}

// TransformLines conjugates a slice of lines. Aliasing is permitted only
// when in and out are the identical slice.
func (t Translator) TransformLines(in, out []Line) {
	for i := range min(len(in), len(out)) {
		out[i] = t.TransformLine(in[i])
	}
}
