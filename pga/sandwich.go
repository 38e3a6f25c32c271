package pga

// Sandwich kernels: closed-form blade combinations for the conjugation
// x·y·~x of an entity y by an even-grade operator x, computed without
// materializing the intermediate geometric product.
//
// Every kernel splits into two phases. The first derives the operator's
// transform coefficients (its self-product terms); the second applies them
// to one entity with a handful of fused multiply-adds. The batched slice
// paths pay for phase one exactly once per call, which is what makes them
// markedly faster than transforming entities one by one.
//
// The formulas are total for all finite inputs: nothing divides by an
// entity component, so zero-weight (ideal) entities transform correctly.
// An unnormalized operator scales the result by its squared reversion norm.

// evenKernel is the action of the operator's even part (scalar, e23, e31,
// e12): a 3x3 rotation-like map shared by planes, points, directions, and
// both halves of a line, plus the squared reversion norm that scales the
// invariant lane.
type evenKernel struct {
	m  [3][3]float32
	n2 float32
}

func newEvenKernel(p1 quad) evenKernel {
	a, b, c, d := p1[0], p1[1], p1[2], p1[3]
	aa, bb, cc, dd := a*a, b*b, c*c, d*d
	return evenKernel{
		m: [3][3]float32{
			{aa + bb - cc - dd, 2 * (a*d + b*c), 2 * (b*d - a*c)},
			{2 * (b*c - a*d), aa - bb + cc - dd, 2 * (a*b + c*d)},
			{2 * (a*c + b*d), 2 * (c*d - a*b), aa - bb - cc + dd},
		},
		n2: aa + bb + cc + dd,
	}
}

func (k *evenKernel) apply(x, y, z float32) (float32, float32, float32) {
	return k.m[0][0]*x + k.m[0][1]*y + k.m[0][2]*z,
		k.m[1][0]*x + k.m[1][1]*y + k.m[1][2]*z,
		k.m[2][0]*x + k.m[2][1]*y + k.m[2][2]*z
}

// planeShift is the coupling of the operator's ideal part into a plane's
// offset lane: e0' = n2·e0 + k·n.
func planeShift(p1, p2 quad) [3]float32 {
	a, b, c, d := p1[0], p1[1], p1[2], p1[3]
	s, t1, t2, t3 := p2[0], p2[1], p2[2], p2[3]
	return [3]float32{
		2 * (a*t1 + b*s + c*t3 - d*t2),
		2 * (a*t2 + c*s + d*t1 - b*t3),
		2 * (a*t3 + d*s + b*t2 - c*t1),
	}
}

// pointShift is the coupling of the operator's ideal part into a point's
// Euclidean lanes: v' = M·v + k·w. It vanishes against a zero weight, which
// is exactly why ideal points and directions only rotate.
func pointShift(p1, p2 quad) [3]float32 {
	a, b, c, d := p1[0], p1[1], p1[2], p1[3]
	s, t1, t2, t3 := p2[0], p2[1], p2[2], p2[3]
	return [3]float32{
		-2 * (a*t1 + b*s + d*t2 - c*t3),
		-2 * (a*t2 + c*s + b*t3 - d*t1),
		-2 * (a*t3 + d*s + c*t1 - b*t2),
	}
}

// momentShift is the coupling of the operator's ideal part into a line's
// moment: m' = M·m + K·l. Only the rotational part of the line feeds it.
func momentShift(p1, p2 quad) [3][3]float32 {
	a, b, c, d := p1[0], p1[1], p1[2], p1[3]
	s, t1, t2, t3 := p2[0], p2[1], p2[2], p2[3]
	return [3][3]float32{
		{2 * (b*t1 - a*s - c*t2 - d*t3), 2 * (a*t3 + b*t2 + c*t1 - d*s), 2 * (b*t3 + c*s + d*t1 - a*t2)},
		{2 * (b*t2 + c*t1 + d*s - a*t3), 2 * (c*t2 - a*s - b*t1 - d*t3), 2 * (a*t1 + c*t3 + d*t2 - b*s)},
		{2 * (a*t2 + b*t3 + d*t1 - c*s), 2 * (b*s + c*t3 + d*t2 - a*t1), 2 * (d*t3 - a*s - b*t1 - c*t2)},
	}
}

// planeKernel conjugates planes. hasShift selects the full motor formula;
// without it the offset lane only picks up the norm scale.
type planeKernel struct {
	ek       evenKernel
	k        [3]float32
	hasShift bool
}

func newPlaneKernel(p1 quad, p2 *quad) planeKernel {
	pk := planeKernel{ek: newEvenKernel(p1)}
	if p2 != nil {
		pk.k = planeShift(p1, *p2)
		pk.hasShift = true
	}
	return pk
}

func (pk *planeKernel) one(p Plane) Plane {
	x, y, z := pk.ek.apply(p.p0[1], p.p0[2], p.p0[3])
	e0 := pk.ek.n2 * p.p0[0]
	if pk.hasShift {
		e0 += pk.k[0]*p.p0[1] + pk.k[1]*p.p0[2] + pk.k[2]*p.p0[3]
	}
	return Plane{p0: quad{e0, x, y, z}}
}

func (pk *planeKernel) batch(in, out []Plane) {
	for i := range min(len(in), len(out)) {
		out[i] = pk.one(in[i])
	}
}

// pointKernel conjugates points and directions.
type pointKernel struct {
	ek       evenKernel
	k        [3]float32
	hasShift bool
}

func newPointKernel(p1 quad, p2 *quad) pointKernel {
	pk := pointKernel{ek: newEvenKernel(p1)}
	if p2 != nil {
		pk.k = pointShift(p1, *p2)
		pk.hasShift = true
	}
	return pk
}

func (pk *pointKernel) one(p quad) quad {
	x, y, z := pk.ek.apply(p[1], p[2], p[3])
	if pk.hasShift {
		x += pk.k[0] * p[0]
		y += pk.k[1] * p[0]
		z += pk.k[2] * p[0]
	}
	return quad{pk.ek.n2 * p[0], x, y, z}
}

func (pk *pointKernel) batchPoints(in, out []Point) {
	for i := range min(len(in), len(out)) {
		out[i] = Point{p3: pk.one(in[i].p3)}
	}
}

func (pk *pointKernel) batchDirections(in, out []Direction) {
	for i := range min(len(in), len(out)) {
		out[i] = Direction{p3: pk.one(in[i].p3)}
	}
}

// lineKernel conjugates lines and branches.
type lineKernel struct {
	ek       evenKernel
	km       [3][3]float32
	hasShift bool
}

func newLineKernel(p1 quad, p2 *quad) lineKernel {
	lk := lineKernel{ek: newEvenKernel(p1)}
	if p2 != nil {
		lk.km = momentShift(p1, *p2)
		lk.hasShift = true
	}
	return lk
}

func (lk *lineKernel) one(l Line) Line {
	d1, d2, d3 := lk.ek.apply(l.p1[1], l.p1[2], l.p1[3])
	m1, m2, m3 := lk.ek.apply(l.p2[1], l.p2[2], l.p2[3])
	if lk.hasShift {
		m1 += lk.km[0][0]*l.p1[1] + lk.km[0][1]*l.p1[2] + lk.km[0][2]*l.p1[3]
		m2 += lk.km[1][0]*l.p1[1] + lk.km[1][1]*l.p1[2] + lk.km[1][2]*l.p1[3]
		m3 += lk.km[2][0]*l.p1[1] + lk.km[2][1]*l.p1[2] + lk.km[2][2]*l.p1[3]
	}
	return Line{p1: quad{0, d1, d2, d3}, p2: quad{0, m1, m2, m3}}
}

func (lk *lineKernel) batch(in, out []Line) {
	for i := range min(len(in), len(out)) {
		out[i] = lk.one(in[i])
	}
}
