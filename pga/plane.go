package pga

// Plane is a grade-1 entity p = a·e1 + b·e2 + c·e3 + d·e0: the set of
// points x satisfying ax + by + cz + d = 0. The normal is (a, b, c) and d
// is the offset from the origin. Packed layout: (e0, e1, e2, e3).
type Plane struct {
	p0 quad
}

// NewPlane returns the plane a·e1 + b·e2 + c·e3 + d·e0. The normal is not
// normalized; callers that want a unit plane scale by the normal's inverse
// length themselves.
func NewPlane(a, b, c, d float32) Plane {
	return Plane{p0: quad{d, a, b, c}}
}

// PlaneFromPacked loads a plane from four floats in the packed blade order
// (e0, e1, e2, e3). The layout is a compatibility contract for callers that
// serialize entities directly.
func PlaneFromPacked(data [4]float32) Plane {
	return Plane{p0: data}
}

// Packed returns the plane's components in the packed blade order
// (e0, e1, e2, e3).
func (p Plane) Packed() [4]float32 { return p.p0 }

func (p Plane) E0() float32 { return p.p0[0] }
func (p Plane) E1() float32 { return p.p0[1] }
func (p Plane) E2() float32 { return p.p0[2] }
func (p Plane) E3() float32 { return p.p0[3] }

// X, Y, Z are the normal components, aliases for E1, E2, E3.
func (p Plane) X() float32 { return p.p0[1] }
func (p Plane) Y() float32 { return p.p0[2] }
func (p Plane) Z() float32 { return p.p0[3] }

// D is the offset component, an alias for E0.
func (p Plane) D() float32 { return p.p0[0] }

func (p Plane) Add(q Plane) Plane { return Plane{p0: p.p0.add(q.p0)} }

func (p Plane) Sub(q Plane) Plane { return Plane{p0: p.p0.sub(q.p0)} }

func (p Plane) Scale(s float32) Plane { return Plane{p0: p.p0.scale(s)} }

// Div is the uniform inverse scale. Dividing by zero produces IEEE
// infinities in every lane rather than a reported error.
func (p Plane) Div(s float32) Plane { return Plane{p0: p.p0.scale(rcp(s))} }

// Normalized returns the plane scaled so its normal has unit length.
// Undefined for a zero normal.
func (p Plane) Normalized() Plane {
	return Plane{p0: p.p0.scale(rsqrt(p.p0.dot3(p.p0)))}
}

// Reverse is the reversion operator ~p. Grade-1 blades are fixed points of
// reversion, so this is the identity; it exists so that reversion is
// uniformly available across every entity type.
func (p Plane) Reverse() Plane { return p }
