package pga

// Point is a grade-3 entity x·e032 + y·e013 + z·e021 + w·e123. The weight w
// is the homogeneous coordinate: w = 1 is a normalized Euclidean point and
// w = 0 is an ideal point (a point at infinity). Packed layout:
// (e123, e032, e013, e021).
type Point struct {
	p3 quad
}

// NewPoint returns the Euclidean point (x, y, z) with unit weight.
func NewPoint(x, y, z float32) Point {
	return Point{p3: quad{1, x, y, z}}
}

// PointFromPacked loads a point from four floats in the packed blade order
// (e123, e032, e013, e021).
func PointFromPacked(data [4]float32) Point {
	return Point{p3: data}
}

// Packed returns the point's components in the packed blade order
// (e123, e032, e013, e021).
func (p Point) Packed() [4]float32 { return p.p3 }

func (p Point) W() float32    { return p.p3[0] }
func (p Point) X() float32    { return p.p3[1] }
func (p Point) Y() float32    { return p.p3[2] }
func (p Point) Z() float32    { return p.p3[3] }
func (p Point) E123() float32 { return p.p3[0] }
func (p Point) E032() float32 { return p.p3[1] }
func (p Point) E013() float32 { return p.p3[2] }
func (p Point) E021() float32 { return p.p3[3] }

func (p Point) Add(q Point) Point { return Point{p3: p.p3.add(q.p3)} }

func (p Point) Sub(q Point) Point { return Point{p3: p.p3.sub(q.p3)} }

func (p Point) Scale(s float32) Point { return Point{p3: p.p3.scale(s)} }

// Div is the uniform inverse scale; dividing by zero yields IEEE
// infinities.
func (p Point) Div(s float32) Point { return Point{p3: p.p3.scale(rcp(s))} }

// Normalized returns the point scaled to unit weight. A zero-weight (ideal)
// point produces infinities; the weight is deliberately not checked.
func (p Point) Normalized() Point {
	return Point{p3: p.p3.scale(rcp(p.p3[0]))}
}

// Reverse is the reversion operator ~p, which negates every grade-3 blade.
func (p Point) Reverse() Point { return Point{p3: p.p3.neg()} }

// Direction is an ideal point: a free vector with direction and no
// position, unaffected by translation. Packed layout matches Point with the
// e123 lane fixed at zero.
type Direction struct {
	p3 quad
}

// NewDirection returns the direction (x, y, z) scaled to unit length.
// Undefined for a zero vector.
func NewDirection(x, y, z float32) Direction {
	d := Direction{p3: quad{0, x, y, z}}
	return d.Normalized()
}

// DirectionFromPacked loads a direction from four floats in the packed
// blade order (e123, e032, e013, e021). The e123 lane must be zero; this is
// a trust boundary, not a checked invariant.
func DirectionFromPacked(data [4]float32) Direction {
	return Direction{p3: data}
}

// Packed returns the direction's components in the packed blade order
// (e123, e032, e013, e021).
func (d Direction) Packed() [4]float32 { return d.p3 }

func (d Direction) X() float32    { return d.p3[1] }
func (d Direction) Y() float32    { return d.p3[2] }
func (d Direction) Z() float32    { return d.p3[3] }
func (d Direction) E032() float32 { return d.p3[1] }
func (d Direction) E013() float32 { return d.p3[2] }
func (d Direction) E021() float32 { return d.p3[3] }

func (d Direction) Add(e Direction) Direction { return Direction{p3: d.p3.add(e.p3)} }

func (d Direction) Sub(e Direction) Direction { return Direction{p3: d.p3.sub(e.p3)} }

func (d Direction) Scale(s float32) Direction { return Direction{p3: d.p3.scale(s)} }

func (d Direction) Div(s float32) Direction { return Direction{p3: d.p3.scale(rcp(s))} }

// Normalized returns the direction scaled to unit length.
func (d Direction) Normalized() Direction {
	return Direction{p3: d.p3.scale(rsqrt(d.p3.dot3(d.p3)))}
}

// Reverse negates every grade-3 blade.
func (d Direction) Reverse() Direction { return Direction{p3: d.p3.neg()} }
