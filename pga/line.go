package pga

// Branch is a line through the origin: a pure rotation axis
// a·e23 + b·e31 + c·e12. Branches are the Lie algebra of the rotor group;
// Branch.Exp produces a rotor and Rotor.Log a branch. Packed layout:
// (0, e23, e31, e12).
type Branch struct {
	p1 quad
}

// NewBranch returns the branch a·e23 + b·e31 + c·e12. The coefficients
// (a, b, c) are the axis direction; a unit axis exponentiates to a rotation
// of two radians, so interpolation code usually builds branches via
// Rotor.Log rather than directly.
func NewBranch(a, b, c float32) Branch {
	return Branch{p1: quad{0, a, b, c}}
}

// BranchFromPacked loads a branch from four floats in the packed blade
// order (0, e23, e31, e12). The first float must be zero.
func BranchFromPacked(data [4]float32) Branch {
	return Branch{p1: data}
}

// Packed returns the branch components in the packed blade order
// (0, e23, e31, e12).
func (b Branch) Packed() [4]float32 { return b.p1 }

func (b Branch) E23() float32 { return b.p1[1] }
func (b Branch) E31() float32 { return b.p1[2] }
func (b Branch) E12() float32 { return b.p1[3] }
func (b Branch) E32() float32 { return -b.p1[1] }
func (b Branch) E13() float32 { return -b.p1[2] }
func (b Branch) E21() float32 { return -b.p1[3] }

func (b Branch) Add(c Branch) Branch { return Branch{p1: b.p1.add(c.p1)} }

func (b Branch) Sub(c Branch) Branch { return Branch{p1: b.p1.sub(c.p1)} }

func (b Branch) Scale(s float32) Branch { return Branch{p1: b.p1.scale(s)} }

// Div is the uniform inverse scale; dividing by zero yields IEEE
// infinities.
func (b Branch) Div(s float32) Branch { return Branch{p1: b.p1.scale(rcp(s))} }

// Normalized returns the branch scaled to unit axis length. Undefined for
// the zero branch.
func (b Branch) Normalized() Branch {
	return Branch{p1: b.p1.scale(rsqrt(b.p1.dot3(b.p1)))}
}

// Reverse negates the grade-2 blades.
func (b Branch) Reverse() Branch { return Branch{p1: b.p1.flipUpper()} }

// Line is a general screw axis with a rotational bivector part
// (e23, e31, e12) and an ideal, translational part (e01, e02, e03). Lines
// are the Lie algebra of the motor group: Line.Exp produces a motor and
// Motor.Log a line. Packed layout: p1 = (0, e23, e31, e12) followed by
// p2 = (0, e01, e02, e03).
type Line struct {
	p1 quad
	p2 quad
}

// NewLine returns the line a·e01 + b·e02 + c·e03 + d·e23 + e·e31 + f·e12.
// (d, e, f) is the direction and (a, b, c) the moment, matching Plücker
// coordinates.
func NewLine(a, b, c, d, e, f float32) Line {
	return Line{p1: quad{0, d, e, f}, p2: quad{0, a, b, c}}
}

// LineFromBranch widens a branch into a line through the origin with zero
// moment.
func LineFromBranch(b Branch) Line {
	return Line{p1: b.p1}
}

// LineFromPacked loads a line from eight floats in the packed blade order
// (0, e23, e31, e12, 0, e01, e02, e03).
func LineFromPacked(p1, p2 [4]float32) Line {
	return Line{p1: p1, p2: p2}
}

// Packed returns the line components in the packed blade order
// (0, e23, e31, e12), (0, e01, e02, e03).
func (l Line) Packed() (p1, p2 [4]float32) { return l.p1, l.p2 }

func (l Line) E23() float32 { return l.p1[1] }
func (l Line) E31() float32 { return l.p1[2] }
func (l Line) E12() float32 { return l.p1[3] }
func (l Line) E32() float32 { return -l.p1[1] }
func (l Line) E13() float32 { return -l.p1[2] }
func (l Line) E21() float32 { return -l.p1[3] }
func (l Line) E01() float32 { return l.p2[1] }
func (l Line) E02() float32 { return l.p2[2] }
func (l Line) E03() float32 { return l.p2[3] }
func (l Line) E10() float32 { return -l.p2[1] }
func (l Line) E20() float32 { return -l.p2[2] }
func (l Line) E30() float32 { return -l.p2[3] }

func (l Line) Add(m Line) Line {
	return Line{p1: l.p1.add(m.p1), p2: l.p2.add(m.p2)}
}

func (l Line) Sub(m Line) Line {
	return Line{p1: l.p1.sub(m.p1), p2: l.p2.sub(m.p2)}
}

func (l Line) Scale(s float32) Line {
	return Line{p1: l.p1.scale(s), p2: l.p2.scale(s)}
}

// Div is the uniform inverse scale, the workhorse of motion subdivision:
// exp(l.Div(n)) composed n times reproduces exp(l). Dividing by zero yields
// IEEE infinities.
func (l Line) Div(s float32) Line {
	inv := rcp(s)
	return Line{p1: l.p1.scale(inv), p2: l.p2.scale(inv)}
}

// Reverse negates all grade-2 blades.
func (l Line) Reverse() Line {
	return Line{p1: l.p1.flipUpper(), p2: l.p2.flipUpper()}
}
