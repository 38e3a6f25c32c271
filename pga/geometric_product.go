package pga

// Geometric products between operator registers. Each is a fixed bilinear
// blade combination with no branching; the public composition methods on
// Rotor, Translator, and Motor are thin wrappers over these.

// gp11 multiplies two even registers (scalar, e23, e31, e12). This is the
// quaternion product in the packed lane order.
func gp11(a, b quad) quad {
	return quad{
		a[0]*b[0] - a[1]*b[1] - a[2]*b[2] - a[3]*b[3],
		a[0]*b[1] + a[1]*b[0] + a[3]*b[2] - a[2]*b[3],
		a[0]*b[2] + a[2]*b[0] + a[1]*b[3] - a[3]*b[1],
		a[0]*b[3] + a[3]*b[0] + a[2]*b[1] - a[1]*b[2],
	}
}

// gpEI multiplies an even register by an ideal register
// (e0123, e01, e02, e03), yielding an ideal register.
func gpEI(e, i quad) quad {
	a, b, c, d := e[0], e[1], e[2], e[3]
	s, t1, t2, t3 := i[0], i[1], i[2], i[3]
	return quad{
		a*s + b*t1 + c*t2 + d*t3,
		a*t1 + d*t2 - c*t3 - b*s,
		a*t2 + b*t3 - d*t1 - c*s,
		a*t3 + c*t1 - b*t2 - d*s,
	}
}

// gpIE multiplies an ideal register by an even register. The ideal blades
// annihilate each other, so this and gpEI are the only cross terms a motor
// product needs.
func gpIE(i, e quad) quad {
	s, t1, t2, t3 := i[0], i[1], i[2], i[3]
	a, b, c, d := e[0], e[1], e[2], e[3]
	return quad{
		s*a + t1*b + t2*c + t3*d,
		a*t1 - d*t2 + c*t3 - s*b,
		a*t2 - b*t3 + d*t1 - s*c,
		a*t3 - c*t1 + b*t2 - s*d,
	}
}

// gpMM multiplies two motor register pairs.
func gpMM(p1a, p2a, p1b, p2b quad) (p1, p2 quad) {
	return gp11(p1a, p1b), gpEI(p1a, p2b).add(gpIE(p2a, p1b))
}
