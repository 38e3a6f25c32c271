package pga

// Structure-of-arrays entry points. These wrap the Base* kernels in
// transform_hwy.go for the common float32 case, deriving the operator's
// broadcast coefficients once per call. The slice aliasing rule matches the
// packed batch methods: inputs and outputs may be the identical slices, any
// other overlap is undefined.

// TransformPointsSoA applies the motor to de-interleaved Euclidean point
// coordinates; entity i is (xs[i], ys[i], zs[i]) with implicit unit weight.
// Defined only for a normalized motor.
func (m Motor) TransformPointsSoA(xs, ys, zs, ox, oy, oz []float32) {
	c := m.Mat3x4().Cols
	BaseMotorPointsBatch(
		c[0][0], c[1][0], c[2][0], c[3][0],
		c[0][1], c[1][1], c[2][1], c[3][1],
		c[0][2], c[1][2], c[2][2], c[3][2],
		xs, ys, zs, ox, oy, oz,
	)
}

// TransformPlanesSoA applies the motor to de-interleaved planes; plane i is
// nx[i]·e1 + ny[i]·e2 + nz[i]·e3 + d[i]·e0. Defined only for a normalized
// motor.
func (m Motor) TransformPlanesSoA(nxs, nys, nzs, ds, onx, ony, onz, od []float32) {
	ek := newEvenKernel(m.p1)
	k := planeShift(m.p1, m.p2)
	BaseMotorPlanesBatch(
		ek.m[0][0], ek.m[0][1], ek.m[0][2],
		ek.m[1][0], ek.m[1][1], ek.m[1][2],
		ek.m[2][0], ek.m[2][1], ek.m[2][2],
		k[0], k[1], k[2],
		nxs, nys, nzs, ds, onx, ony, onz, od,
	)
}

// NormalizeRotorsSoA normalizes de-interleaved rotor components in place;
// rotor i is (as[i], bs[i], cs[i], ds[i]) in (scalar, e23, e31, e12) order.
func NormalizeRotorsSoA(as, bs, cs, ds []float32) {
	BaseNormalizeRotorsBatch(as, bs, cs, ds)
}
