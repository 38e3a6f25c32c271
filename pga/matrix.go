package pga

// Matrix conversions for handing operators to a column-major rendering or
// transform pipeline. The conversions share their coefficients with the
// point sandwich kernel and are defined only for normalized operators.

// Mat4x4 is a column-major 4x4 matrix; Cols[j][i] is row i of column j.
type Mat4x4 struct {
	Cols [4][4]float32
}

// MulVec4 applies the matrix to a column vector (x, y, z, w).
func (m Mat4x4) MulVec4(v [4]float32) [4]float32 {
	var out [4]float32
	for i := range 4 {
		out[i] = m.Cols[0][i]*v[0] + m.Cols[1][i]*v[1] + m.Cols[2][i]*v[2] + m.Cols[3][i]*v[3]
	}
	return out
}

// Mat3x4 is a column-major 3x4 matrix: four columns of three rows, the
// affine part of a rigid transform with the constant (0, 0, 0, 1) row
// dropped.
type Mat3x4 struct {
	Cols [4][3]float32
}

// MulVec4 applies the matrix to a column vector (x, y, z, w).
func (m Mat3x4) MulVec4(v [4]float32) [3]float32 {
	var out [3]float32
	for i := range 3 {
		out[i] = m.Cols[0][i]*v[0] + m.Cols[1][i]*v[1] + m.Cols[2][i]*v[2] + m.Cols[3][i]*v[3]
	}
	return out
}

func mat4x4FromKernel(ek *evenKernel, k [3]float32) Mat4x4 {
	var out Mat4x4
	for j := range 3 {
		out.Cols[j] = [4]float32{ek.m[0][j], ek.m[1][j], ek.m[2][j], 0}
	}
	out.Cols[3] = [4]float32{k[0], k[1], k[2], 1}
	return out
}

// Mat4x4 converts the rotor to a 4x4 column-major matrix. Defined only for
// a normalized rotor.
func (r Rotor) Mat4x4() Mat4x4 {
	ek := newEvenKernel(r.p1)
	return mat4x4FromKernel(&ek, [3]float32{})
}

// Mat3x4 converts the rotor to a 3x4 column-major matrix, preferable over
// Mat4x4 when the projective row is not needed. Defined only for a
// normalized rotor.
func (r Rotor) Mat3x4() Mat3x4 {
	m4 := r.Mat4x4()
	return mat3x4From4x4(m4)
}

// Mat4x4 converts the motor to a 4x4 column-major matrix. Defined only for
// a normalized motor.
func (m Motor) Mat4x4() Mat4x4 {
	ek := newEvenKernel(m.p1)
	return mat4x4FromKernel(&ek, pointShift(m.p1, m.p2))
}

// Mat3x4 converts the motor to a 3x4 column-major matrix. Defined only for
// a normalized motor.
func (m Motor) Mat3x4() Mat3x4 {
	return mat3x4From4x4(m.Mat4x4())
}

func mat3x4From4x4(m Mat4x4) Mat3x4 {
	var out Mat3x4
	for j := range 4 {
		out.Cols[j] = [3]float32{m.Cols[j][0], m.Cols[j][1], m.Cols[j][2]}
	}
	return out
}
