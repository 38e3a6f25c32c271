package pga

import "math"

// quad is a packed 4-lane float32 register, the storage unit for every
// entity in the algebra. Lane meaning is fixed per entity type and is part
// of the packed-data ABI documented on each type.
type quad [4]float32

func (q quad) add(r quad) quad {
	return quad{q[0] + r[0], q[1] + r[1], q[2] + r[2], q[3] + r[3]}
}

func (q quad) sub(r quad) quad {
	return quad{q[0] - r[0], q[1] - r[1], q[2] - r[2], q[3] - r[3]}
}

func (q quad) scale(s float32) quad {
	return quad{q[0] * s, q[1] * s, q[2] * s, q[3] * s}
}

// dot is the horizontal 4-lane dot product. For an even-grade operator
// register this is exactly the reversion norm x·~x.
func (q quad) dot(r quad) float32 {
	return q[0]*r[0] + q[1]*r[1] + q[2]*r[2] + q[3]*r[3]
}

// dot3 is the horizontal dot product of the upper three lanes, the
// Euclidean part of a bivector register.
func (q quad) dot3(r quad) float32 {
	return q[1]*r[1] + q[2]*r[2] + q[3]*r[3]
}

// flipUpper negates lanes 1-3 and leaves lane 0 untouched. This is the
// reversion sign mask shared by every even-grade operator register.
func (q quad) flipUpper() quad {
	return quad{q[0], -q[1], -q[2], -q[3]}
}

func (q quad) neg() quad {
	return quad{-q[0], -q[1], -q[2], -q[3]}
}

// float32 transcendental helpers; the stdlib only computes in float64.

func sqrt32(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }

func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }

func acos32(x float32) float32 { return float32(math.Acos(float64(x))) }

// rsqrt returns 1/sqrt(x). Unlike the rsqrtps estimate, the scalar form is
// exact to rounding; the extra latency is irrelevant off the batched path.
func rsqrt(x float32) float32 { return 1 / sqrt32(x) }

// rcp returns 1/x. A zero argument yields an IEEE infinity, not a fault.
func rcp(x float32) float32 { return 1 / x }
