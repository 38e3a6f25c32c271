/*
Package pga implements a computational kernel for 3D Projective Geometric
Algebra (Cl(3,0,1)): points, planes, lines, directions, and the rigid-motion
operators that act on them (rotors, translators, motors).

Every entity is a small value type wrapping one or two packed 4-lane float32
registers, with a fixed sparse blade pattern. The 16 basis elements of the
algebra are the scalar 1; the vectors e0, e1, e2, e3 (e0 is the ideal,
degenerate direction with e0·e0 = 0); the bivectors e01, e02, e03 (ideal,
"translational") and e23, e31, e12 (Euclidean, "rotational"); the trivectors
e021, e013, e032, e123; and the pseudoscalar e0123.

Operators transform entities through the sandwich product x·y·~x. Rigid
motions compose through the geometric product: a*b applies b first, then a.
The Exp, Log, and Sqrt maps connect the Lie algebra of screw motions
(Branch, Line) to the group of rotors and motors, which is what makes
constant-speed pose interpolation a three-line affair:

	motion := m2.Mul(m1.Reverse())
	step := motion.Log().Div(n)
	next := step.Exp().Mul(current)

The kernel is total: no operation returns an error, blocks, or allocates.
Operators used for transformation must be normalized (x.Mul-reverse norm of
one); feeding an unnormalized operator to a transform silently produces a
uniformly scaled result rather than a rigid one. Degenerate inputs (a
zero-length axis, a division by zero) produce IEEE infinities or NaNs, never
a panic. Callers that need strict validation should check
x·~x ≈ 1 themselves.

Batched transforms come in two flavors: the TransformXxx slice methods keep
the entity layout (one packed register per entity) and broadcast the
operator's derived coefficients once across the whole batch, and the Base*
kernels in the *_hwy.go files process structure-of-arrays float slices with
github.com/ajroetker/go-highway for wide-register throughput.
*/
package pga
