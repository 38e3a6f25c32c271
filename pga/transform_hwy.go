package pga

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Batch rigid transforms (Structure of Arrays)
// Applying one motor to a large set of points or planes is the throughput
// path of the kernel. The packed per-entity layout caps the useful vector
// width at four lanes; de-interleaving the coordinates into separate X, Y,
// Z slices lets the full register width work on independent entities
// instead.

// BaseMotorPointsBatch applies a normalized motor's affine action to a set
// of Euclidean (unit weight) points in SoA layout. The twelve coefficients
// are the motor's 3x4 column-major matrix, as produced by Motor.Mat3x4:
//
//	ox = m00*x + m01*y + m02*z + tx
//	oy = m10*x + m11*y + m12*z + ty
//	oz = m20*x + m21*y + m22*z + tz
func BaseMotorPointsBatch[T hwy.Floats](
	m00, m01, m02, tx T,
	m10, m11, m12, ty T,
	m20, m21, m22, tz T,
	xs, ys, zs []T,
	ox, oy, oz []T,
) {
	size := min(len(xs), len(ys), len(zs), len(ox), len(oy), len(oz))

	// Broadcast the matrix rows
	vM00 := hwy.Set(m00)
	vM01 := hwy.Set(m01)
	vM02 := hwy.Set(m02)
	vTx := hwy.Set(tx)
	vM10 := hwy.Set(m10)
	vM11 := hwy.Set(m11)
	vM12 := hwy.Set(m12)
	vTy := hwy.Set(ty)
	vM20 := hwy.Set(m20)
	vM21 := hwy.Set(m21)
	vM22 := hwy.Set(m22)
	vTz := hwy.Set(tz)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Load(xs[offset:])
			y := hwy.Load(ys[offset:])
			z := hwy.Load(zs[offset:])

			rx := hwy.FMA(x, vM00, vTx)
			rx = hwy.FMA(y, vM01, rx)
			rx = hwy.FMA(z, vM02, rx)

			ry := hwy.FMA(x, vM10, vTy)
			ry = hwy.FMA(y, vM11, ry)
			ry = hwy.FMA(z, vM12, ry)

			rz := hwy.FMA(x, vM20, vTz)
			rz = hwy.FMA(y, vM21, rz)
			rz = hwy.FMA(z, vM22, rz)

			hwy.Store(rx, ox[offset:])
			hwy.Store(ry, oy[offset:])
			hwy.Store(rz, oz[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.MaskLoad(mask, xs[offset:])
			y := hwy.MaskLoad(mask, ys[offset:])
			z := hwy.MaskLoad(mask, zs[offset:])

			rx := hwy.FMA(x, vM00, vTx)
			rx = hwy.FMA(y, vM01, rx)
			rx = hwy.FMA(z, vM02, rx)

			ry := hwy.FMA(x, vM10, vTy)
			ry = hwy.FMA(y, vM11, ry)
			ry = hwy.FMA(z, vM12, ry)

			rz := hwy.FMA(x, vM20, vTz)
			rz = hwy.FMA(y, vM21, rz)
			rz = hwy.FMA(z, vM22, rz)

			hwy.MaskStore(mask, rx, ox[offset:])
			hwy.MaskStore(mask, ry, oy[offset:])
			hwy.MaskStore(mask, rz, oz[offset:])
		},
	)
}

// BaseMotorPlanesBatch applies a normalized motor to a set of planes in SoA
// layout. Normals take the same 3x3 block as points; the offset picks up
// the ideal coupling against the incoming normal instead of a fixed
// translation column:
//
//	od = d + k0*nx + k1*ny + k2*nz
func BaseMotorPlanesBatch[T hwy.Floats](
	m00, m01, m02 T,
	m10, m11, m12 T,
	m20, m21, m22 T,
	k0, k1, k2 T,
	nxs, nys, nzs, ds []T,
	onx, ony, onz, od []T,
) {
	size := min(len(nxs), len(nys), len(nzs), len(ds),
		len(onx), len(ony), len(onz), len(od))

	vM00 := hwy.Set(m00)
	vM01 := hwy.Set(m01)
	vM02 := hwy.Set(m02)
	vM10 := hwy.Set(m10)
	vM11 := hwy.Set(m11)
	vM12 := hwy.Set(m12)
	vM20 := hwy.Set(m20)
	vM21 := hwy.Set(m21)
	vM22 := hwy.Set(m22)
	vK0 := hwy.Set(k0)
	vK1 := hwy.Set(k1)
	vK2 := hwy.Set(k2)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			nx := hwy.Load(nxs[offset:])
			ny := hwy.Load(nys[offset:])
			nz := hwy.Load(nzs[offset:])
			d := hwy.Load(ds[offset:])

			rx := hwy.Mul(nx, vM00)
			rx = hwy.FMA(ny, vM01, rx)
			rx = hwy.FMA(nz, vM02, rx)

			ry := hwy.Mul(nx, vM10)
			ry = hwy.FMA(ny, vM11, ry)
			ry = hwy.FMA(nz, vM12, ry)

			rz := hwy.Mul(nx, vM20)
			rz = hwy.FMA(ny, vM21, rz)
			rz = hwy.FMA(nz, vM22, rz)

			rd := hwy.FMA(nx, vK0, d)
			rd = hwy.FMA(ny, vK1, rd)
			rd = hwy.FMA(nz, vK2, rd)

			hwy.Store(rx, onx[offset:])
			hwy.Store(ry, ony[offset:])
			hwy.Store(rz, onz[offset:])
			hwy.Store(rd, od[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			nx := hwy.MaskLoad(mask, nxs[offset:])
			ny := hwy.MaskLoad(mask, nys[offset:])
			nz := hwy.MaskLoad(mask, nzs[offset:])
			d := hwy.MaskLoad(mask, ds[offset:])

			rx := hwy.Mul(nx, vM00)
			rx = hwy.FMA(ny, vM01, rx)
			rx = hwy.FMA(nz, vM02, rx)

			ry := hwy.Mul(nx, vM10)
			ry = hwy.FMA(ny, vM11, ry)
			ry = hwy.FMA(nz, vM12, ry)

			rz := hwy.Mul(nx, vM20)
			rz = hwy.FMA(ny, vM21, rz)
			rz = hwy.FMA(nz, vM22, rz)

			rd := hwy.FMA(nx, vK0, d)
			rd = hwy.FMA(ny, vK1, rd)
			rd = hwy.FMA(nz, vK2, rd)

			hwy.MaskStore(mask, rx, onx[offset:])
			hwy.MaskStore(mask, ry, ony[offset:])
			hwy.MaskStore(mask, rz, onz[offset:])
			hwy.MaskStore(mask, rd, od[offset:])
		},
	)
}

// BaseNormalizeRotorsBatch normalizes a set of rotors in SoA layout so each
// satisfies r·~r = 1, in place. Useful after accumulating blended or
// integrated rotor components lane by lane.
func BaseNormalizeRotorsBatch[T hwy.Floats](as, bs, cs, ds []T) {
	size := min(len(as), len(bs), len(cs), len(ds))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			a := hwy.Load(as[offset:])
			b := hwy.Load(bs[offset:])
			c := hwy.Load(cs[offset:])
			d := hwy.Load(ds[offset:])

			n2 := hwy.Mul(a, a)
			n2 = hwy.FMA(b, b, n2)
			n2 = hwy.FMA(c, c, n2)
			n2 = hwy.FMA(d, d, n2)
			n := hwy.Sqrt(n2)

			hwy.Store(hwy.Div(a, n), as[offset:])
			hwy.Store(hwy.Div(b, n), bs[offset:])
			hwy.Store(hwy.Div(c, n), cs[offset:])
			hwy.Store(hwy.Div(d, n), ds[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			a := hwy.MaskLoad(mask, as[offset:])
			b := hwy.MaskLoad(mask, bs[offset:])
			c := hwy.MaskLoad(mask, cs[offset:])
			d := hwy.MaskLoad(mask, ds[offset:])

			n2 := hwy.Mul(a, a)
			n2 = hwy.FMA(b, b, n2)
			n2 = hwy.FMA(c, c, n2)
			n2 = hwy.FMA(d, d, n2)
			// Masked-off lanes load as zero; keep the divisor finite there.
			one := hwy.Set(T(1))
			n := hwy.IfThenElse(mask, hwy.Sqrt(n2), one)

			hwy.MaskStore(mask, hwy.Div(a, n), as[offset:])
			hwy.MaskStore(mask, hwy.Div(b, n), bs[offset:])
			hwy.MaskStore(mask, hwy.Div(c, n), cs[offset:])
			hwy.MaskStore(mask, hwy.Div(d, n), ds[offset:])
		},
	)
}
