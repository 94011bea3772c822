package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is an exact rotation matrix whose entries are -1, 0 or 1.
// Every orientation a piece can reach by face turns is one of the 24
// rotations of the cube, so the committed orientation never drifts.
//
// Rows are indexed first: r[row][col].
type Rotation [3][3]int

// Identity returns the identity rotation.
func Identity() Rotation {
	return Rotation{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Quarter returns the rotation by dir quarter turns about axis, dir in
// {-1, 1} (other values are reduced modulo 4).
func Quarter(axis Axis, dir int) Rotation {
	q := ((dir % 4) + 4) % 4
	r := Identity()
	for i := 0; i < q; i++ {
		r = quarterPositive(axis).Mul(r)
	}
	return r
}

func quarterPositive(axis Axis) Rotation {
	// cos = 0, sin = 1
	switch axis {
	case X:
		return Rotation{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}
	case Y:
		return Rotation{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}
	case Z:
		return Rotation{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	default:
		panic(fmt.Sprintf("geom: invalid axis %d", axis))
	}
}

// Mul returns r·o (o is applied first).
func (r Rotation) Mul(o Rotation) Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0
			for k := 0; k < 3; k++ {
				sum += r[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Premul composes a world-frame rotation q onto r, returning q·r.
// This is the order used when a face turn is committed to a piece.
func (r Rotation) Premul(q Rotation) Rotation {
	return q.Mul(r)
}

// Apply rotates v.
func (r Rotation) Apply(v IVec3) IVec3 {
	var out IVec3
	for i := 0; i < 3; i++ {
		out[i] = r[i][0]*v[0] + r[i][1]*v[1] + r[i][2]*v[2]
	}
	return out
}

// IsIdentity reports whether r is the identity.
func (r Rotation) IsIdentity() bool {
	return r == Identity()
}

// Mat3 converts r to a float matrix.
func (r Rotation) Mat3() mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		IVec3(r[0]).Vec(),
		IVec3(r[1]).Vec(),
		IVec3(r[2]).Vec(),
	)
}

// Quat converts r to a unit quaternion for rendering.
func (r Rotation) Quat() mgl64.Quat {
	m := r.Mat3()
	// mgl64 matrices are column-major.
	return mgl64.Mat4ToQuat(mgl64.Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}).Normalize()
}

// Interpolate returns the orientation of r after an additional in-progress
// rotation of angle radians about axis, premultiplied in the world frame.
func (r Rotation) Interpolate(axis Axis, angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, axis.Vec()).Mul(r.Quat())
}
