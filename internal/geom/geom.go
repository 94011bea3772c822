// Package geom provides exact quarter-turn rotations and vector snapping for
// the puzzle model.
//
// Logical positions are integer triples (IVec3). Continuous positions used
// for rendering interpolated turns are mgl64.Vec3 values. Rotations about a
// principal axis are computed in closed form from sine and cosine rather than
// through a general matrix product.
package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// QuarterTurn is the angle of a single face turn.
const QuarterTurn = math.Pi / 2

// Axis identifies one of the three principal axes.
type Axis int

const (
	X Axis = 0
	Y Axis = 1
	Z Axis = 2
)

// Axes lists the principal axes in index order.
var Axes = [3]Axis{X, Y, Z}

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return "?"
	}
}

// Unit returns the positive unit vector along the axis.
func (a Axis) Unit() IVec3 {
	var v IVec3
	v[a] = 1
	return v
}

// Vec returns the positive unit vector along the axis as a float vector.
func (a Axis) Vec() mgl64.Vec3 {
	return a.Unit().Vec()
}

// IVec3 is an integer 3-vector. Logical piece positions and snapped face
// normals use this type.
type IVec3 [3]int

// V returns an IVec3 from components.
func V(x, y, z int) IVec3 {
	return IVec3{x, y, z}
}

// Vec converts to a float vector.
func (v IVec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Add returns v + o.
func (v IVec3) Add(o IVec3) IVec3 {
	return IVec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v IVec3) Sub(o IVec3) IVec3 {
	return IVec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns v * k.
func (v IVec3) Scale(k int) IVec3 {
	return IVec3{v[0] * k, v[1] * k, v[2] * k}
}

// IsZero reports whether all components are zero.
func (v IVec3) IsZero() bool {
	return v == IVec3{}
}

// NonZero returns the number of non-zero components.
func (v IVec3) NonZero() int {
	n := 0
	for _, c := range v {
		if c != 0 {
			n++
		}
	}
	return n
}

// InRange reports whether every component is -1, 0 or 1.
func (v IVec3) InRange() bool {
	for _, c := range v {
		if c < -1 || c > 1 {
			return false
		}
	}
	return true
}

func (v IVec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v[0], v[1], v[2])
}

// RotateAngle rotates v by angle radians about the given principal axis using
// the right-hand rule.
func RotateAngle(v mgl64.Vec3, axis Axis, angle float64) mgl64.Vec3 {
	s, c := math.Sincos(angle)
	x, y, z := v[0], v[1], v[2]
	switch axis {
	case X:
		return mgl64.Vec3{x, y*c - z*s, y*s + z*c}
	case Y:
		return mgl64.Vec3{x*c + z*s, y, -x*s + z*c}
	case Z:
		return mgl64.Vec3{x*c - y*s, x*s + y*c, z}
	default:
		panic(fmt.Sprintf("geom: invalid axis %d", axis))
	}
}

// RotateQuarter rotates v by dir quarter turns about axis and snaps the result
// back onto the integer lattice.
func RotateQuarter(v IVec3, axis Axis, dir int) IVec3 {
	return Snap(RotateAngle(v.Vec(), axis, float64(dir)*QuarterTurn))
}

// Snap rounds each component to the nearest integer.
func Snap(v mgl64.Vec3) IVec3 {
	return IVec3{
		int(math.Round(v[0])),
		int(math.Round(v[1])),
		int(math.Round(v[2])),
	}
}

// SnapNormal reduces a surface normal to the nearest signed principal axis.
// The component with the greatest magnitude wins and the others are zeroed.
// Ties resolve toward the lower axis index. ok is false for a zero vector or
// one containing NaN.
func SnapNormal(n mgl64.Vec3) (IVec3, bool) {
	best := -1
	mag := 0.0
	for i, c := range n {
		if math.IsNaN(c) {
			return IVec3{}, false
		}
		if a := math.Abs(c); a > mag {
			best, mag = i, a
		}
	}
	if best < 0 {
		return IVec3{}, false
	}
	var out IVec3
	if n[best] > 0 {
		out[best] = 1
	} else {
		out[best] = -1
	}
	return out, true
}

// AxisOf returns the axis of a snapped normal (exactly one non-zero component).
func AxisOf(n IVec3) (Axis, bool) {
	if n.NonZero() != 1 {
		return 0, false
	}
	for _, a := range Axes {
		if n[a] != 0 {
			return a, true
		}
	}
	return 0, false
}
