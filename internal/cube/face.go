package cube

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_sim/internal/geom"
)

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face identifies one of the six outer faces. The order matches the facelet
// array layout used by Facelets.
type Face int

const (
	FaceU Face = 0 // Up (+y)
	FaceD Face = 1 // Down (-y)
	FaceF Face = 2 // Front (+z)
	FaceB Face = 3 // Back (-z)
	FaceR Face = 4 // Right (+x)
	FaceL Face = 5 // Left (-x)
)

// Faces lists all faces in facelet order.
var Faces = [6]Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	default:
		return "?"
	}
}

// Letter returns the face letter used in move notation.
func (f Face) Letter() string {
	return f.String()
}

// SolvedColor returns the sticker color of the face on a solved cube.
func (f Face) SolvedColor() Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	case FaceL:
		return Orange
	default:
		panic(fmt.Sprintf("cube: invalid face %d", f))
	}
}

// Axis returns the principal axis the face is perpendicular to.
func (f Face) Axis() geom.Axis {
	switch f {
	case FaceR, FaceL:
		return geom.X
	case FaceU, FaceD:
		return geom.Y
	case FaceF, FaceB:
		return geom.Z
	default:
		panic(fmt.Sprintf("cube: invalid face %d", f))
	}
}

// Layer returns the coordinate of the face's layer on its axis (1 or -1).
func (f Face) Layer() int {
	switch f {
	case FaceR, FaceU, FaceF:
		return 1
	case FaceL, FaceD, FaceB:
		return -1
	default:
		panic(fmt.Sprintf("cube: invalid face %d", f))
	}
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() geom.IVec3 {
	return f.Axis().Unit().Scale(f.Layer())
}

// FaceFor returns the face on the given axis and side. sign must be 1 or -1.
func FaceFor(axis geom.Axis, sign int) Face {
	switch {
	case axis == geom.X && sign == 1:
		return FaceR
	case axis == geom.X && sign == -1:
		return FaceL
	case axis == geom.Y && sign == 1:
		return FaceU
	case axis == geom.Y && sign == -1:
		return FaceD
	case axis == geom.Z && sign == 1:
		return FaceF
	case axis == geom.Z && sign == -1:
		return FaceB
	default:
		panic(fmt.Sprintf("cube: no face for axis %s sign %d", axis, sign))
	}
}

// FaceForNormal returns the face whose outward normal is n.
func FaceForNormal(n geom.IVec3) (Face, bool) {
	axis, ok := geom.AxisOf(n)
	if !ok {
		return 0, false
	}
	return FaceFor(axis, n[axis]), true
}

// ParseFace parses a face letter (case-insensitive).
func ParseFace(s string) (Face, error) {
	switch s {
	case "U", "u":
		return FaceU, nil
	case "D", "d":
		return FaceD, nil
	case "F", "f":
		return FaceF, nil
	case "B", "b":
		return FaceB, nil
	case "R", "r":
		return FaceR, nil
	case "L", "l":
		return FaceL, nil
	default:
		return 0, fmt.Errorf("%w: face %q", ErrInvalidNotation, s)
	}
}

// FaceletCoords returns the row and column of the facelet showing position p
// on face f, when the face is viewed from outside in the standard net:
//
//	    U
//	L F R B
//	    D
//
// U is viewed with B at the top, D with F at the top, and the four side faces
// with U at the top.
func FaceletCoords(f Face, p geom.IVec3) (row, col int) {
	x, y, z := p[0], p[1], p[2]
	switch f {
	case FaceU:
		return z + 1, x + 1
	case FaceD:
		return 1 - z, x + 1
	case FaceF:
		return 1 - y, x + 1
	case FaceB:
		return 1 - y, 1 - x
	case FaceR:
		return 1 - y, 1 - z
	case FaceL:
		return 1 - y, z + 1
	default:
		panic(fmt.Sprintf("cube: invalid face %d", f))
	}
}

// FaceletPosition is the inverse of FaceletCoords: it returns the position of
// the piece behind facelet (row, col) of face f.
func FaceletPosition(f Face, row, col int) geom.IVec3 {
	switch f {
	case FaceU:
		return geom.V(col-1, 1, row-1)
	case FaceD:
		return geom.V(col-1, -1, 1-row)
	case FaceF:
		return geom.V(col-1, 1-row, 1)
	case FaceB:
		return geom.V(1-col, 1-row, -1)
	case FaceR:
		return geom.V(1, 1-row, 1-col)
	case FaceL:
		return geom.V(-1, 1-row, col-1)
	default:
		panic(fmt.Sprintf("cube: invalid face %d", f))
	}
}
