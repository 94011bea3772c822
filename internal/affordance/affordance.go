// Package affordance computes the directional cues drawn for a selected
// piece: one per move that slides the piece within the clicked face. Moves
// that carry the clicked sticker onto another face are left out.
//
// Cue positions are in cube space, where pieces sit on the integer lattice
// and a piece spans half a unit either side of its centre.
package affordance

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/gocube_sim/internal/cube"
	"github.com/SeamusWaldron/gocube_sim/internal/geom"
)

const (
	// SurfacePush moves a cue off the piece centre to just outside the
	// sticker surface.
	SurfacePush = 0.55

	// SlideOffset moves an edge or corner cue to the boundary with the
	// neighbouring piece in the direction of travel.
	SlideOffset = 0.5

	// CentreOffset moves a centre cue off the rotation axis along the face's
	// up reference so its tangent is well defined.
	CentreOffset = 0.3
)

// Cue is a clickable arrow for one legal move.
type Cue struct {
	Move      cube.Move
	Position  mgl64.Vec3 // Where to draw the arrow
	Direction mgl64.Vec3 // Unit vector the arrow points along, in the face plane
	Centre    bool       // The piece turns in place
}

// Generate returns the cues for a piece at pos clicked on the face with
// outward normal. Moves are considered in cube.AllMoves order. A normal that
// is not a signed principal axis yields no cues.
func Generate(pos geom.IVec3, normal geom.IVec3) []Cue {
	nAxis, ok := geom.AxisOf(normal)
	if !ok {
		return nil
	}

	var cues []Cue
	for _, m := range cube.AllMoves {
		if !m.Affects(pos) {
			continue
		}

		disp := Displacement(m, pos)
		if disp.IsZero() {
			if c, ok := centreCue(m, pos, normal, nAxis); ok {
				cues = append(cues, c)
			}
			continue
		}

		// Moves that carry the sticker off the clicked face get no cue.
		if disp[nAxis] != 0 {
			continue
		}
		dir, ok := SlideDirection(pos, disp, nAxis)
		if !ok {
			continue
		}
		cues = append(cues, Cue{
			Move: m,
			Position: pos.Vec().
				Add(normal.Vec().Mul(SurfacePush)).
				Add(dir.Vec().Mul(SlideOffset)),
			Direction: dir.Vec(),
		})
	}
	return cues
}

// Displacement returns where move m carries a piece at pos, relative to pos.
func Displacement(m cube.Move, pos geom.IVec3) geom.IVec3 {
	return geom.RotateQuarter(pos, m.Axis(), m.Direction()).Sub(pos)
}

// SlideDirection projects a displacement onto the plane perpendicular to
// nAxis and reduces it to a single cardinal direction. ok is false when
// nothing is left after projection. Generate only passes displacements that
// already lie in the plane.
//
// An in-plane displacement with two non-zero components happens for an edge
// turning about the clicked face's own axis. The axis on which the piece
// already sits at the outer layer is dropped, leaving the direction along the
// edge.
func SlideDirection(pos, disp geom.IVec3, nAxis geom.Axis) (geom.IVec3, bool) {
	proj := disp
	proj[nAxis] = 0

	switch proj.NonZero() {
	case 0:
		return geom.IVec3{}, false
	case 1:
		return unitOf(proj), true
	}

	var extreme []geom.Axis
	for _, a := range geom.Axes {
		if a != nAxis && proj[a] != 0 && abs(pos[a]) == 1 {
			extreme = append(extreme, a)
		}
	}
	if len(extreme) == 1 {
		proj[extreme[0]] = 0
		return unitOf(proj), true
	}

	// Not reachable by a quarter turn; keep the larger component so the
	// result stays deterministic.
	keep := geom.Axis(-1)
	for _, a := range geom.Axes {
		if a == nAxis || proj[a] == 0 {
			continue
		}
		if keep < 0 || abs(proj[a]) > abs(proj[keep]) {
			keep = a
		}
	}
	var out geom.IVec3
	out[keep] = proj[keep]
	return unitOf(out), true
}

// centreCue builds the single cue for a piece that turns in place. Only the
// clockwise variant gets a cue, and only when the turn is about the clicked
// face's axis.
func centreCue(m cube.Move, pos, normal geom.IVec3, nAxis geom.Axis) (Cue, bool) {
	if m.Prime() || m.Axis() != nAxis {
		return Cue{}, false
	}

	up := UpReference(nAxis)
	omega := m.Axis().Vec().Mul(float64(m.Direction()))
	dir := omega.Cross(up)
	if dir.Len() < 1e-9 {
		return Cue{}, false
	}

	return Cue{
		Move: m,
		Position: pos.Vec().
			Add(up.Mul(CentreOffset)).
			Add(normal.Vec().Mul(SurfacePush)),
		Direction: dir.Normalize(),
		Centre:    true,
	}, true
}

// UpReference returns the in-plane "up" vector used to place centre cues on
// a face perpendicular to nAxis: +y for the side faces and +z for the top and
// bottom, where +y would be parallel to the normal.
func UpReference(nAxis geom.Axis) mgl64.Vec3 {
	if nAxis == geom.Y {
		return geom.Z.Vec()
	}
	return geom.Y.Vec()
}

// ScreenArrow returns an arrow glyph for a cue direction as seen on face f in
// the unfolded net described by cube.FaceletCoords.
func ScreenArrow(f cube.Face, c Cue) string {
	d := geom.Snap(c.Direction)
	origin := f.Normal()
	r0, c0 := cube.FaceletCoords(f, origin)
	r1, c1 := cube.FaceletCoords(f, origin.Add(d))
	switch {
	case r1 < r0:
		return "↑"
	case r1 > r0:
		return "↓"
	case c1 < c0:
		return "←"
	case c1 > c0:
		return "→"
	default:
		return "·"
	}
}

func unitOf(v geom.IVec3) geom.IVec3 {
	var out geom.IVec3
	for i, c := range v {
		switch {
		case c > 0:
			out[i] = 1
		case c < 0:
			out[i] = -1
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
