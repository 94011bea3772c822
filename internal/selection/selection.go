// Package selection resolves a clicked piece and face normal into the set of
// face turns that piece can take part in.
package selection

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/gocube_sim/internal/cube"
	"github.com/SeamusWaldron/gocube_sim/internal/geom"
)

// ErrAnimating is returned for clicks made while a move is in flight.
var ErrAnimating = errors.New("selection: cannot select while a move is animating")

// Selection is the result of a click.
type Selection struct {
	PieceID   int
	Position  geom.IVec3 // Snapped logical position at the time of the click
	Normal    geom.IVec3 // Snapped outward face normal; zero when HasNormal is false
	HasNormal bool
	Faces     []cube.Face // Faces whose turns move the piece
}

// Letters returns the legal move letters, e.g. ["R", "U", "F"].
func (s Selection) Letters() []string {
	out := make([]string, len(s.Faces))
	for i, f := range s.Faces {
		out[i] = f.Letter()
	}
	return out
}

// Face returns the clicked face, if the click carried a usable normal.
func (s Selection) Face() (cube.Face, bool) {
	if !s.HasNormal {
		return 0, false
	}
	return cube.FaceForNormal(s.Normal)
}

// Resolve maps a click on piece pieceID to a Selection. normal is the clicked
// surface normal in world space and may be nil, in which case the selection
// has no face and no affordances can be derived from it. Clicks are rejected
// with ErrAnimating while animating is true; the caller's selection should be
// left unchanged in that case.
func Resolve(state *cube.State, pieceID int, normal *mgl64.Vec3, animating bool) (Selection, error) {
	if animating {
		return Selection{}, ErrAnimating
	}

	p, err := state.Piece(pieceID)
	if err != nil {
		return Selection{}, fmt.Errorf("resolve click: %w", err)
	}

	sel := Selection{
		PieceID:  p.ID,
		Position: p.Position,
		Faces:    LegalFaces(p.Position),
	}
	if normal != nil {
		if n, ok := geom.SnapNormal(*normal); ok {
			sel.Normal = n
			sel.HasNormal = true
		}
	}
	return sel, nil
}

// LegalFaces returns the faces whose turns include a piece at p, in x, y, z
// order. Each non-zero coordinate contributes the face on that side, so a
// corner yields three faces, an edge two and a centre only its own face.
func LegalFaces(p geom.IVec3) []cube.Face {
	out := make([]cube.Face, 0, 3)
	for _, axis := range geom.Axes {
		if c := p[axis]; c != 0 {
			out = append(out, cube.FaceFor(axis, c))
		}
	}
	return out
}

// Follow updates a selection after move m was committed, so that it keeps
// tracking the same piece and sticker. It reports whether the selection
// changed.
func Follow(sel Selection, m cube.Move) (Selection, bool) {
	if !m.Affects(sel.Position) {
		return sel, false
	}
	axis, dir := m.Axis(), m.Direction()
	sel.Position = geom.RotateQuarter(sel.Position, axis, dir)
	if sel.HasNormal {
		sel.Normal = geom.RotateQuarter(sel.Normal, axis, dir)
	}
	sel.Faces = LegalFaces(sel.Position)
	return sel, true
}
