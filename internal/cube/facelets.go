package cube

import (
	"strings"

	"github.com/SeamusWaldron/gocube_sim/internal/geom"
)

// Sticker is one colored facelet carried by a piece.
type Sticker struct {
	PieceID int
	Color   Color
	Normal  geom.IVec3 // Current outward normal in world space
}

// Face returns the face the sticker currently shows on.
func (s Sticker) Face() Face {
	f, _ := FaceForNormal(s.Normal)
	return f
}

// Stickers returns the stickers of piece p. A piece carries one sticker per
// non-zero coordinate of its home position, colored after the face it sat on
// when solved.
func (p Piece) Stickers() []Sticker {
	out := make([]Sticker, 0, 3)
	for _, axis := range geom.Axes {
		sign := p.Home[axis]
		if sign == 0 {
			continue
		}
		home := FaceFor(axis, sign)
		out = append(out, Sticker{
			PieceID: p.ID,
			Color:   home.SolvedColor(),
			Normal:  p.Orientation.Apply(home.Normal()),
		})
	}
	return out
}

// Facelets returns the sticker colors of the six faces. Each face has 9
// facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// in the orientation described by FaceletCoords.
func (s *State) Facelets() [6][9]Color {
	var out [6][9]Color
	for _, p := range s.pieces {
		for _, st := range p.Stickers() {
			f := st.Face()
			row, col := FaceletCoords(f, p.Position)
			out[f][row*3+col] = st.Color
		}
	}
	return out
}

// StickerAt returns the piece and sticker shown at facelet (row, col) of
// face f.
func (s *State) StickerAt(f Face, row, col int) (Piece, Sticker, bool) {
	p, ok := s.PieceAt(FaceletPosition(f, row, col))
	if !ok {
		return Piece{}, Sticker{}, false
	}
	for _, st := range p.Stickers() {
		if st.Normal == f.Normal() {
			return p, st, true
		}
	}
	return Piece{}, Sticker{}, false
}

// String returns a text representation of the cube as an unfolded net.
func (s *State) String() string {
	facelets := s.Facelets()
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(facelets[FaceU][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(facelets[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(facelets[FaceD][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
