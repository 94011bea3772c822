// Package cube provides the 27-piece model of a 3x3x3 puzzle.
//
// Each piece has a logical integer position in {-1,0,1}³, an exact
// orientation and an immutable home position that decides which of its faces
// carry stickers. The only ways to change a State are CommitMove and Reset.
package cube

import (
	"fmt"
	"sort"

	"github.com/SeamusWaldron/gocube_sim/internal/geom"
)

// PieceCount is the number of pieces in a 3x3x3 puzzle, including the
// hidden core.
const PieceCount = 27

// Piece is a single sub-cube.
type Piece struct {
	ID          int           // Immutable identifier, 0..26
	Position    geom.IVec3    // Current logical position, snapped after every commit
	Orientation geom.Rotation // World-frame orientation relative to home
	Home        geom.IVec3    // Position at creation; never updated
}

// Kind classifies a piece by how many coordinates are non-zero.
type Kind int

const (
	KindCore   Kind = 0
	KindCentre Kind = 1
	KindEdge   Kind = 2
	KindCorner Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindCore:
		return "core"
	case KindCentre:
		return "centre"
	case KindEdge:
		return "edge"
	case KindCorner:
		return "corner"
	default:
		return "?"
	}
}

// KindAt returns the kind of piece that occupies position p.
func KindAt(p geom.IVec3) Kind {
	return Kind(p.NonZero())
}

// Kind returns the kind of the piece.
func (p Piece) Kind() Kind {
	return KindAt(p.Position)
}

// State is the logical model: exactly 27 pieces, one per integer triple.
// Pieces are indexed by ID.
type State struct {
	pieces [PieceCount]Piece
}

// IDFor returns the ID a piece receives when created at home position p.
func IDFor(p geom.IVec3) int {
	return (p[0]+1)*9 + (p[1]+1)*3 + (p[2] + 1)
}

// Solved creates a cube in the solved state.
func Solved() *State {
	s := &State{}
	s.reset()
	return s
}

func (s *State) reset() {
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				p := geom.V(x, y, z)
				id := IDFor(p)
				s.pieces[id] = Piece{
					ID:          id,
					Position:    p,
					Orientation: geom.Identity(),
					Home:        p,
				}
			}
		}
	}
}

// Reset discards all state and returns to the solved cube.
func (s *State) Reset() {
	s.reset()
}

// Clone creates a deep copy of the state.
func (s *State) Clone() *State {
	clone := *s
	return &clone
}

// Equal reports whether both states have every piece at the same position
// with the same orientation.
func (s *State) Equal(o *State) bool {
	return s.pieces == o.pieces
}

// IsSolved reports whether every piece is home with identity orientation.
func (s *State) IsSolved() bool {
	for _, p := range s.pieces {
		if p.Position != p.Home || !p.Orientation.IsIdentity() {
			return false
		}
	}
	return true
}

// Piece returns the piece with the given ID.
func (s *State) Piece(id int) (Piece, error) {
	if id < 0 || id >= PieceCount {
		return Piece{}, fmt.Errorf("%w: %d", ErrUnknownPiece, id)
	}
	return s.pieces[id], nil
}

// PieceAt returns the piece currently at position p.
func (s *State) PieceAt(p geom.IVec3) (Piece, bool) {
	for _, pc := range s.pieces {
		if pc.Position == p {
			return pc, true
		}
	}
	return Piece{}, false
}

// Pieces returns a copy of all pieces ordered by ID.
func (s *State) Pieces() []Piece {
	out := make([]Piece, PieceCount)
	copy(out, s.pieces[:])
	return out
}

// PiecesInLayer returns the IDs, in ascending order, of the pieces whose
// current position has coordinate layer on axis.
func (s *State) PiecesInLayer(axis geom.Axis, layer int) []int {
	ids := make([]int, 0, 9)
	for _, p := range s.pieces {
		if p.Position[axis] == layer {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// CommitMove permanently applies m to the pieces in active. Each active
// piece has its position rotated by the move's quarter turn and snapped, and
// the move's rotation premultiplied onto its orientation. Pieces not listed
// are untouched. The IDs are validated before anything is changed, so an
// error leaves the state as it was.
func (s *State) CommitMove(m Move, active []int) error {
	seen := make(map[int]bool, len(active))
	for _, id := range active {
		if id < 0 || id >= PieceCount {
			return fmt.Errorf("%w: %d", ErrUnknownPiece, id)
		}
		if seen[id] {
			return fmt.Errorf("cube: piece %d listed twice in commit of %s", id, m)
		}
		seen[id] = true
	}

	axis, dir := m.Axis(), m.Direction()
	rot := m.Rotation()
	for _, id := range active {
		p := &s.pieces[id]
		p.Position = geom.RotateQuarter(p.Position, axis, dir)
		p.Orientation = p.Orientation.Premul(rot)
	}
	return nil
}

// Apply turns the full layer of m immediately, without animation.
func (s *State) Apply(moves ...Move) {
	for _, m := range moves {
		// Layer membership is read from the state itself, so the IDs are valid.
		_ = s.CommitMove(m, s.PiecesInLayer(m.Axis(), m.Layer()))
	}
}

// Positions returns every piece's position ordered by position rather than
// ID, which is handy for checking that the positions form a permutation.
func (s *State) Positions() []geom.IVec3 {
	out := make([]geom.IVec3, PieceCount)
	for i, p := range s.pieces {
		out[i] = p.Position
	}
	sort.Slice(out, func(i, j int) bool {
		return IDFor(out[i]) < IDFor(out[j])
	})
	return out
}
