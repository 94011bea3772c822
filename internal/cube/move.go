package cube

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/gocube_sim/internal/geom"
)

// Turn represents the direction of a face turn.
type Turn int

const (
	CW  Turn = 1  // Clockwise (90 degrees), viewed from outside the face
	CCW Turn = -1 // Counter-clockwise (90 degrees)
)

// Move is one of the twelve quarter turns: a face and a direction.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', U, U'
func (m Move) Notation() string {
	if m.Turn == CCW {
		return m.Face.Letter() + "'"
	}
	return m.Face.Letter()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Prime reports whether this is the counter-clockwise variant.
func (m Move) Prime() bool {
	return m.Turn == CCW
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R.
func (m Move) Inverse() Move {
	m.Turn = -m.Turn
	return m
}

// Axis returns the axis the move turns about.
func (m Move) Axis() geom.Axis {
	m.mustValid()
	return m.Face.Axis()
}

// Layer returns the coordinate (1 or -1) of the turned layer on Axis.
func (m Move) Layer() int {
	m.mustValid()
	return m.Face.Layer()
}

// Direction returns the signed number of quarter turns about the positive
// Axis (right-hand rule). A clockwise turn seen from outside a face is a
// negative rotation about that face's outward normal, so R is -1 and L is +1.
func (m Move) Direction() int {
	m.mustValid()
	return -m.Face.Layer() * int(m.Turn)
}

// Angle returns the signed target angle of the move in radians.
func (m Move) Angle() float64 {
	return float64(m.Direction()) * geom.QuarterTurn
}

// Rotation returns the exact rotation the move applies to its layer.
func (m Move) Rotation() geom.Rotation {
	return geom.Quarter(m.Axis(), m.Direction())
}

// Affects reports whether a piece at p is in the layer this move turns.
func (m Move) Affects(p geom.IVec3) bool {
	return p[m.Axis()] == m.Layer()
}

// Valid reports whether m is one of the twelve moves.
func (m Move) Valid() bool {
	if m.Face < FaceU || m.Face > FaceL {
		return false
	}
	return m.Turn == CW || m.Turn == CCW
}

// mustValid panics on a move outside the alphabet. Such a move can only be
// built by hand and is a programming error.
func (m Move) mustValid() {
	if !m.Valid() {
		panic(fmt.Sprintf("cube: unmapped move {face:%d turn:%d}", m.Face, m.Turn))
	}
}

// ParseMove parses a standard notation string into a Move.
// Accepted: a face letter (case-insensitive) optionally followed by ' or `.
// Returns ErrInvalidNotation for anything else, including half turns.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	face, err := ParseFace(s[:1])
	if err != nil {
		return Move{}, err
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Unlike a lenient parser, the first invalid token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
