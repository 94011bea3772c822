package gocube

import (
	"github.com/SeamusWaldron/gocube_sim/internal/cube"
)

// Face identifies one of the six outer faces.
type Face = cube.Face

// Face constants.
const (
	FaceU = cube.FaceU
	FaceD = cube.FaceD
	FaceF = cube.FaceF
	FaceB = cube.FaceB
	FaceR = cube.FaceR
	FaceL = cube.FaceL
)

// Turn is the direction of a face turn as seen from outside the face.
type Turn = cube.Turn

// Turn constants.
const (
	CW  = cube.CW  // Clockwise
	CCW = cube.CCW // Counter-clockwise (prime)
)

// Move is one quarter turn of an outer layer.
type Move = cube.Move

// ParseMove parses a single move from the twelve-symbol alphabet, e.g. "R",
// "U'" or "f`". Half turns and slice moves are rejected with
// ErrInvalidNotation.
func ParseMove(s string) (Move, error) {
	return cube.ParseMove(s)
}

// ParseMoves parses a whitespace-separated sequence such as "R U R' U'".
func ParseMoves(s string) ([]Move, error) {
	return cube.ParseMoves(s)
}

// FormatMoves formats moves as space-separated notation.
func FormatMoves(moves []Move) string {
	return cube.FormatMoves(moves)
}
