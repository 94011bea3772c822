package gocube

import (
	"github.com/SeamusWaldron/gocube_sim/internal/affordance"
	"github.com/SeamusWaldron/gocube_sim/internal/cube"
	"github.com/SeamusWaldron/gocube_sim/internal/scheduler"
	"github.com/SeamusWaldron/gocube_sim/internal/selection"
)

// Color represents a sticker color.
type Color = cube.Color

// State is the logical state of the 27 pieces. Values returned by a Puzzle
// are copies and may be inspected or modified freely.
type State = cube.State

// Piece is one of the 27 cubies.
type Piece = cube.Piece

// Transform is the render transform of one piece for the current frame.
type Transform = scheduler.Transform

// Animation describes the move in flight.
type Animation = scheduler.Animation

// Selection is the currently selected piece and clicked face.
type Selection = selection.Selection

// Cue is a directional affordance for one legal move of the selected piece.
type Cue = affordance.Cue

// NewState returns a solved cube state, independent of any Puzzle.
func NewState() *State {
	return cube.Solved()
}
