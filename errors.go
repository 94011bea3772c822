package gocube

import (
	"github.com/SeamusWaldron/gocube_sim/internal/cube"
	"github.com/SeamusWaldron/gocube_sim/internal/scheduler"
	"github.com/SeamusWaldron/gocube_sim/internal/selection"
)

// Sentinel errors for the gocube package. They are the same values returned by
// the internal packages, so errors.Is works on anything a Puzzle returns.
var (
	// Parsing errors
	ErrInvalidNotation = cube.ErrInvalidNotation

	// Selection errors
	ErrUnknownPiece = cube.ErrUnknownPiece
	ErrAnimating    = selection.ErrAnimating

	// Queue errors
	ErrQueueFull = scheduler.ErrQueueFull
)
