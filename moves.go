package gocube

import "github.com/SeamusWaldron/gocube_sim/internal/cube"

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	p.Rotate(gocube.R)
//	p.Rotate(gocube.UPrime)
var (
	R      = cube.R      // Right clockwise
	RPrime = cube.RPrime // Right counter-clockwise
	L      = cube.L      // Left clockwise
	LPrime = cube.LPrime // Left counter-clockwise
	U      = cube.U      // Up clockwise
	UPrime = cube.UPrime // Up counter-clockwise
	D      = cube.D      // Down clockwise
	DPrime = cube.DPrime // Down counter-clockwise
	F      = cube.F      // Front clockwise
	FPrime = cube.FPrime // Front counter-clockwise
	B      = cube.B      // Back clockwise
	BPrime = cube.BPrime // Back counter-clockwise
)

// AllMoves is the full move alphabet in R R' L L' U U' D D' F F' B B' order.
var AllMoves = cube.AllMoves

// SexyMove is R U R' U'. Six repetitions return a cube to its starting state.
var SexyMove = cube.SexyMove
