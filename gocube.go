// Package gocube provides a virtual 3x3x3 twisty puzzle with animated face
// turns, piece selection and directional move cues.
//
// # Features
//
//   - Exact logical model of the 27 pieces, free of floating point drift
//   - Frame-driven animation of queued quarter turns, with burst playback
//   - Per-piece render transforms for any frame of a turn
//   - Piece selection from a click (piece id and surface normal)
//   - Directional cues for the moves a selected piece can take
//
// # Quick Start
//
// Queue some moves and drive the animation from a frame loop:
//
//	p := gocube.New()
//	p.OnMove(func(m gocube.Move) {
//	    fmt.Println("Move:", m.Notation())
//	})
//	p.OnSolved(func() {
//	    fmt.Println("Solved!")
//	})
//
//	p.RotateNotation("R U R' U'")
//	for range time.Tick(time.Second / 60) {
//	    p.Tick()
//	    render(p.Transforms())
//	}
//
// # Selection and Cues
//
// A host that can pick pieces reports the piece id and the outward normal of
// the clicked surface. The Puzzle resolves the legal moves for that piece and
// the cues to draw on the clicked face:
//
//	n := mgl64.Vec3{1, 0, 0}
//	if err := p.Click(id, &n); err != nil {
//	    // ErrAnimating while a turn is running
//	}
//	fmt.Println(p.LegalMoves()) // [R U F] for a corner
//	for _, c := range p.Affordances() {
//	    drawArrow(c.Position, c.Direction)
//	}
//
// # Move Alphabet
//
// Only the twelve quarter turns of the outer faces are supported:
//
//	gocube.R      // Right clockwise
//	gocube.RPrime // Right counter-clockwise
//	// ... and similarly for L, U, D, F, B
//
// Clockwise is as seen looking at the face from outside the cube.
package gocube
