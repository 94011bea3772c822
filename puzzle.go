package gocube

import (
	"errors"
	"io"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/gocube_sim/internal/affordance"
	"github.com/SeamusWaldron/gocube_sim/internal/cube"
	"github.com/SeamusWaldron/gocube_sim/internal/scheduler"
	"github.com/SeamusWaldron/gocube_sim/internal/selection"
)

// ErrDrainLimit is returned by Drain when moves were still running after the
// tick limit.
var ErrDrainLimit = scheduler.ErrDrainLimit

// Puzzle is a virtual 3x3x3 cube with animated face turns.
// It owns the cube state, the move queue and the current selection, and
// provides a callback-based API in the same shape for every host.
//
// Create a Puzzle with New and drive it from the host's frame loop:
//
//	p := gocube.New()
//	p.OnMove(func(m gocube.Move) {
//	    fmt.Println("Move:", m.Notation())
//	})
//
//	p.Rotate(gocube.R)
//	for {
//	    p.Tick()
//	    draw(p.Transforms())
//	}
//
// All methods are safe for concurrent use. Callbacks run on the goroutine
// calling Tick, after the Puzzle's lock has been released.
type Puzzle struct {
	mu        sync.Mutex
	sched     *scheduler.Scheduler
	selection *selection.Selection
	committed []Move

	session string
	log     logrus.FieldLogger

	// Callbacks
	onMove   func(Move)
	onSolved func()
}

// New creates a solved Puzzle.
func New(opts ...Option) *Puzzle {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	base := cfg.logger
	if base == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		base = l
	}

	p := &Puzzle{session: uuid.NewString()}
	p.log = base.WithField("session", p.session)
	p.sched = scheduler.New(cube.Solved(), scheduler.Options{
		Step:           cfg.step,
		BurstThreshold: cfg.burstThreshold,
		BurstFactor:    cfg.burstFactor,
		QueueLimit:     cfg.queueLimit,
		Rand:           cfg.rng,
		Logger:         p.log,
		OnCommit:       p.handleCommit,
	})
	p.log.Debug("puzzle created")
	return p
}

// Session returns the identifier attached to every log entry of this Puzzle.
func (p *Puzzle) Session() string {
	return p.session
}

// Event callbacks

// OnMove sets a callback that fires after each move is committed.
func (p *Puzzle) OnMove(cb func(Move)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onMove = cb
}

// OnSolved sets a callback that fires when a committed move leaves the cube
// solved.
func (p *Puzzle) OnSolved(cb func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onSolved = cb
}

// Moves

// Rotate queues a move. It returns ErrQueueFull if the queue is at its limit.
func (p *Puzzle) Rotate(m Move) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sched.Enqueue(m)
}

// RotateNotation parses and queues a move sequence such as "R U R' U'".
// Nothing is queued if any token is invalid or the sequence does not fit.
func (p *Puzzle) RotateNotation(s string) error {
	moves, err := cube.ParseMoves(s)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sched.EnqueueAll(moves)
}

// Scramble queues 25 random moves and clears the selection. A move already in
// flight finishes first.
func (p *Puzzle) Scramble() ([]Move, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	moves, err := p.sched.Scramble()
	if err != nil {
		return nil, err
	}
	p.selection = nil
	return moves, nil
}

// Reset abandons the queued moves and the move in flight, returns the cube to
// solved and clears the selection. No callbacks fire.
func (p *Puzzle) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sched.Reset()
	p.selection = nil
	p.committed = nil
}

// Frame loop

// Tick advances the animation by one frame, committing the move in flight
// when it completes and starting the next queued one.
func (p *Puzzle) Tick() {
	p.mu.Lock()
	p.sched.Tick()
	committed := p.committed
	p.committed = nil
	solved := len(committed) > 0 && p.sched.State().IsSolved()
	moveCallback := p.onMove
	solvedCallback := p.onSolved
	p.mu.Unlock()

	// Fire callbacks outside the lock
	if moveCallback != nil {
		for _, m := range committed {
			moveCallback(m)
		}
	}
	if solved && solvedCallback != nil {
		solvedCallback()
	}
}

// Drain ticks until no move is queued or running, for hosts without a frame
// loop. It gives up with ErrDrainLimit after maxTicks ticks and returns the
// number of ticks used.
func (p *Puzzle) Drain(maxTicks int) (int, error) {
	n := 0
	for p.Busy() {
		if n >= maxTicks {
			return n, ErrDrainLimit
		}
		p.Tick()
		n++
	}
	return n, nil
}

// handleCommit runs inside Tick with p.mu held.
func (p *Puzzle) handleCommit(m Move) {
	p.committed = append(p.committed, m)
	if p.selection == nil {
		return
	}
	if sel, ok := selection.Follow(*p.selection, m); ok {
		p.selection = &sel
	}
}

// Selection

// Click selects the piece with the given id. normal is the outward normal of
// the clicked surface in world space; it may be nil or imprecise and is
// snapped to the nearest face. While a move is animating the click is
// rejected with ErrAnimating and the selection is left unchanged.
func (p *Puzzle) Click(pieceID int, normal *mgl64.Vec3) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	sel, err := selection.Resolve(p.sched.State(), pieceID, normal, p.sched.Animating())
	if err != nil {
		entry := p.log.WithField("piece", pieceID).WithError(err)
		if errors.Is(err, ErrAnimating) {
			entry.Debug("click ignored")
		} else {
			entry.Warn("click rejected")
		}
		return err
	}

	p.selection = &sel
	p.log.WithFields(logrus.Fields{
		"piece":    sel.PieceID,
		"position": sel.Position.String(),
		"moves":    sel.Letters(),
	}).Debug("piece selected")
	return nil
}

// ClearSelection drops the selection, as for a click on the background.
func (p *Puzzle) ClearSelection() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selection = nil
}

// Selection returns the current selection.
func (p *Puzzle) Selection() (Selection, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selection == nil {
		return Selection{}, false
	}
	sel := *p.selection
	sel.Faces = append([]Face(nil), p.selection.Faces...)
	return sel, true
}

// LegalMoves returns the face letters that turn the selected piece, in x, y,
// z order, or nil without a selection.
func (p *Puzzle) LegalMoves() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selection == nil {
		return nil
	}
	return p.selection.Letters()
}

// Affordances returns the cues for the selected piece and clicked face, or
// nil when nothing is selected or the click carried no usable normal.
func (p *Puzzle) Affordances() []Cue {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selection == nil || !p.selection.HasNormal {
		return nil
	}
	return affordance.Generate(p.selection.Position, p.selection.Normal)
}

// State access

// State returns a copy of the committed cube state.
func (p *Puzzle) State() *State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sched.State().Clone()
}

// IsSolved returns true if the committed state is solved. A move in flight is
// not counted until it commits.
func (p *Puzzle) IsSolved() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sched.State().IsSolved()
}

// Transforms returns the render transform of every piece for the current
// frame, ordered by piece id.
func (p *Puzzle) Transforms() []Transform {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sched.Transforms()
}

// Animating reports whether a move is in flight.
func (p *Puzzle) Animating() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sched.Animating()
}

// Active returns the move in flight.
func (p *Puzzle) Active() (Animation, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sched.Active()
}

// Pending returns the number of queued moves, excluding the one in flight.
func (p *Puzzle) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sched.Pending()
}

// Busy reports whether a move is queued or in flight.
func (p *Puzzle) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sched.Busy()
}
