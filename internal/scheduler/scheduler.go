// Package scheduler sequences queued moves and animates them one frame at a
// time.
//
// The Scheduler is a two-state machine. While Idle it waits for the queue to
// hold a move. On the next Tick it pops the head, captures the pieces in the
// move's layer and becomes Animating. Each further Tick advances the turn by a
// fixed angular step; once a quarter turn is reached the move is committed to
// the cube state with the exact target angle and the scheduler returns to
// Idle, starting the next queued move on the same Tick.
//
// Tick, Reset and Transforms belong to the frame loop. Enqueue, EnqueueAll and
// Scramble only touch the queue and may be called from any goroutine; their
// moves take effect on a later Tick.
package scheduler

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/gocube_sim/internal/cube"
	"github.com/SeamusWaldron/gocube_sim/internal/geom"
)

const (
	// DefaultStep turns a layer in 12 frames, about 0.2s at 60 fps.
	DefaultStep = geom.QuarterTurn / 12

	// DefaultBurstThreshold is the queue depth above which turns speed up.
	DefaultBurstThreshold = 3

	// DefaultBurstFactor multiplies the step while in burst mode.
	DefaultBurstFactor = 3.0

	// ScrambleLength is the number of random moves Scramble enqueues.
	ScrambleLength = 25

	// targetEpsilon absorbs rounding when summing steps up to a quarter turn.
	targetEpsilon = 1e-9
)

// ErrDrainLimit is returned by Drain when the queue did not empty in time.
var ErrDrainLimit = errors.New("scheduler: drain tick limit reached")

// Phase is the scheduler state.
type Phase int

const (
	Idle      Phase = 0
	Animating Phase = 1
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	default:
		return "unknown"
	}
}

// Animation describes the move in flight.
type Animation struct {
	Move      cube.Move
	Axis      geom.Axis
	Layer     int
	Direction int     // Signed quarter turns about +Axis
	Progress  float64 // Unsigned angle turned so far, in [0, π/2)
	Active    []int   // Piece IDs captured when the move began
}

// Angle returns the signed angle turned so far.
func (a Animation) Angle() float64 {
	return float64(a.Direction) * a.Progress
}

// Fraction returns progress as a fraction of a quarter turn.
func (a Animation) Fraction() float64 {
	return a.Progress / geom.QuarterTurn
}

// Transform is the render transform of one piece for the current frame.
type Transform struct {
	PieceID     int
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// Options configures a Scheduler. Zero values select the defaults.
type Options struct {
	Step           float64
	BurstThreshold int
	BurstFactor    float64
	QueueLimit     int
	Rand           *rand.Rand
	Logger         logrus.FieldLogger
	OnCommit       func(cube.Move) // Called on the frame loop after each commit
}

// Scheduler owns the move queue and the animation state machine.
type Scheduler struct {
	state *cube.State
	queue *Queue

	active    *Animation
	activeSet map[int]bool

	step           float64
	burstThreshold int
	burstFactor    float64

	rngMu sync.Mutex
	rng   *rand.Rand

	log      logrus.FieldLogger
	onCommit func(cube.Move)
}

// New creates a scheduler driving state.
func New(state *cube.State, opts Options) *Scheduler {
	s := &Scheduler{
		state:          state,
		queue:          NewQueue(opts.QueueLimit),
		step:           opts.Step,
		burstThreshold: opts.BurstThreshold,
		burstFactor:    opts.BurstFactor,
		rng:            opts.Rand,
		log:            opts.Logger,
		onCommit:       opts.OnCommit,
	}
	if s.step <= 0 {
		s.step = DefaultStep
	}
	if s.burstThreshold <= 0 {
		s.burstThreshold = DefaultBurstThreshold
	}
	if s.burstFactor < 1 {
		s.burstFactor = DefaultBurstFactor
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}
	return s
}

// State returns the cube state. Callers must treat it as read-only.
func (s *Scheduler) State() *cube.State {
	return s.state
}

// Queue returns the pending move queue.
func (s *Scheduler) Queue() *Queue {
	return s.queue
}

// Enqueue adds one move to the queue.
func (s *Scheduler) Enqueue(m cube.Move) error {
	if !m.Valid() {
		panic(fmt.Sprintf("scheduler: enqueue of unmapped move {face:%d turn:%d}", m.Face, m.Turn))
	}
	if err := s.queue.Enqueue(m); err != nil {
		s.log.WithField("move", m.Notation()).Warn("move dropped, queue full")
		return err
	}
	s.log.WithField("move", m.Notation()).Debug("move queued")
	return nil
}

// EnqueueAll adds moves in order, all or nothing.
func (s *Scheduler) EnqueueAll(moves []cube.Move) error {
	for _, m := range moves {
		if !m.Valid() {
			panic(fmt.Sprintf("scheduler: enqueue of unmapped move {face:%d turn:%d}", m.Face, m.Turn))
		}
	}
	if err := s.queue.EnqueueAll(moves); err != nil {
		s.log.WithField("count", len(moves)).Warn("move sequence dropped, queue full")
		return err
	}
	s.log.WithField("moves", cube.FormatMoves(moves)).Debug("moves queued")
	return nil
}

// Scramble enqueues ScrambleLength moves drawn uniformly, with replacement,
// from the twelve-move alphabet. It does not wait for or disturb a move in
// flight. If the queue cannot hold all of them none are enqueued.
func (s *Scheduler) Scramble() ([]cube.Move, error) {
	moves := make([]cube.Move, ScrambleLength)
	s.rngMu.Lock()
	for i := range moves {
		moves[i] = cube.AllMoves[s.rng.Intn(len(cube.AllMoves))]
	}
	s.rngMu.Unlock()

	if err := s.queue.EnqueueAll(moves); err != nil {
		s.log.Warn("scramble dropped, queue full")
		return nil, err
	}
	s.log.WithField("moves", cube.FormatMoves(moves)).Info("scramble queued")
	return moves, nil
}

// Reset clears the queue and any move in flight without applying it, and
// returns the cube to the solved state.
func (s *Scheduler) Reset() {
	s.queue.Clear()
	s.active = nil
	s.activeSet = nil
	s.state.Reset()
	s.log.Info("cube reset")
}

// Phase returns the current state of the machine.
func (s *Scheduler) Phase() Phase {
	if s.active != nil {
		return Animating
	}
	return Idle
}

// Animating reports whether a move is in flight.
func (s *Scheduler) Animating() bool {
	return s.active != nil
}

// Active returns a copy of the move in flight.
func (s *Scheduler) Active() (Animation, bool) {
	if s.active == nil {
		return Animation{}, false
	}
	a := *s.active
	a.Active = append([]int(nil), s.active.Active...)
	return a, true
}

// Pending returns the number of queued moves, excluding the one in flight.
func (s *Scheduler) Pending() int {
	return s.queue.Size()
}

// Busy reports whether a move is in flight or queued.
func (s *Scheduler) Busy() bool {
	return s.active != nil || s.queue.Size() > 0
}

// CurrentStep returns the angular step the next Tick will apply.
func (s *Scheduler) CurrentStep() float64 {
	if s.queue.Size() > s.burstThreshold {
		return s.step * s.burstFactor
	}
	return s.step
}

// Tick advances the state machine by one frame.
func (s *Scheduler) Tick() {
	if s.active == nil {
		s.begin()
		return
	}

	s.active.Progress += s.CurrentStep()
	if s.active.Progress+targetEpsilon < geom.QuarterTurn {
		return
	}

	s.commit()
	s.begin()
}

func (s *Scheduler) begin() {
	m, ok := s.queue.Dequeue()
	if !ok {
		return
	}

	axis, layer := m.Axis(), m.Layer()
	ids := s.state.PiecesInLayer(axis, layer)
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	s.active = &Animation{
		Move:      m,
		Axis:      axis,
		Layer:     layer,
		Direction: m.Direction(),
		Active:    ids,
	}
	s.activeSet = set
	s.log.WithField("move", m.Notation()).Debug("move started")
}

func (s *Scheduler) commit() {
	a := s.active
	if err := s.state.CommitMove(a.Move, a.Active); err != nil {
		// The active set was read from the state itself.
		panic(fmt.Sprintf("scheduler: commit %s: %v", a.Move, err))
	}
	s.active = nil
	s.activeSet = nil

	s.log.WithField("move", a.Move.Notation()).Debug("move committed")
	if s.onCommit != nil {
		s.onCommit(a.Move)
	}
}

// Transforms returns the render transform of every piece, ordered by ID.
// Pieces in the turning layer are rotated by the current signed angle from
// their committed position and orientation; positions are not snapped.
func (s *Scheduler) Transforms() []Transform {
	pieces := s.state.Pieces()
	out := make([]Transform, len(pieces))
	for i, p := range pieces {
		if s.active != nil && s.activeSet[p.ID] {
			angle := s.active.Angle()
			out[i] = Transform{
				PieceID:     p.ID,
				Position:    geom.RotateAngle(p.Position.Vec(), s.active.Axis, angle),
				Orientation: p.Orientation.Interpolate(s.active.Axis, angle),
			}
			continue
		}
		out[i] = Transform{
			PieceID:     p.ID,
			Position:    p.Position.Vec(),
			Orientation: p.Orientation.Quat(),
		}
	}
	return out
}

// Drain ticks until no move is queued or in flight, up to maxTicks. It
// returns the number of ticks used.
func (s *Scheduler) Drain(maxTicks int) (int, error) {
	n := 0
	for s.Busy() {
		if n >= maxTicks {
			return n, ErrDrainLimit
		}
		s.Tick()
		n++
	}
	return n, nil
}
