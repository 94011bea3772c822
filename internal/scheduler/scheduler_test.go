package scheduler

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_sim/internal/cube"
	"github.com/SeamusWaldron/gocube_sim/internal/geom"
)

// ticksPerMove is the number of advancing ticks a move needs at DefaultStep.
const ticksPerMove = 12

func newTestScheduler(t *testing.T, opts Options) *Scheduler {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(42))
	}
	return New(cube.Solved(), opts)
}

func TestSchedulerStartsIdle(t *testing.T) {
	s := newTestScheduler(t, Options{})
	assert.Equal(t, Idle, s.Phase())
	assert.False(t, s.Animating())

	s.Tick()
	assert.Equal(t, Idle, s.Phase(), "empty queue keeps the scheduler idle")
}

func TestSchedulerSingleMoveLifecycle(t *testing.T) {
	s := newTestScheduler(t, Options{})
	require.NoError(t, s.Enqueue(cube.R))

	s.Tick()
	a, ok := s.Active()
	require.True(t, ok, "first tick should start the move")
	assert.Equal(t, cube.R, a.Move)
	assert.Equal(t, geom.X, a.Axis)
	assert.Equal(t, 1, a.Layer)
	assert.Equal(t, -1, a.Direction)
	assert.Zero(t, a.Progress)
	assert.Equal(t, s.State().PiecesInLayer(geom.X, 1), a.Active)
	assert.Zero(t, s.Pending())

	for i := 0; i < ticksPerMove-1; i++ {
		s.Tick()
		require.True(t, s.Animating(), "tick %d", i)
		assert.True(t, s.State().IsSolved(), "state must not change before commit")
	}

	s.Tick()
	assert.False(t, s.Animating())

	want := cube.Solved()
	want.Apply(cube.R)
	assert.True(t, want.Equal(s.State()), "committed state should equal an instant R")
}

func TestSchedulerNextMoveStartsOnCommitTick(t *testing.T) {
	s := newTestScheduler(t, Options{})
	require.NoError(t, s.EnqueueAll([]cube.Move{cube.R, cube.U}))

	for i := 0; i <= ticksPerMove; i++ {
		s.Tick()
	}

	a, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, cube.U, a.Move)
	assert.Zero(t, a.Progress)
	assert.False(t, s.State().IsSolved(), "R should be committed")
}

func TestSchedulerFourTurnsReturnToSolved(t *testing.T) {
	s := newTestScheduler(t, Options{})
	require.NoError(t, s.EnqueueAll([]cube.Move{cube.R, cube.R, cube.R, cube.R}))

	_, err := s.Drain(1000)
	require.NoError(t, err)
	assert.True(t, s.State().IsSolved())
}

func TestSchedulerResetMidAnimation(t *testing.T) {
	s := newTestScheduler(t, Options{})
	require.NoError(t, s.EnqueueAll([]cube.Move{cube.R, cube.U, cube.RPrime}))

	// Commit R and get halfway through U.
	for i := 0; i < ticksPerMove+1+ticksPerMove/2; i++ {
		s.Tick()
	}
	require.True(t, s.Animating())
	require.False(t, s.State().IsSolved())

	s.Reset()
	assert.False(t, s.Animating())
	assert.Zero(t, s.Pending())
	assert.True(t, s.State().IsSolved())

	s.Tick()
	assert.False(t, s.Animating(), "nothing left to run after reset")
	assert.True(t, s.State().IsSolved())
}

func TestSchedulerResetWhileIdle(t *testing.T) {
	s := newTestScheduler(t, Options{})
	require.NoError(t, s.Enqueue(cube.F))
	s.Reset()
	assert.Zero(t, s.Pending())
	assert.True(t, s.State().IsSolved())
}

func TestSchedulerBurstStep(t *testing.T) {
	s := newTestScheduler(t, Options{BurstThreshold: 2, BurstFactor: 4})
	assert.Equal(t, DefaultStep, s.CurrentStep())

	require.NoError(t, s.EnqueueAll([]cube.Move{cube.R, cube.L, cube.U, cube.D}))
	s.Tick() // starts R, three remain
	assert.Equal(t, 3, s.Pending())
	assert.InDelta(t, DefaultStep*4, s.CurrentStep(), 1e-12)

	s.Tick()
	a, _ := s.Active()
	assert.InDelta(t, DefaultStep*4, a.Progress, 1e-12)
}

func TestSchedulerBurstFinishesSooner(t *testing.T) {
	moves := make([]cube.Move, 20)
	for i := range moves {
		moves[i] = cube.AllMoves[i%len(cube.AllMoves)]
	}

	slow := newTestScheduler(t, Options{BurstThreshold: 1000})
	require.NoError(t, slow.EnqueueAll(moves))
	slowTicks, err := slow.Drain(10000)
	require.NoError(t, err)

	fast := newTestScheduler(t, Options{})
	require.NoError(t, fast.EnqueueAll(moves))
	fastTicks, err := fast.Drain(10000)
	require.NoError(t, err)

	assert.Less(t, fastTicks, slowTicks)
	assert.True(t, slow.State().Equal(fast.State()), "burst mode must not change the outcome")
}

func TestSchedulerCapturesActiveSetOnce(t *testing.T) {
	s := newTestScheduler(t, Options{})
	require.NoError(t, s.Enqueue(cube.U))
	s.Tick()

	before, _ := s.Active()
	for i := 0; i < ticksPerMove/2; i++ {
		s.Tick()
	}
	after, _ := s.Active()
	assert.Equal(t, before.Active, after.Active)
	assert.Len(t, after.Active, 9)
}

func TestSchedulerTransforms(t *testing.T) {
	s := newTestScheduler(t, Options{})
	require.NoError(t, s.Enqueue(cube.R))
	s.Tick()
	for i := 0; i < ticksPerMove/2; i++ {
		s.Tick()
	}

	tr := s.Transforms()
	require.Len(t, tr, cube.PieceCount)

	// Halfway through R the UFR corner sits above the R centre's edge line.
	corner := tr[cube.IDFor(geom.V(1, 1, 1))]
	want := mgl64.Vec3{1, math.Sqrt2, 0}
	assert.InDelta(t, 0, corner.Position.Sub(want).Len(), 1e-9, "got %v", corner.Position)

	wantQ := mgl64.QuatRotate(-math.Pi/4, mgl64.Vec3{1, 0, 0})
	assert.True(t, corner.Orientation.OrientationEqualThreshold(wantQ, 1e-9))

	// A piece outside the layer is untouched.
	other := tr[cube.IDFor(geom.V(-1, 1, 1))]
	assert.Equal(t, mgl64.Vec3{-1, 1, 1}, other.Position)
	assert.True(t, other.Orientation.OrientationEqualThreshold(mgl64.QuatIdent(), 1e-12))
}

func TestSchedulerTransformsIdleMatchState(t *testing.T) {
	s := newTestScheduler(t, Options{})
	require.NoError(t, s.EnqueueAll([]cube.Move{cube.F, cube.DPrime}))
	_, err := s.Drain(1000)
	require.NoError(t, err)

	for _, tr := range s.Transforms() {
		p, err := s.State().Piece(tr.PieceID)
		require.NoError(t, err)
		assert.Equal(t, p.Position.Vec(), tr.Position)
		assert.True(t, tr.Orientation.OrientationEqualThreshold(p.Orientation.Quat(), 1e-12))
	}
}

func TestSchedulerScramble(t *testing.T) {
	s := newTestScheduler(t, Options{})
	moves, err := s.Scramble()
	require.NoError(t, err)
	assert.Len(t, moves, ScrambleLength)
	assert.Equal(t, ScrambleLength, s.Pending())
	assert.Equal(t, moves, s.Queue().Pending())

	for _, m := range moves {
		assert.Contains(t, cube.AllMoves[:], m)
	}
}

func TestSchedulerScrambleKeepsMoveInFlight(t *testing.T) {
	s := newTestScheduler(t, Options{})
	require.NoError(t, s.Enqueue(cube.B))
	s.Tick()
	s.Tick()

	_, err := s.Scramble()
	require.NoError(t, err)

	a, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, cube.B, a.Move)
	assert.Equal(t, ScrambleLength, s.Pending())
}

func TestSchedulerScrambleDeterministicWithSeed(t *testing.T) {
	a := New(cube.Solved(), Options{Rand: rand.New(rand.NewSource(9))})
	b := New(cube.Solved(), Options{Rand: rand.New(rand.NewSource(9))})

	ma, err := a.Scramble()
	require.NoError(t, err)
	mb, err := b.Scramble()
	require.NoError(t, err)
	assert.Equal(t, ma, mb)
}

func TestSchedulerOnCommit(t *testing.T) {
	var committed []cube.Move
	s := newTestScheduler(t, Options{OnCommit: func(m cube.Move) {
		committed = append(committed, m)
	}})
	seq := []cube.Move{cube.R, cube.UPrime, cube.L}
	require.NoError(t, s.EnqueueAll(seq))
	_, err := s.Drain(1000)
	require.NoError(t, err)
	assert.Equal(t, seq, committed)
}

func TestSchedulerQueueLimit(t *testing.T) {
	s := newTestScheduler(t, Options{QueueLimit: 3})
	assert.ErrorIs(t, s.EnqueueAll([]cube.Move{cube.R, cube.R, cube.R, cube.R}), ErrQueueFull)
	assert.Zero(t, s.Pending(), "a rejected sequence enqueues nothing")

	_, err := s.Scramble()
	assert.ErrorIs(t, err, ErrQueueFull)

	require.NoError(t, s.EnqueueAll([]cube.Move{cube.R, cube.R, cube.R}))
	assert.ErrorIs(t, s.Enqueue(cube.U), ErrQueueFull)
}

func TestSchedulerDrainLimit(t *testing.T) {
	s := newTestScheduler(t, Options{})
	require.NoError(t, s.Enqueue(cube.R))
	n, err := s.Drain(3)
	assert.ErrorIs(t, err, ErrDrainLimit)
	assert.Equal(t, 3, n)
}

func TestSchedulerUnmappedMovePanics(t *testing.T) {
	s := newTestScheduler(t, Options{})
	assert.Panics(t, func() {
		_ = s.Enqueue(cube.Move{Face: cube.FaceU, Turn: 2})
	})
}

func TestSchedulerPositionsAlwaysSnappedAfterCommit(t *testing.T) {
	s := newTestScheduler(t, Options{Step: 0.37}) // does not divide a quarter turn
	_, err := s.Scramble()
	require.NoError(t, err)
	_, err = s.Drain(10000)
	require.NoError(t, err)

	seen := make(map[geom.IVec3]bool)
	for _, p := range s.State().Pieces() {
		assert.True(t, p.Position.InRange(), "piece %d at %s", p.ID, p.Position)
		seen[p.Position] = true
	}
	assert.Len(t, seen, cube.PieceCount)
}
