package scheduler

import (
	"errors"
	"sync"

	"github.com/SeamusWaldron/gocube_sim/internal/cube"
)

// DefaultQueueLimit is the default maximum number of pending moves.
const DefaultQueueLimit = 1024

// ErrQueueFull is returned when an enqueue would exceed the queue limit.
var ErrQueueFull = errors.New("scheduler: move queue full")

// Queue is a bounded FIFO of pending moves. Producers may enqueue from any
// goroutine; the frame loop is the only consumer.
type Queue struct {
	ch   chan cube.Move
	lock sync.RWMutex
}

// NewQueue creates a queue holding at most limit moves. A limit below 1 uses
// DefaultQueueLimit.
func NewQueue(limit int) *Queue {
	if limit < 1 {
		limit = DefaultQueueLimit
	}
	return &Queue{
		ch: make(chan cube.Move, limit),
	}
}

// Enqueue adds a move to the end of the queue.
func (q *Queue) Enqueue(m cube.Move) error {
	return q.EnqueueAll([]cube.Move{m})
}

// EnqueueAll adds all moves in order, or none of them if they do not fit.
func (q *Queue) EnqueueAll(moves []cube.Move) error {
	q.lock.Lock()
	defer q.lock.Unlock()

	if cap(q.ch)-len(q.ch) < len(moves) {
		return ErrQueueFull
	}
	for _, m := range moves {
		q.ch <- m
	}
	return nil
}

// Dequeue removes and returns the move at the front of the queue. ok is false
// when the queue is empty.
func (q *Queue) Dequeue() (m cube.Move, ok bool) {
	q.lock.Lock()
	defer q.lock.Unlock()

	select {
	case m = <-q.ch:
		return m, true
	default:
		return cube.Move{}, false
	}
}

// Size returns the current number of pending moves.
func (q *Queue) Size() int {
	q.lock.RLock()
	defer q.lock.RUnlock()
	return len(q.ch)
}

// Limit returns the maximum number of pending moves.
func (q *Queue) Limit() int {
	return cap(q.ch)
}

// Pending returns the pending moves in order without removing them.
func (q *Queue) Pending() []cube.Move {
	q.lock.Lock()
	defer q.lock.Unlock()

	moves := make([]cube.Move, 0, len(q.ch))
	for len(q.ch) > 0 {
		moves = append(moves, <-q.ch)
	}
	for _, m := range moves {
		q.ch <- m
	}
	return moves
}

// Clear removes all pending moves.
func (q *Queue) Clear() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for len(q.ch) > 0 {
		<-q.ch
	}
}
