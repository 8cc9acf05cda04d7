// Package queue provides the unbounded transition queue between input hooks
// and the frame loop.
//
// Any number of producers may Push; a single consumer calls Drain once per
// frame. Push never blocks and never drops while the queue is open. Items
// come out in the order they went in.
package queue

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dshills/keyscreen/internal/input/key"
)

// ErrClosed is returned by Push after the consumer has closed the queue.
var ErrClosed = errors.New("queue is closed")

// Queue is an unbounded multi-producer, single-consumer FIFO of transitions.
type Queue struct {
	mu      sync.Mutex
	pending []key.Transition
	spare   []key.Transition
	closed  bool

	pushed  atomic.Uint64
	drained atomic.Uint64
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{
		pending: make([]key.Transition, 0, 64),
		spare:   make([]key.Transition, 0, 64),
	}
}

// Push appends a transition. It returns ErrClosed once Close has been called.
func (q *Queue) Push(t key.Transition) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	q.pending = append(q.pending, t)
	q.pushed.Add(1)
	return nil
}

// Drain removes and returns every pending transition in FIFO order.
// It returns an empty slice when nothing is pending. The returned slice is
// valid until the next call to Drain.
func (q *Queue) Drain() []key.Transition {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.pending
	q.pending = q.spare[:0]
	q.spare = out
	q.drained.Add(uint64(len(out)))
	return out
}

// Len returns the number of pending transitions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close marks the consumer as gone. Pending items can still be drained.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
}

// IsClosed reports whether Close has been called.
func (q *Queue) IsClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Stats contains queue counters.
type Stats struct {
	Pushed  uint64
	Drained uint64
}

// Stats returns the current counters.
func (q *Queue) Stats() Stats {
	return Stats{
		Pushed:  q.pushed.Load(),
		Drained: q.drained.Load(),
	}
}
