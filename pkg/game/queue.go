package game

import (
	"sync"
)

// DrainCap is the soft cap on commands handed to the dispatcher per tick.
// Overflow stays queued in order for the next tick.
const DrainCap = 50

// Queue is the FIFO between input producers (sockets, AI manager) and the
// simulation goroutine. Enqueue never blocks; producers run on arbitrary
// goroutines while Drain runs only on the simulation goroutine.
type Queue struct {
	mu      sync.Mutex
	pending []Command
}

// NewQueue creates an empty command queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends a command. Safe for concurrent use.
func (q *Queue) Enqueue(cmd Command) {
	q.mu.Lock()
	q.pending = append(q.pending, cmd)
	q.mu.Unlock()
}

// Drain removes and returns up to max commands in FIFO order. Commands from
// the same actor keep their submission order.
func (q *Queue) Drain(max int) []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	n := len(q.pending)
	if max > 0 && n > max {
		n = max
	}
	batch := make([]Command, n)
	copy(batch, q.pending[:n])
	q.pending = append(q.pending[:0], q.pending[n:]...)
	return batch
}

// Len reports the number of queued commands.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
