package loop

import (
	"sync"

	"github.com/plus3/candytris/game"
)

// InputQueue collects player commands from any goroutine until the loop
// drains them.
type InputQueue struct {
	mu      sync.Mutex
	pending []game.Command
}

// Push queues a command. Safe for concurrent use.
func (q *InputQueue) Push(cmd game.Command) {
	q.mu.Lock()
	q.pending = append(q.pending, cmd)
	q.mu.Unlock()
}

// Drain returns the queued commands in arrival order and empties the queue.
func (q *InputQueue) Drain() []game.Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of queued commands.
func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// InputSystem applies queued player commands at the start of a frame so the
// rest of the frame sees their effect.
type InputSystem struct {
	Queue *InputQueue

	Accepted int
	Rejected int
}

func (s *InputSystem) Execute(frame *Frame) {
	for _, cmd := range s.Queue.Drain() {
		if frame.Game.Apply(cmd) {
			s.Accepted++
		} else {
			s.Rejected++
		}
	}
}
