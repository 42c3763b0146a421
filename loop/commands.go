package loop

import "github.com/plus3/candytris/game"

// Commands buffers player commands and callbacks that run at the end of a
// frame, after every system has seen the same game state.
type Commands struct {
	applies []game.Command
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Apply queues a player command.
func (c *Commands) Apply(cmd game.Command) {
	c.applies = append(c.applies, cmd)
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.applies) + len(c.defers)
}

// Flush applies queued commands to g in order, then runs deferred
// functions, and resets the buffer. It returns how many commands the game
// rejected.
func (c *Commands) Flush(g *game.Game) int {
	rejected := 0
	for _, cmd := range c.applies {
		if !g.Apply(cmd) {
			rejected++
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.applies = c.applies[:0]
	c.defers = c.defers[:0]
	return rejected
}
