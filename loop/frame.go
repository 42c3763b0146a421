package loop

import "github.com/plus3/candytris/game"

// Frame is handed to every system during one Scheduler.Once call.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Game      *game.Game
	// Events holds every engine event emitted since the previous frame,
	// including those caused by systems that already ran this frame.
	Events []game.Event
}

func newFrame(dt float64, g *game.Game) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Game:      g,
	}
}

// Has reports whether an event of the given kind was seen this frame.
func (f *Frame) Has(kind game.EventKind) bool {
	for _, e := range f.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
