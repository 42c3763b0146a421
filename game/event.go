package game

import "fmt"

// Command is a discrete player input.
type Command uint8

const (
	CommandMoveLeft Command = iota
	CommandMoveRight
	CommandSoftDrop
	CommandRotate
	CommandPause
	CommandHardDrop
	CommandRestart
)

var commandNames = [...]string{"move-left", "move-right", "soft-drop", "rotate", "pause", "hard-drop", "restart"}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("command(%d)", c)
}

// State is the phase of the game loop.
type State uint8

const (
	StateFalling State = iota
	StateResolving
	StateSpawning
	StateGameOver
)

var stateNames = [...]string{"falling", "resolving", "spawning", "game-over"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", s)
}

// EventKind identifies what happened in the engine.
type EventKind uint8

const (
	EventLanded EventKind = iota
	EventCleared
	EventCascadeFinished
	EventSpawned
	EventGameOver
	EventPaused
	EventResumed
	EventReset
)

var eventNames = [...]string{"landed", "cleared", "cascade-finished", "spawned", "game-over", "paused", "resumed", "reset"}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("event(%d)", k)
}

// Event is emitted by Game and drained by hosts for audio, logging and
// debugging. Fields not relevant to Kind are zero.
type Event struct {
	Kind EventKind
	// Pass is the 1-based cascade pass for EventCleared, or the number of
	// passes for EventCascadeFinished.
	Pass int
	// Cells is the number of blocks written (EventLanded) or removed
	// (EventCleared, EventCascadeFinished).
	Cells        int
	Score        int
	Flags        Escalation
	PurgedColors []Color
	Shape        string
}

func (e Event) String() string {
	switch e.Kind {
	case EventCleared:
		return fmt.Sprintf("%s pass=%d cells=%d score=%d escalation=%s", e.Kind, e.Pass, e.Cells, e.Score, e.Flags)
	case EventCascadeFinished:
		return fmt.Sprintf("%s passes=%d cells=%d score=%d", e.Kind, e.Pass, e.Cells, e.Score)
	case EventLanded:
		return fmt.Sprintf("%s shape=%s cells=%d", e.Kind, e.Shape, e.Cells)
	case EventSpawned:
		return fmt.Sprintf("%s shape=%s", e.Kind, e.Shape)
	case EventGameOver:
		return fmt.Sprintf("%s score=%d", e.Kind, e.Score)
	default:
		return e.Kind.String()
	}
}
