package loop

import "time"

// TickSystem advances the game's fall timer by the frame delta.
type TickSystem struct {
	// MaxDelta caps a single frame's advance so a stalled host does not
	// drop the piece several rows at once. Zero means no cap.
	MaxDelta time.Duration
}

func (s *TickSystem) Execute(frame *Frame) {
	dt := time.Duration(frame.DeltaTime * float64(time.Second))
	if s.MaxDelta > 0 && dt > s.MaxDelta {
		dt = s.MaxDelta
	}
	frame.Game.Tick(dt)
}
