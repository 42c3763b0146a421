package audio

import "github.com/plus3/candytris/loop"

// System plays one effect per audible engine event of the frame.
type System struct {
	Sink  Sink
	Muted bool

	Played int
}

func (s *System) Execute(frame *loop.Frame) {
	if s.Muted || s.Sink == nil {
		return
	}
	for _, e := range frame.Events {
		sound, ok := SoundFor(e)
		if !ok {
			continue
		}
		s.Sink.Play(Effect(sound, e.Pass))
		s.Played++
	}
}
