package loop

import (
	"log"

	"github.com/plus3/candytris/game"
)

// LogSystem writes notable engine events to Logger. Spawn and landing events
// are only written when Verbose is set.
type LogSystem struct {
	Logger  *log.Logger
	Verbose bool
}

func (s *LogSystem) Execute(frame *Frame) {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}

	for _, e := range frame.Events {
		switch e.Kind {
		case game.EventSpawned, game.EventLanded:
			if !s.Verbose {
				continue
			}
		case game.EventCleared:
			if e.Flags == 0 && e.Pass == 1 && !s.Verbose {
				continue
			}
		}
		logger.Println(e)
	}
}
