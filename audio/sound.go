package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/plus3/candytris/game"
)

// Sound names one game sound effect.
type Sound uint8

const (
	SoundLand Sound = iota
	SoundClear
	SoundArea
	SoundSpecial
	SoundPurge
	SoundBoardClear
	SoundGameOver
	SoundPause
)

var soundNames = [...]string{"land", "clear", "area", "special", "purge", "board-clear", "game-over", "pause"}

func (s Sound) String() string {
	if int(s) < len(soundNames) {
		return soundNames[s]
	}
	return fmt.Sprintf("sound(%d)", s)
}

// maxCascadeStep caps how far successive cascade passes raise the pitch.
const maxCascadeStep = 12

// SoundFor picks the effect for an engine event. Clears play the sound of
// their strongest escalation.
func SoundFor(e game.Event) (Sound, bool) {
	switch e.Kind {
	case game.EventLanded:
		return SoundLand, true
	case game.EventCleared:
		switch {
		case e.Flags.Has(game.EscalateBoardClear):
			return SoundBoardClear, true
		case e.Flags.Has(game.EscalateColorPurge):
			return SoundPurge, true
		case e.Flags.Has(game.EscalateSpecial):
			return SoundSpecial, true
		case e.Flags.Has(game.EscalateArea):
			return SoundArea, true
		}
		return SoundClear, true
	case game.EventGameOver:
		return SoundGameOver, true
	case game.EventPaused, game.EventResumed:
		return SoundPause, true
	}
	return 0, false
}

// Effect builds a finite stream for the sound. pass is the 1-based cascade
// pass and raises the pitch of clears a semitone at a time.
func Effect(sound Sound, pass int) beep.Streamer {
	step := min(max(pass-1, 0), maxCascadeStep)

	switch sound {
	case SoundLand:
		return note(110, 60*time.Millisecond, waveSquare, 0.2)
	case SoundClear:
		return note(semitones(523.25, step), 120*time.Millisecond, waveSine, 0.4)
	case SoundArea:
		return beep.Mix(
			note(semitones(392, step), 200*time.Millisecond, waveSine, 0.3),
			note(60, 200*time.Millisecond, waveNoise, 0.15),
		)
	case SoundSpecial:
		return beep.Seq(
			note(semitones(659.25, step), 70*time.Millisecond, waveSaw, 0.2),
			note(semitones(987.77, step), 90*time.Millisecond, waveSaw, 0.2),
		)
	case SoundPurge:
		return beep.Seq(
			note(523.25, 80*time.Millisecond, waveSine, 0.35),
			note(659.25, 80*time.Millisecond, waveSine, 0.35),
			note(783.99, 140*time.Millisecond, waveSine, 0.35),
		)
	case SoundBoardClear:
		return beep.Seq(
			beep.Mix(
				note(523.25, 150*time.Millisecond, waveSine, 0.3),
				note(659.25, 150*time.Millisecond, waveSine, 0.3),
			),
			beep.Mix(
				note(783.99, 300*time.Millisecond, waveSine, 0.3),
				note(1046.5, 300*time.Millisecond, waveSine, 0.3),
			),
		)
	case SoundGameOver:
		return beep.Seq(
			note(392, 180*time.Millisecond, waveSquare, 0.2),
			note(311.13, 180*time.Millisecond, waveSquare, 0.2),
			note(261.63, 400*time.Millisecond, waveSquare, 0.2),
		)
	case SoundPause:
		return note(880, 40*time.Millisecond, waveSine, 0.25)
	}
	return beep.Silence(0)
}
