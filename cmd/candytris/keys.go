package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/candytris/game"
)

// Held movement keys repeat after repeatDelay ticks, every repeatInterval ticks.
const (
	repeatDelay    = 12
	repeatInterval = 3
)

type binding struct {
	keys    []ebiten.Key
	command game.Command
	repeat  bool
}

var keyBindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, command: game.CommandMoveLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, command: game.CommandMoveRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, command: game.CommandSoftDrop, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyX}, command: game.CommandRotate},
	{keys: []ebiten.Key{ebiten.KeySpace}, command: game.CommandHardDrop},
	{keys: []ebiten.Key{ebiten.KeyP}, command: game.CommandPause},
	{keys: []ebiten.Key{ebiten.KeyR}, command: game.CommandRestart},
}

func (b binding) pressed() bool {
	for _, k := range b.keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
		if b.repeat && repeats(inpututil.KeyPressDuration(k)) {
			return true
		}
	}
	return false
}

// repeats reports whether a key held for d ticks fires again this tick.
func repeats(d int) bool {
	return d > repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
