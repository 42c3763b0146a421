package main

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/candytris/debugui"
	debugui_ebiten "github.com/plus3/candytris/debugui/ebiten"
	"github.com/plus3/candytris/loop"
)

// App implements ebiten.Game on top of the frame scheduler.
type App struct {
	scheduler *loop.Scheduler
	input     *loop.InputQueue
	dt        float64

	// Set only with -debug.
	backend *debugui_ebiten.ImguiBackend
	ui      *debugui.System
}

func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if a.ui == nil || !a.ui.Input.WantCaptureKeyboard {
		a.pollKeys()
	}

	if a.backend != nil {
		a.backend.Frame(func() {
			a.scheduler.Once(a.dt)
		})
		return nil
	}

	a.scheduler.Once(a.dt)
	return nil
}

func (a *App) pollKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		dump := a.scheduler.Game().Snapshot().String()
		if err := clipboard.WriteAll(dump); err != nil {
			log.Printf("Failed to copy board: %v", err)
		} else {
			log.Println("Board copied to clipboard")
		}
	}

	for _, b := range keyBindings {
		if b.pressed() {
			a.input.Push(b.command)
		}
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	drawGame(screen, a.scheduler.Game())

	if a.backend != nil {
		a.backend.Overlay(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.backend != nil {
		a.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
