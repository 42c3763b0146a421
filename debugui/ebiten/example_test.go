package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/candytris/debugui"
	debugui_ebiten "github.com/plus3/candytris/debugui/ebiten"
	"github.com/plus3/candytris/game"
	"github.com/plus3/candytris/loop"
)

// Game implements ebiten.Game and draws the debug panels over the board.
type Game struct {
	scheduler *loop.Scheduler
	backend   *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Systems run inside the ImGui frame so panels can queue their renders.
	g.backend.Frame(func() {
		g.scheduler.Once(1.0 / 60.0)
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board
	// ...

	g.backend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("candytris debug", 1280, 720)

	g, err := game.New(game.DefaultOptions())
	if err != nil {
		panic(err)
	}

	input := &loop.InputQueue{}
	scheduler := loop.NewScheduler(g)
	scheduler.Register(&loop.InputSystem{Queue: input})
	scheduler.Register(&loop.TickSystem{})

	ui := debugui.Install(scheduler, input)
	ui.Add(func() {
		imgui.Begin("Hello")
		imgui.Text(g.String())
		imgui.End()
	})

	if err := ebiten.RunGame(&Game{scheduler: scheduler, backend: backend}); err != nil {
		panic(err)
	}
}
