package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/candytris/config"
	"github.com/plus3/candytris/debugui"
	debugui_ebiten "github.com/plus3/candytris/debugui/ebiten"
	"github.com/plus3/candytris/game"
	"github.com/plus3/candytris/loop"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	g, err := game.New(cfg.GameOptions())
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	width, height := windowSize(cfg.Width, cfg.Height)
	app := &App{
		input: &loop.InputQueue{},
		dt:    1 / float64(cfg.FPS),
	}

	if cfg.Debug {
		// The ImGui backend creates the window.
		width, height = width+debugPanelWidth, max(height, 720)
		app.backend = debugui_ebiten.NewImguiBackend("candytris", width, height)
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("candytris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	app.scheduler = loop.NewScheduler(g)
	app.scheduler.Register(&loop.InputSystem{Queue: app.input})
	app.scheduler.Register(&loop.TickSystem{MaxDelta: cfg.DropInterval})
	app.scheduler.Register(&loop.LogSystem{Logger: log.Default()})
	if cfg.Debug {
		app.ui = debugui.Install(app.scheduler, app.input)
	}

	log.Printf("Starting candytris %dx%d seed=%d", cfg.Width, cfg.Height, g.Options().Seed)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}

	stats := g.Stats()
	log.Printf("Final score %d after %d pieces (%d passes, longest cascade %d)",
		g.Score(), stats.PiecesPlaced, stats.Passes, stats.LongestCascade)
}
