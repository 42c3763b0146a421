package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/candytris/audio"
	"github.com/plus3/candytris/config"
	"github.com/plus3/candytris/game"
	"github.com/plus3/candytris/loop"
	"github.com/plus3/candytris/termui"
)

func main() {
	logPath := flag.String("log", "candytris.log", "File that receives the game log. The terminal is used for drawing.")

	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	g, err := game.New(cfg.GameOptions())
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	sound := audio.NewSpeaker()
	muted := cfg.Mute
	if !muted {
		if err := sound.Init(); err != nil {
			log.Printf("Audio unavailable, playing muted: %v", err)
			muted = true
		}
	}
	defer sound.Close()

	input := &loop.InputQueue{}
	copier := &copySystem{}

	scheduler := loop.NewScheduler(g)
	scheduler.Register(&loop.InputSystem{Queue: input})
	scheduler.Register(&loop.TickSystem{MaxDelta: cfg.DropInterval})
	scheduler.Register(copier)
	scheduler.Register(&audio.System{Sink: sound, Muted: muted})
	scheduler.Register(&loop.LogSystem{Logger: log.Default()})
	scheduler.Register(&termui.System{Renderer: termui.NewRenderer(screen)})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go pollEvents(screen, input, copier, cancel)

	log.Printf("Starting candytris %dx%d seed=%d", cfg.Width, cfg.Height, g.Options().Seed)
	scheduler.Run(ctx, cfg.FrameInterval())

	stats := scheduler.GetStats()
	log.Printf("Stopped after %d frames: score %d, %d pieces, %d rejected commands",
		stats.Frames, g.Score(), g.Stats().PiecesPlaced, stats.RejectedCommands)
}

// pollEvents forwards key presses to the loop until the screen is finalized
// or the player quits.
func pollEvents(screen tcell.Screen, input *loop.InputQueue, copier *copySystem, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if termui.IsQuit(ev.Key(), ev.Rune()) {
				quit()
				return
			}
			if termui.IsCopy(ev.Key()) {
				copier.Request()
				continue
			}
			if cmd, ok := termui.KeyCommand(ev); ok {
				input.Push(cmd)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
