package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/candytris/config"
	"github.com/plus3/candytris/game"
	"github.com/plus3/candytris/loop"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the simulation should run for.")
	games := flag.Int("games", 0, "Stop after this many games. Zero runs for the whole duration.")
	maxPieces := flag.Int("max-pieces", 2000, "Restart a game once this many pieces are placed.")
	verbose := flag.Bool("verbose", false, "Log every engine event.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")

	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting candytris simulation...")

	// 1. Setup the game and the scheduler
	opts := cfg.GameOptions()
	g, err := game.New(opts)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	input := &loop.InputQueue{}
	scheduler := loop.NewScheduler(g)
	scheduler.Register(&loop.InputSystem{Queue: input})
	scheduler.Register(&Bot{})
	if *verbose {
		scheduler.Register(&loop.LogSystem{Logger: log.Default(), Verbose: true})
	}

	// 2. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Width:          opts.Width,
		Height:         opts.Height,
		Catalog:        string(opts.Catalog),
		Colors:         opts.Colors,
		SpecialChance:  opts.SpecialChance,
		Seed:           opts.Seed,
		MaxPieces:      *maxPieces,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	dt := cfg.FrameInterval().Seconds()

Loop:
	for {
		select {
		case <-ctx.Done():
			report.AddGame(g)
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))

			if g.State() != game.StateGameOver && g.Stats().PiecesPlaced < *maxPieces {
				continue
			}
			report.AddGame(g)
			if *games > 0 && len(report.Games) >= *games {
				break Loop
			}
			input.Push(game.CommandRestart)
		}
	}

	stats := scheduler.GetStats()
	report.TotalTime = time.Since(startTime)
	report.TotalFrames = stats.Frames
	report.RejectedCommands = stats.RejectedCommands
	report.Systems = stats.Systems
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
