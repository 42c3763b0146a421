package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/candytris/game"
	"github.com/plus3/candytris/loop"
)

type Report struct {
	// Configuration
	Duration      time.Duration
	Width         int
	Height        int
	Catalog       string
	Colors        int
	SpecialChance float64
	Seed          uint64
	MaxPieces     int

	// Results
	Games            []GameResult
	TotalFrames      int64
	TotalTime        time.Duration
	UpdateTime       Stats
	RejectedCommands int64
	Systems          []loop.SystemStats
	GCPauseMetrics   bool
	MemStatsStart    runtime.MemStats
	MemStatsEnd      runtime.MemStats
}

// GameResult is one game played by the bot.
type GameResult struct {
	Score int
	Stats game.Stats
	// Finished is false when the game hit the piece cap or the run ended
	// before the game did.
	Finished bool
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// ScoreSummary aggregates the scores of all games.
type ScoreSummary struct {
	Min, Max, Avg int
}

// AddGame records the current state of g as a game result.
func (r *Report) AddGame(g *game.Game) {
	r.Games = append(r.Games, GameResult{
		Score:    g.Score(),
		Stats:    g.Stats(),
		Finished: g.State() == game.StateGameOver,
	})
}

func (r *Report) Scores() ScoreSummary {
	if len(r.Games) == 0 {
		return ScoreSummary{}
	}
	s := ScoreSummary{Min: r.Games[0].Score, Max: r.Games[0].Score}
	total := 0
	for _, g := range r.Games {
		s.Min = min(s.Min, g.Score)
		s.Max = max(s.Max, g.Score)
		total += g.Score
	}
	s.Avg = total / len(r.Games)
	return s
}

// Totals sums the engine counters over all games.
func (r *Report) Totals() game.Stats {
	var t game.Stats
	for _, g := range r.Games {
		s := g.Stats
		t.PiecesPlaced += s.PiecesPlaced
		t.Passes += s.Passes
		t.LongestCascade = max(t.LongestCascade, s.LongestCascade)
		t.CellsRemoved += s.CellsRemoved
		t.ColorPurges += s.ColorPurges
		t.BoardClears += s.BoardClears
		t.AreaBlasts += s.AreaBlasts
		t.SpecialsFired += s.SpecialsFired
		t.HiddenCellsLost += s.HiddenCellsLost
		t.RejectedCommands += s.RejectedCommands
	}
	return t
}

func (r *Report) Finished() int {
	n := 0
	for _, g := range r.Games {
		if g.Finished {
			n++
		}
	}
	return n
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Candytris Simulation Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Board:** {{.Width}}x{{.Height}}
- **Catalog:** {{.Catalog}} ({{.Colors}} colors, special chance {{.SpecialChance}})
- **Seed:** {{.Seed}}
- **Piece Cap:** {{.MaxPieces}}

## Games
- **Games Played:** {{len .Games}} ({{.Finished}} ended in game over)
{{- with .Scores}}
- **Score:** avg {{.Avg}}, min {{.Min}}, max {{.Max}}
{{- end}}
{{- with .Totals}}
- **Pieces Placed:** {{.PiecesPlaced}}
- **Cascade Passes:** {{.Passes}} (longest {{.LongestCascade}})
- **Cells Removed:** {{.CellsRemoved}}
- **Area Blasts:** {{.AreaBlasts}}
- **Specials Fired:** {{.SpecialsFired}}
- **Color Purges:** {{.ColorPurges}}
- **Board Clears:** {{.BoardClears}}
- **Hidden Cells Lost:** {{.HiddenCellsLost}}
{{- end}}

| # | Score | Pieces | Passes | Longest | Game Over |
|---|-------|--------|--------|---------|-----------|
{{- range $i, $g := .Games}}
| {{inc $i}} | {{$g.Score}} | {{$g.Stats.PiecesPlaced}} | {{$g.Stats.Passes}} | {{$g.Stats.LongestCascade}} | {{$g.Finished}} |
{{- end}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Rejected Commands:** {{.RejectedCommands}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{- range .Systems}}
- **{{.Name}}:** avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{- end}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
