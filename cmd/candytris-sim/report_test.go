package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/candytris/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportSummarizesGames(t *testing.T) {
	r := &Report{
		Games: []GameResult{
			{Score: 900, Stats: game.Stats{PiecesPlaced: 40, Passes: 3, LongestCascade: 2, ColorPurges: 1}, Finished: true},
			{Score: 300, Stats: game.Stats{PiecesPlaced: 10, Passes: 1, LongestCascade: 1}},
		},
	}

	assert.Equal(t, ScoreSummary{Min: 300, Max: 900, Avg: 600}, r.Scores())
	assert.Equal(t, 1, r.Finished())

	totals := r.Totals()
	assert.Equal(t, 50, totals.PiecesPlaced)
	assert.Equal(t, 4, totals.Passes)
	assert.Equal(t, 2, totals.LongestCascade)
	assert.Equal(t, 1, totals.ColorPurges)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration: time.Second,
		Width:    10,
		Height:   20,
		Catalog:  "classic",
		Colors:   5,
		Games: []GameResult{
			{Score: 1200, Stats: game.Stats{PiecesPlaced: 55, Passes: 4, LongestCascade: 3}, Finished: true},
		},
		TotalFrames: 60,
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Candytris Simulation Report")
	assert.Contains(t, out, "- **Board:** 10x20")
	assert.Contains(t, out, "- **Games Played:** 1 (1 ended in game over)")
	assert.Contains(t, out, "- **Score:** avg 1200, min 1200, max 1200")
	assert.Contains(t, out, "- **Cascade Passes:** 4 (longest 3)")
	assert.Contains(t, out, "| 1 | 1200 | 55 | 4 | 3 | true |")
	assert.Contains(t, out, "- **Total Frames:** 60")
	assert.NotContains(t, out, "GC Pause")
}
