package game_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/candytris/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBoard(rng *rand.Rand, w, h int, density float64) *game.Board {
	b := game.NewBoard(w, h)
	palette := game.Palette(5)
	for y := range h {
		for x := range w {
			if rng.Float64() < density {
				_ = b.Set(x, y, game.Block(palette[rng.IntN(len(palette))]))
			}
		}
	}
	return b
}

func assertCompacted(t *testing.T, b *game.Board) {
	t.Helper()
	for x := range b.Width() {
		for y := 0; y < b.Height()-1; y++ {
			if b.IsOccupied(x, y) {
				assert.True(t, b.IsOccupied(x, y+1), "gap below (%d,%d)", x, y)
			}
		}
	}
}

func TestApplyGravity(t *testing.T) {
	b := game.MustParseBoard(`
R . B
. G .
Y . .
. . R
`)
	want := game.MustParseBoard(`
. . .
. . .
R . B
Y G R
`)

	assert.Equal(t, 4, game.ApplyGravity(b))
	assert.True(t, want.Equal(b), "got\n%s", b)

	assert.Equal(t, 0, game.ApplyGravity(b))
	assert.True(t, want.Equal(b))
}

func TestApplyGravityKeepsSpecials(t *testing.T) {
	b := game.MustParseBoard(`
R* .
.  .
`)
	game.ApplyGravity(b)

	cell, err := b.Get(0, 1)
	require.NoError(t, err)
	assert.Equal(t, game.Special(game.ColorRed, game.KindAreaClear), cell)
}

func TestApplyGravityProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := range 100 {
		b := randomBoard(rng, 10, 20, 0.4)
		occupied := b.Occupied()

		game.ApplyGravity(b)
		once := b.Clone()
		assert.Equal(t, 0, game.ApplyGravity(b), "board %d", i)

		assert.True(t, once.Equal(b), "gravity is not idempotent on board %d", i)
		assert.Equal(t, occupied, b.Occupied())
		assertCompacted(t, b)
	}
}

func TestResolveSingleRun(t *testing.T) {
	b := game.NewBoard(10, 20)
	fill(t, b, game.Block(game.ColorRed), row(19, 0, 1, 2)...)

	res := game.Resolve(b)

	require.Len(t, res.Passes, 1)
	assert.Equal(t, 300, res.Score)
	assert.Equal(t, 3, res.Removed())
	assert.Equal(t, 0, b.Occupied())
}

func TestResolveCascade(t *testing.T) {
	b := game.MustParseBoard(`
. . . . .
. G . . .
. R . . .
. R . . .
G R G . .
`)
	res := game.Resolve(b)

	require.Len(t, res.Passes, 2)
	assert.False(t, res.Passes[0].Match.Runs[0].Horizontal)
	assert.Equal(t, 1, res.Passes[0].Moved)
	assert.True(t, res.Passes[1].Match.Runs[0].Horizontal)
	assert.Equal(t, game.ColorGreen, res.Passes[1].Match.Runs[0].Color)
	assert.Equal(t, 600, res.Score)
	assert.Equal(t, 6, res.Removed())
	assert.Equal(t, 0, b.Occupied())
}

func TestResolveNothing(t *testing.T) {
	b := game.MustParseBoard(`
R G
G R
`)
	res := game.Resolve(b)

	assert.Empty(t, res.Passes)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 4, b.Occupied())
}

// A piece fills the only gap in the bottom row and completes a run of four.
func TestResolveLandingCompletesRunOfFour(t *testing.T) {
	b := game.NewBoard(10, 20)
	setRow := func(y int, tokens string) {
		line, err := game.ParseBoard(tokens)
		require.NoError(t, err)
		for x := range line.Width() {
			c, _ := line.Get(x, 0)
			require.NoError(t, b.Set(x, y, c))
		}
	}
	setRow(17, "B . . Y . . . . . .")
	setRow(18, "Y . . B . . G . . R")
	setRow(19, "G B R R . R Y G B Y")

	p := newPiece(t, "I", 2, 0, game.ColorOrange, game.ColorGreen, game.ColorBlue, game.ColorRed)
	p.Rotation = 1
	require.True(t, game.TryMove(p, 0, game.DropDistance(p, b), b))
	require.Equal(t, 16, p.Y)
	assert.Equal(t, 4, game.Freeze(p, b))

	res := game.Resolve(b)

	require.Len(t, res.Passes, 1)
	pass := res.Passes[0]
	assert.True(t, pass.Match.Flags.Has(game.EscalateArea))
	assert.Equal(t, 400, res.Score)
	assert.Equal(t, 12, pass.Match.Removed.Len())
	assert.Equal(t, 9, pass.Removed)

	want := game.MustParseBoard(`
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
B . . . . . . . . .
Y . . . O . . . . R
G . . Y G . . G B Y
`)
	assert.True(t, want.Equal(b), "got\n%s", b)
	assertCompacted(t, b)
}
