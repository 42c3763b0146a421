package game_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/plus3/candytris/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardBounds(t *testing.T) {
	b := game.NewBoard(10, 20)

	tests := []struct {
		x, y int
	}{
		{-1, 0},
		{0, -1},
		{10, 0},
		{0, 20},
		{10, 20},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("x=%d,y=%d", tt.x, tt.y), func(t *testing.T) {
			_, err := b.Get(tt.x, tt.y)
			assert.True(t, errors.Is(err, game.ErrOutOfBounds))

			err = b.Set(tt.x, tt.y, game.Block(game.ColorRed))
			assert.ErrorIs(t, err, game.ErrOutOfBounds)

			assert.ErrorIs(t, b.Clear(tt.x, tt.y), game.ErrOutOfBounds)
			assert.False(t, b.IsOccupied(tt.x, tt.y))
		})
	}
}

func TestBoardSetGetClear(t *testing.T) {
	b := game.NewBoard(10, 20)

	require.NoError(t, b.Set(3, 7, game.Special(game.ColorBlue, game.KindAreaClear)))

	cell, err := b.Get(3, 7)
	require.NoError(t, err)
	assert.Equal(t, game.ColorBlue, cell.Color)
	assert.Equal(t, game.KindAreaClear, cell.Kind)
	assert.True(t, b.IsOccupied(3, 7))
	assert.Equal(t, 1, b.Occupied())

	require.NoError(t, b.Set(3, 7, game.Block(game.ColorRed)))
	cell, _ = b.Get(3, 7)
	assert.Equal(t, game.Block(game.ColorRed), cell)

	require.NoError(t, b.Clear(3, 7))
	cell, _ = b.Get(3, 7)
	assert.True(t, cell.Empty())
	assert.False(t, b.IsOccupied(3, 7))
	assert.Equal(t, 0, b.Occupied())
}

func TestBoardSetNormalizesEmptyCells(t *testing.T) {
	b := game.NewBoard(4, 4)

	require.NoError(t, b.Set(1, 1, game.Cell{Kind: game.KindRowClear}))

	cell, err := b.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, game.Cell{}, cell)
	assert.False(t, b.IsOccupied(1, 1))
}

func TestBoardSnapshotIsIsolated(t *testing.T) {
	b := game.NewBoard(5, 5)
	require.NoError(t, b.Set(0, 4, game.Block(game.ColorGreen)))

	snap := b.Snapshot()
	require.NoError(t, b.Clear(0, 4))
	require.NoError(t, b.Set(1, 4, game.Block(game.ColorRed)))

	assert.Equal(t, game.Block(game.ColorGreen), snap.At(0, 4))
	assert.True(t, snap.At(1, 4).Empty())
	assert.True(t, snap.At(-1, 0).Empty())
	assert.Equal(t, 5, snap.Width())
	assert.Equal(t, 5, snap.Height())
}

func TestSnapshotBoardIsACopy(t *testing.T) {
	b := game.NewBoard(4, 4)
	require.NoError(t, b.Set(2, 3, game.Special(game.ColorBlue, game.KindAreaClear)))
	snap := b.Snapshot()

	cp := snap.Board()
	assert.True(t, cp.Equal(b))

	require.NoError(t, cp.Clear(2, 3))
	assert.False(t, snap.At(2, 3).Empty())
	assert.True(t, b.IsOccupied(2, 3))
}

func TestBoardCloneAndEqual(t *testing.T) {
	b := game.MustParseBoard(`
R . B
. G .
`)
	c := b.Clone()
	assert.True(t, b.Equal(c))

	require.NoError(t, c.Clear(0, 0))
	assert.False(t, b.Equal(c))
	assert.True(t, b.IsOccupied(0, 0))

	assert.False(t, b.Equal(game.NewBoard(2, 3)))
}

func TestParseBoardRoundTrip(t *testing.T) {
	text := "R . B-\n. G| Y*\nO P C\n"

	b, err := game.ParseBoard(text)
	require.NoError(t, err)

	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 3, b.Height())
	assert.Equal(t, text, b.String())
	assert.Equal(t, text, b.Snapshot().String())

	cell, _ := b.Get(1, 1)
	assert.Equal(t, game.Special(game.ColorGreen, game.KindColumnClear), cell)
	cell, _ = b.Get(2, 0)
	assert.Equal(t, game.Special(game.ColorBlue, game.KindRowClear), cell)
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", "\n\n"},
		{"unknown color", "R X R"},
		{"unknown suffix", "R R+ R"},
		{"ragged rows", "R R R\nR R"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := game.ParseBoard(tt.text)
			assert.Error(t, err)
		})
	}
}
