package game_test

import (
	"testing"

	"github.com/plus3/candytris/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPiece(t *testing.T, shape string, x, y int, colors ...game.Color) *game.Piece {
	t.Helper()
	classic, _ := game.LookupCatalog(game.CatalogClassic)
	s, ok := classic.ShapeByName(shape)
	require.True(t, ok, "shape %s", shape)

	cells := make([]game.Cell, s.Cells())
	for i := range cells {
		c := game.ColorRed
		if i < len(colors) {
			c = colors[i]
		}
		cells[i] = game.Block(c)
	}
	return &game.Piece{Shape: s, X: x, Y: y, Cells: cells}
}

func assertUnchanged(t *testing.T, before, after *game.Piece) {
	t.Helper()
	assert.Equal(t, before.X, after.X)
	assert.Equal(t, before.Y, after.Y)
	assert.Equal(t, before.Rotation, after.Rotation)
}

func TestTryMove(t *testing.T) {
	t.Run("moves on an empty board", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		p := newPiece(t, "T", 4, 0)

		assert.True(t, game.TryMove(p, 1, 0, b))
		assert.True(t, game.TryMove(p, 0, 1, b))
		assert.Equal(t, 5, p.X)
		assert.Equal(t, 1, p.Y)
	})

	t.Run("left wall", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		p := newPiece(t, "T", 0, 5)
		before := p.Clone()

		assert.False(t, game.TryMove(p, -1, 0, b))
		assertUnchanged(t, before, p)
	})

	t.Run("right wall", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		p := newPiece(t, "T", 7, 5)
		before := p.Clone()

		assert.False(t, game.TryMove(p, 1, 0, b))
		assertUnchanged(t, before, p)
	})

	t.Run("floor", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		p := newPiece(t, "T", 3, 18)
		before := p.Clone()

		assert.False(t, game.TryMove(p, 0, 1, b))
		assertUnchanged(t, before, p)
	})

	t.Run("occupied cell", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		require.NoError(t, b.Set(1, 5, game.Block(game.ColorBlue)))
		p := newPiece(t, "T", 0, 3)
		before := p.Clone()

		assert.False(t, game.TryMove(p, 0, 1, b))
		assertUnchanged(t, before, p)
	})

	t.Run("cells above the board are free", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		p := newPiece(t, "I", 0, -3)
		p.Rotation = 1

		assert.True(t, game.TryMove(p, 1, 0, b))
		assert.Equal(t, 1, p.X)
		for _, pos := range p.Positions()[:3] {
			assert.Less(t, pos.Y, 0)
		}
	})

	t.Run("horizontal bounds apply above the board", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		p := newPiece(t, "T", 0, -1)
		before := p.Clone()

		assert.False(t, game.TryMove(p, -1, 0, b))
		assertUnchanged(t, before, p)
	})
}

func TestTryRotate(t *testing.T) {
	t.Run("wraps through every state", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		p := newPiece(t, "T", 4, 5)

		for want := 1; want <= 4; want++ {
			require.True(t, game.TryRotate(p, b))
			assert.Equal(t, want%4, p.Rotation)
		}
		assert.Equal(t, 4, p.X)
		assert.Equal(t, 5, p.Y)
	})

	t.Run("blocked by a settled cell", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		require.NoError(t, b.Set(2, 3, game.Block(game.ColorGreen)))
		p := newPiece(t, "I", 0, 0)
		before := p.Clone()

		assert.False(t, game.TryRotate(p, b))
		assertUnchanged(t, before, p)

		require.NoError(t, b.Clear(2, 3))
		assert.True(t, game.TryRotate(p, b))
		assert.Equal(t, 1, p.Rotation)
	})

	t.Run("blocked by the wall without kick", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		p := newPiece(t, "I", -2, 4)
		p.Rotation = 1
		before := p.Clone()

		assert.False(t, game.TryRotate(p, b))
		assertUnchanged(t, before, p)
	})

	t.Run("rotation invariant shape", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		p := newPiece(t, "O", 4, 4)

		assert.True(t, game.TryRotate(p, b))
		assert.Equal(t, 0, p.Rotation)
	})
}

func TestFreeze(t *testing.T) {
	t.Run("drops cells above the board", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		p := newPiece(t, "T", 0, -1, game.ColorRed, game.ColorGreen, game.ColorBlue, game.ColorYellow)

		assert.Equal(t, 3, game.Freeze(p, b))
		assert.Equal(t, 3, b.Occupied())

		for x, want := range []game.Color{game.ColorGreen, game.ColorBlue, game.ColorYellow} {
			cell, err := b.Get(x, 0)
			require.NoError(t, err)
			assert.Equal(t, want, cell.Color)
		}
	})

	t.Run("colors follow their cell through rotation", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		p := newPiece(t, "T", 3, 10, game.ColorRed, game.ColorGreen, game.ColorGreen, game.ColorGreen)
		require.True(t, game.TryRotate(p, b))

		stem := p.Positions()[0]
		assert.Equal(t, game.Point{X: 5, Y: 11}, stem)

		game.Freeze(p, b)
		cell, _ := b.Get(stem.X, stem.Y)
		assert.Equal(t, game.ColorRed, cell.Color)
	})

	t.Run("keeps special kinds", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		p := newPiece(t, "O", 0, 18)
		p.Cells[3] = game.Special(game.ColorBlue, game.KindColumnClear)

		game.Freeze(p, b)
		cell, _ := b.Get(1, 19)
		assert.Equal(t, game.KindColumnClear, cell.Kind)
	})
}

func TestDropDistance(t *testing.T) {
	b := game.NewBoard(10, 20)
	p := newPiece(t, "T", 3, 0)
	assert.Equal(t, 18, game.DropDistance(p, b))

	require.NoError(t, b.Set(4, 10, game.Block(game.ColorRed)))
	assert.Equal(t, 8, game.DropDistance(p, b))
	assert.Equal(t, 0, p.Y)
}
