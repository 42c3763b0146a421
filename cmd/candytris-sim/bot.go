package main

import (
	"github.com/plus3/candytris/game"
	"github.com/plus3/candytris/loop"
)

// Heuristic weights for a resting board. Cleared points dominate so the bot
// always prefers a placement that scores.
const (
	weightScore  = 10.0
	weightHeight = 5.0
	weightHoles  = 35.0
	weightBumps  = 2.0
)

type move struct {
	rotations int
	dx        int
	value     float64
	// points the placement scores when its cascade resolves.
	points int
}

// Bot places every piece with a hard drop at the placement its heuristic
// rates best.
type Bot struct {
	Planned int
}

func (b *Bot) Execute(frame *loop.Frame) {
	g := frame.Game
	cur := g.Current()
	if cur == nil || g.Paused() || g.State() != game.StateFalling {
		return
	}

	if m, ok := plan(g.Snapshot(), cur); ok {
		for range m.rotations {
			frame.Commands.Apply(game.CommandRotate)
		}
		step, n := game.CommandMoveRight, m.dx
		if n < 0 {
			step, n = game.CommandMoveLeft, -n
		}
		for range n {
			frame.Commands.Apply(step)
		}
	}
	frame.Commands.Apply(game.CommandHardDrop)
	b.Planned++
}

// plan tries every rotation and column for the piece on copies of the board,
// using the same moves the game accepts.
func plan(snap game.Snapshot, cur *game.Piece) (move, bool) {
	var best move
	found := false

	board := snap.Board()
	for r := range len(cur.Shape.Rotations) {
		rotated := cur.Clone()
		if !rotate(rotated, r, board) {
			continue
		}
		for dx := -snap.Width(); dx <= snap.Width(); dx++ {
			p := rotated.Clone()
			if !shift(p, dx, board) {
				continue
			}

			b := board.Clone()
			p.Y += game.DropDistance(p, b)
			game.Freeze(p, b)
			res := game.Resolve(b)

			value := evaluate(b, res)
			if !found || value > best.value {
				best = move{rotations: r, dx: dx, value: value, points: res.Score}
				found = true
			}
		}
	}
	return best, found
}

func rotate(p *game.Piece, n int, b *game.Board) bool {
	for range n {
		if !game.TryRotate(p, b) {
			return false
		}
	}
	return true
}

func shift(p *game.Piece, dx int, b *game.Board) bool {
	step := 1
	if dx < 0 {
		step, dx = -1, -dx
	}
	for range dx {
		if !game.TryMove(p, step, 0, b) {
			return false
		}
	}
	return true
}

// evaluate rates a resolved board: points scored, minus stack height, holes
// under overhangs and unevenness between neighbouring columns.
func evaluate(b *game.Board, res game.Resolution) float64 {
	heights := make([]int, b.Width())
	holes := 0
	for x := range b.Width() {
		top := -1
		for y := range b.Height() {
			switch {
			case b.IsOccupied(x, y):
				if top < 0 {
					top = y
				}
			case top >= 0:
				holes++
			}
		}
		if top >= 0 {
			heights[x] = b.Height() - top
		}
	}

	aggregate, bumps := 0, 0
	for x, h := range heights {
		aggregate += h
		if x > 0 {
			bumps += abs(h - heights[x-1])
		}
	}

	return float64(res.Score)*weightScore -
		float64(aggregate)*weightHeight -
		float64(holes)*weightHoles -
		float64(bumps)*weightBumps
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
