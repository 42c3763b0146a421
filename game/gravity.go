package game

// ApplyGravity compacts every column so occupied cells rest against the
// bottom row with no gaps, keeping their vertical order. It returns the
// number of cells that moved. Applying it to an already settled board is a
// no-op.
func ApplyGravity(b *Board) int {
	moved := 0
	for x := range b.width {
		dst := b.height - 1
		for y := b.height - 1; y >= 0; y-- {
			c := b.at(x, y)
			if c.Empty() {
				continue
			}
			if y != dst {
				b.put(x, dst, c)
				b.put(x, y, Cell{})
				moved++
			}
			dst--
		}
	}
	return moved
}

// Pass is one match → remove → gravity step of a cascade.
type Pass struct {
	Match   Match
	Removed int
	Moved   int
}

// Resolution is the full cascade triggered by a single landing.
type Resolution struct {
	Passes []Pass
	Score  int
}

// Removed returns the total number of blocks cleared across all passes.
func (r Resolution) Removed() int {
	n := 0
	for _, p := range r.Passes {
		n += p.Removed
	}
	return n
}

// Resolve repeats detection, removal and gravity until a pass finds no match.
func Resolve(b *Board) Resolution {
	var res Resolution
	for {
		m := Detect(b)
		if m.Empty() {
			return res
		}
		pass := Pass{Match: m}
		pass.Removed = Remove(b, m)
		pass.Moved = ApplyGravity(b)
		res.Passes = append(res.Passes, pass)
		res.Score += m.Score
	}
}
