package game

// Piece is the falling piece: a shape in one of its rotation states, an
// anchor position and one cell (color + kind) per shape offset.
type Piece struct {
	Shape    *Shape
	Rotation int
	X, Y     int
	Cells    []Cell
}

// Offsets returns the relative cell offsets of the current rotation state.
func (p *Piece) Offsets() []Point {
	return p.Shape.State(p.Rotation)
}

// Positions returns the absolute board coordinates of the piece cells, in
// the same order as Cells.
func (p *Piece) Positions() []Point {
	return positionsAt(p.Offsets(), p.X, p.Y)
}

// Clone returns a copy that shares only the immutable shape.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Cells = make([]Cell, len(p.Cells))
	copy(cp.Cells, p.Cells)
	return &cp
}

func positionsAt(offsets []Point, x, y int) []Point {
	out := make([]Point, len(offsets))
	anchor := Point{X: x, Y: y}
	for i, off := range offsets {
		out[i] = anchor.Add(off)
	}
	return out
}

// Fits reports whether a piece with the given offsets anchored at (x, y) is a
// legal placement: every cell within the horizontal bounds, above the floor,
// and either above the visible board or on an empty cell.
func Fits(b *Board, offsets []Point, x, y int) bool {
	for _, off := range offsets {
		cx, cy := x+off.X, y+off.Y
		if cx < 0 || cx >= b.width || cy >= b.height {
			return false
		}
		if cy >= 0 && !b.at(cx, cy).Empty() {
			return false
		}
	}
	return true
}

// TryMove shifts the piece by (dx, dy) if the target placement fits.
// The piece is left untouched when it does not.
func TryMove(p *Piece, dx, dy int, b *Board) bool {
	if !Fits(b, p.Offsets(), p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// TryRotate advances the piece to its next rotation state if that state fits
// at the current anchor. There is no wall kick; a blocked rotation is
// dropped.
func TryRotate(p *Piece, b *Board) bool {
	if len(p.Shape.Rotations) == 1 {
		return Fits(b, p.Offsets(), p.X, p.Y)
	}
	next := (p.Rotation + 1) % len(p.Shape.Rotations)
	if !Fits(b, p.Shape.State(next), p.X, p.Y) {
		return false
	}
	p.Rotation = next
	return true
}

// DropDistance returns how many rows the piece can fall before it rests.
func DropDistance(p *Piece, b *Board) int {
	offsets := p.Offsets()
	d := 0
	for Fits(b, offsets, p.X, p.Y+d+1) {
		d++
	}
	return d
}

// Freeze writes the piece cells into the board. Cells still above the
// visible board (y < 0) are discarded. It returns the number of cells
// written.
func Freeze(p *Piece, b *Board) int {
	written := 0
	for i, pos := range p.Positions() {
		if pos.Y < 0 || !b.InBounds(pos.X, pos.Y) {
			continue
		}
		b.put(pos.X, pos.Y, p.Cells[i].normalize())
		written++
	}
	return written
}
