package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfBounds is returned when a board coordinate lies outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Point is a board coordinate or a relative shape offset. Y grows downward.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Board is the fixed-size grid of settled cells. Cells are stored row-major.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x, y) lies inside the grid.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d board", ErrOutOfBounds, x, y, b.width, b.height)
}

// Get returns the cell at (x, y).
func (b *Board) Get(x, y int) (Cell, error) {
	if !b.InBounds(x, y) {
		return Cell{}, b.outOfBounds(x, y)
	}
	return b.cells[b.index(x, y)], nil
}

// Set overwrites the cell at (x, y).
func (b *Board) Set(x, y int, cell Cell) error {
	if !b.InBounds(x, y) {
		return b.outOfBounds(x, y)
	}
	b.cells[b.index(x, y)] = cell.normalize()
	return nil
}

// Clear empties the cell at (x, y).
func (b *Board) Clear(x, y int) error {
	return b.Set(x, y, Cell{})
}

// IsOccupied reports whether (x, y) holds a block. Coordinates outside the
// grid are never occupied.
func (b *Board) IsOccupied(x, y int) bool {
	return b.InBounds(x, y) && !b.cells[b.index(x, y)].Empty()
}

// at and put skip the bounds check; callers iterate within the grid.
func (b *Board) at(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

func (b *Board) put(x, y int, cell Cell) {
	b.cells[b.index(x, y)] = cell
}

// Occupied returns the number of non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for _, c := range b.cells {
		if !c.Empty() {
			n++
		}
	}
	return n
}

// Reset empties every cell.
func (b *Board) Reset() {
	clear(b.cells)
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{width: b.width, height: b.height, cells: cells}
}

// Equal reports whether both boards have the same dimensions and cells.
func (b *Board) Equal(o *Board) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Snapshot returns a read-only copy of the grid for renderers.
func (b *Board) Snapshot() Snapshot {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Snapshot{width: b.width, height: b.height, cells: cells}
}

// String renders the board as whitespace separated cell tokens, one row per
// line. ParseBoard accepts the same format.
func (b *Board) String() string {
	return formatCells(b.width, b.height, b.cells)
}

// Snapshot is an immutable view of a board at one point in time.
type Snapshot struct {
	width  int
	height int
	cells  []Cell
}

func (s Snapshot) Width() int  { return s.width }
func (s Snapshot) Height() int { return s.height }

// At returns the cell at (x, y), or an empty cell outside the grid.
func (s Snapshot) At(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{}
	}
	return s.cells[y*s.width+x]
}

func (s Snapshot) String() string {
	return formatCells(s.width, s.height, s.cells)
}

// Board returns a mutable copy of the snapshot, for planners that try
// placements without touching the game.
func (s Snapshot) Board() *Board {
	cells := make([]Cell, len(s.cells))
	copy(cells, s.cells)
	return &Board{width: s.width, height: s.height, cells: cells}
}

func formatCells(width, height int, cells []Cell) string {
	var sb strings.Builder
	for y := range height {
		for x := range width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cells[y*width+x].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from rows of whitespace separated tokens: "." for
// an empty cell, a color letter (R G B Y O P C) for a block, optionally
// followed by "-" (row clear), "|" (column clear) or "*" (area clear).
// Blank lines are ignored and every row must have the same width.
func ParseBoard(text string) (*Board, error) {
	var rows [][]Cell
	for line := range strings.Lines(text) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]Cell, len(fields))
		for i, tok := range fields {
			cell, err := parseCell(tok)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", len(rows), i, err)
			}
			row[i] = cell
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", len(rows), len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty board text")
	}

	b := NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, cell := range row {
			b.put(x, y, cell)
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard that panics on malformed input.
func MustParseBoard(text string) *Board {
	b, err := ParseBoard(text)
	if err != nil {
		panic(err)
	}
	return b
}

func parseCell(tok string) (Cell, error) {
	if tok == "." {
		return Cell{}, nil
	}
	color := ColorNone
	for i, l := range colorLetters {
		if i > 0 && tok[0] == l {
			color = Color(i)
			break
		}
	}
	if color == ColorNone {
		return Cell{}, fmt.Errorf("unknown cell token %q", tok)
	}

	kind := KindNone
	if suffix := tok[1:]; suffix != "" {
		found := false
		for i, s := range kindSuffix {
			if i > 0 && s == suffix {
				kind, found = Kind(i), true
				break
			}
		}
		if !found {
			return Cell{}, fmt.Errorf("unknown cell token %q", tok)
		}
	}
	return Special(color, kind), nil
}
