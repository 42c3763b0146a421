package game

import (
	"fmt"
	"strings"
)

// Shape is one catalog entry: a fixed list of rotation states, each a list of
// cell offsets inside a Size×Size box anchored at its top-left corner.
// Offset i of every state refers to the same physical cell, so per-cell
// colors follow their cell through rotation.
type Shape struct {
	Name      string
	Size      int
	Rotations [][]Point
}

// Catalog is a named, fixed set of shapes.
type Catalog struct {
	Name   string
	Shapes []*Shape
}

// CatalogName selects one of the built-in catalogs.
type CatalogName string

const (
	// CatalogClassic is the seven tetromino catalog.
	CatalogClassic CatalogName = "classic"
	// CatalogCompact is the three shape catalog (T, line, square).
	CatalogCompact CatalogName = "compact"
)

var (
	shapeO = mustShape("O", 1, "XX", "XX")
	shapeI = mustShape("I", 4, "....", "XXXX", "....", "....")
	shapeT = mustShape("T", 4, ".X.", "XXX", "...")
	shapeS = mustShape("S", 4, ".XX", "XX.", "...")
	shapeZ = mustShape("Z", 4, "XX.", ".XX", "...")
	shapeJ = mustShape("J", 4, "X..", "XXX", "...")
	shapeL = mustShape("L", 4, "..X", "XXX", "...")
)

var catalogs = map[CatalogName]*Catalog{
	CatalogClassic: {Name: string(CatalogClassic), Shapes: []*Shape{shapeO, shapeI, shapeT, shapeS, shapeZ, shapeJ, shapeL}},
	CatalogCompact: {Name: string(CatalogCompact), Shapes: []*Shape{shapeT, shapeI, shapeO}},
}

// LookupCatalog returns the built-in catalog with the given name.
func LookupCatalog(name CatalogName) (*Catalog, bool) {
	c, ok := catalogs[name]
	return c, ok
}

// ShapeByName finds a shape in the catalog.
func (c *Catalog) ShapeByName(name string) (*Shape, bool) {
	for _, s := range c.Shapes {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Cells returns the number of cells in the shape.
func (s *Shape) Cells() int {
	return len(s.Rotations[0])
}

// State returns the offsets of rotation state r, wrapping.
func (s *Shape) State(r int) []Point {
	n := len(s.Rotations)
	return s.Rotations[((r%n)+n)%n]
}

// Bounds returns the minimum and maximum offsets of rotation state r.
func (s *Shape) Bounds(r int) (lo, hi Point) {
	state := s.State(r)
	lo, hi = state[0], state[0]
	for _, p := range state[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi
}

func (s *Shape) String() string {
	return s.Name
}

// mustShape builds a shape from a square pattern of 'X' and '.' rows.
// Further rotation states are produced by turning the pattern clockwise
// inside its box.
func mustShape(name string, rotations int, rows ...string) *Shape {
	size := len(rows)
	var base []Point
	for y, row := range rows {
		if len(row) != size {
			panic(fmt.Sprintf("shape %s: row %q is not %d wide", name, row, size))
		}
		for x, ch := range row {
			if ch == 'X' {
				base = append(base, Point{X: x, Y: y})
			}
		}
	}
	if len(base) == 0 || rotations < 1 {
		panic("shape " + name + " has no cells")
	}

	shape := &Shape{Name: name, Size: size, Rotations: [][]Point{base}}
	prev := base
	for range rotations - 1 {
		next := make([]Point, len(prev))
		for i, p := range prev {
			next[i] = Point{X: size - 1 - p.Y, Y: p.X}
		}
		shape.Rotations = append(shape.Rotations, next)
		prev = next
	}
	return shape
}

// Pattern renders rotation state r as '/' separated rows of 'X' and '.'.
func (s *Shape) Pattern(r int) string {
	grid := make([][]byte, s.Size)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", s.Size))
	}
	for _, p := range s.State(r) {
		grid[p.Y][p.X] = 'X'
	}
	lines := make([]string, s.Size)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return strings.Join(lines, "/")
}
