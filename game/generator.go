package game

import (
	"math/rand/v2"
)

var specialKinds = [...]Kind{KindRowClear, KindColumnClear, KindAreaClear}

// Generator produces random pieces from a catalog and color palette.
type Generator struct {
	rng           *rand.Rand
	catalog       *Catalog
	palette       []Color
	specialChance float64
	width         int
}

// NewGenerator creates a generator for a board of the given width. The same
// seed always yields the same piece sequence.
func NewGenerator(catalog *Catalog, palette []Color, specialChance float64, width int, seed uint64) *Generator {
	return &Generator{
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		catalog:       catalog,
		palette:       palette,
		specialChance: specialChance,
		width:         width,
	}
}

// Next returns a new piece with a uniformly chosen shape, a uniformly chosen
// color for each cell, horizontally centered with its topmost cell on row 0.
func (g *Generator) Next() *Piece {
	shape := g.catalog.Shapes[g.rng.IntN(len(g.catalog.Shapes))]

	cells := make([]Cell, shape.Cells())
	for i := range cells {
		cells[i] = Block(g.palette[g.rng.IntN(len(g.palette))])
		if g.specialChance > 0 && g.rng.Float64() < g.specialChance {
			cells[i].Kind = specialKinds[g.rng.IntN(len(specialKinds))]
		}
	}

	lo, hi := shape.Bounds(0)
	span := hi.X - lo.X + 1
	return &Piece{
		Shape:    shape,
		Rotation: 0,
		X:        (g.width-span)/2 - lo.X,
		Y:        -lo.Y,
		Cells:    cells,
	}
}
