package game

import (
	"github.com/kamstrup/intmap"
)

// CellSet is a set of board coordinates that remembers insertion order.
// Membership is indexed by y*width+x.
type CellSet struct {
	width  int
	index  *intmap.Map[int, struct{}]
	points []Point
}

// NewCellSet creates an empty set for a board of the given width.
func NewCellSet(width int) *CellSet {
	return &CellSet{
		width: width,
		index: intmap.New[int, struct{}](32),
	}
}

// Add inserts p and reports whether it was not already present.
func (s *CellSet) Add(p Point) bool {
	key := p.Y*s.width + p.X
	if _, ok := s.index.Get(key); ok {
		return false
	}
	s.index.Put(key, struct{}{})
	s.points = append(s.points, p)
	return true
}

// Has reports whether p is in the set.
func (s *CellSet) Has(p Point) bool {
	_, ok := s.index.Get(p.Y*s.width + p.X)
	return ok
}

// Len returns the number of coordinates in the set.
func (s *CellSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.points)
}

// Points returns the coordinates in insertion order. The slice must not be
// modified.
func (s *CellSet) Points() []Point {
	if s == nil {
		return nil
	}
	return s.points
}

// AddRect inserts every coordinate of the rectangle [x0,x1]×[y0,y1] that lies
// on the board.
func (s *CellSet) AddRect(b *Board, x0, y0, x1, y1 int) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.width-1), min(y1, b.height-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.Add(Point{X: x, Y: y})
		}
	}
}
