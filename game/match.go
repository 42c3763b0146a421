package game

import "strings"

const (
	// MinRun is the shortest run that counts as a match.
	MinRun = 3
	// PointsPerCell is awarded for every cell of a qualifying run.
	PointsPerCell = 100

	areaRunLength  = 4
	purgeCellCount = 5
	clearCellCount = 6
)

// Escalation records which expansion rules fired during a detection pass.
type Escalation uint8

const (
	// EscalateArea: a run of exactly four removed its padded rectangle.
	EscalateArea Escalation = 1 << iota
	// EscalateSpecial: a special block in a run fired its area effect.
	EscalateSpecial
	// EscalateColorPurge: a color with exactly five matched cells was purged.
	EscalateColorPurge
	// EscalateBoardClear: a color with six or more matched cells cleared the board.
	EscalateBoardClear
)

func (e Escalation) Has(flag Escalation) bool {
	return e&flag != 0
}

func (e Escalation) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	for _, f := range []struct {
		flag Escalation
		name string
	}{
		{EscalateArea, "area"},
		{EscalateSpecial, "special"},
		{EscalateColorPurge, "color-purge"},
		{EscalateBoardClear, "board-clear"},
	} {
		if e.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "+")
}

// Run is a maximal line of same-colored occupied cells.
type Run struct {
	Color      Color
	Start      Point
	Length     int
	Horizontal bool
}

// Points returns the coordinates covered by the run.
func (r Run) Points() []Point {
	step := Point{Y: 1}
	if r.Horizontal {
		step = Point{X: 1}
	}
	pts := make([]Point, r.Length)
	p := r.Start
	for i := range pts {
		pts[i] = p
		p = p.Add(step)
	}
	return pts
}

// End returns the last coordinate of the run.
func (r Run) End() Point {
	if r.Horizontal {
		return Point{X: r.Start.X + r.Length - 1, Y: r.Start.Y}
	}
	return Point{X: r.Start.X, Y: r.Start.Y + r.Length - 1}
}

// Match is the outcome of one detection pass over the board.
type Match struct {
	// Runs lists every qualifying run, rows first then columns.
	Runs []Run
	// Removed holds every coordinate to clear, escalations included.
	Removed *CellSet
	// Score is the sum of Length×PointsPerCell over Runs.
	Score int
	Flags Escalation
	// PurgedColors lists colors removed board-wide by the five-cell rule.
	PurgedColors []Color
	// Triggered lists special blocks that fired.
	Triggered []Point
}

// Empty reports whether the pass found nothing to remove.
func (m Match) Empty() bool {
	return m.Removed.Len() == 0
}

type detector struct {
	board  *Board
	match  Match
	groups map[Color]*CellSet
}

// Detect scans the board for runs of MinRun or more same-colored cells and
// computes the removal set with all escalations applied:
//
//   - every qualifying run is removed and scores its length × PointsPerCell;
//   - a run of exactly four also removes its bounding rectangle padded by one;
//   - a special block inside a run removes its row, column or 3×3 area;
//   - a color whose matched cells across the whole pass number exactly five
//     is removed everywhere on the board;
//   - a color whose matched cells number six or more clears the board.
//
// Rows are scanned before columns. Detect does not modify the board.
func Detect(b *Board) Match {
	d := &detector{
		board:  b,
		match:  Match{Removed: NewCellSet(b.width)},
		groups: make(map[Color]*CellSet),
	}

	for y := range b.height {
		d.scanLine(Point{X: 0, Y: y}, Point{X: 1}, b.width)
	}
	for x := range b.width {
		d.scanLine(Point{X: x, Y: 0}, Point{Y: 1}, b.height)
	}

	d.escalateColors()
	return d.match
}

// scanLine walks n cells from start in direction step and records every
// maximal run that qualifies.
func (d *detector) scanLine(start, step Point, n int) {
	runStart, runLen := start, 0
	var runColor Color

	flush := func() {
		if runColor != ColorNone && runLen >= MinRun {
			d.addRun(Run{Color: runColor, Start: runStart, Length: runLen, Horizontal: step.X != 0})
		}
	}

	p := start
	for range n {
		c := d.board.at(p.X, p.Y).Color
		if c != ColorNone && c == runColor {
			runLen++
		} else {
			flush()
			runStart, runLen, runColor = p, 1, c
		}
		p = p.Add(step)
	}
	flush()
}

func (d *detector) addRun(run Run) {
	m := &d.match
	m.Runs = append(m.Runs, run)
	m.Score += run.Length * PointsPerCell

	group, ok := d.groups[run.Color]
	if !ok {
		group = NewCellSet(d.board.width)
		d.groups[run.Color] = group
	}

	pts := run.Points()
	for _, p := range pts {
		m.Removed.Add(p)
		group.Add(p)
	}

	if run.Length == areaRunLength {
		end := run.End()
		m.Removed.AddRect(d.board, run.Start.X-1, run.Start.Y-1, end.X+1, end.Y+1)
		m.Flags |= EscalateArea
	}

	for _, p := range pts {
		cell := d.board.at(p.X, p.Y)
		if cell.Kind == KindNone || containsPoint(m.Triggered, p) {
			continue
		}
		d.trigger(p, cell.Kind)
	}
}

func (d *detector) trigger(p Point, kind Kind) {
	m := &d.match
	b := d.board
	switch kind {
	case KindRowClear:
		m.Removed.AddRect(b, 0, p.Y, b.width-1, p.Y)
	case KindColumnClear:
		m.Removed.AddRect(b, p.X, 0, p.X, b.height-1)
	case KindAreaClear:
		m.Removed.AddRect(b, p.X-1, p.Y-1, p.X+1, p.Y+1)
	default:
		return
	}
	m.Triggered = append(m.Triggered, p)
	m.Flags |= EscalateSpecial
}

// escalateColors applies the aggregate per-color rules once every row and
// column has been scanned.
func (d *detector) escalateColors() {
	m := &d.match
	b := d.board

	for _, c := range Palette(MaxColors) {
		if d.groups[c].Len() >= clearCellCount {
			m.Flags |= EscalateBoardClear
			m.Removed = NewCellSet(b.width)
			for y := range b.height {
				for x := range b.width {
					if !b.at(x, y).Empty() {
						m.Removed.Add(Point{X: x, Y: y})
					}
				}
			}
			return
		}
	}

	for _, c := range Palette(MaxColors) {
		if d.groups[c].Len() != purgeCellCount {
			continue
		}
		m.Flags |= EscalateColorPurge
		m.PurgedColors = append(m.PurgedColors, c)
		for y := range b.height {
			for x := range b.width {
				if b.at(x, y).Color == c {
					m.Removed.Add(Point{X: x, Y: y})
				}
			}
		}
	}
}

// Remove clears every coordinate of the match from the board and returns the
// number of blocks that were actually removed.
func Remove(b *Board, m Match) int {
	removed := 0
	for _, p := range m.Removed.Points() {
		if !b.InBounds(p.X, p.Y) || b.at(p.X, p.Y).Empty() {
			continue
		}
		b.put(p.X, p.Y, Cell{})
		removed++
	}
	return removed
}

func containsPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}
