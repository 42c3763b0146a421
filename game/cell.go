package game

// Color identifies a block color. The zero value means "no color" and is only
// ever held by empty cells.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorOrange
	ColorPurple
	ColorCyan
)

// MaxColors is the largest palette a game can be configured with.
const MaxColors = int(ColorCyan)

var colorNames = [...]string{"none", "red", "green", "blue", "yellow", "orange", "purple", "cyan"}

var colorLetters = [...]byte{'.', 'R', 'G', 'B', 'Y', 'O', 'P', 'C'}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "invalid"
}

// Letter returns the single character used for the color in board dumps.
func (c Color) Letter() byte {
	if int(c) < len(colorLetters) {
		return colorLetters[c]
	}
	return '?'
}

// Palette returns the first n colors of the fixed palette.
func Palette(n int) []Color {
	n = max(0, min(n, MaxColors))
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color(i + 1)
	}
	return colors
}

// Kind tags a cell as a plain block or one of the special clearing blocks.
type Kind uint8

const (
	KindNone Kind = iota
	KindRowClear
	KindColumnClear
	KindAreaClear
)

var kindNames = [...]string{"none", "row-clear", "column-clear", "area-clear"}

var kindSuffix = [...]string{"", "-", "|", "*"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Cell is a single board slot. The zero value is an empty cell.
type Cell struct {
	Color Color
	Kind  Kind
}

// Block returns an occupied plain cell of the given color.
func Block(c Color) Cell {
	return Cell{Color: c}
}

// Special returns an occupied cell of the given color and special kind.
func Special(c Color, k Kind) Cell {
	return Cell{Color: c, Kind: k}
}

// Empty reports whether the cell holds no block.
func (c Cell) Empty() bool {
	return c.Color == ColorNone
}

// IsSpecial reports whether the cell is an occupied special block.
func (c Cell) IsSpecial() bool {
	return !c.Empty() && c.Kind != KindNone
}

// normalize enforces that an empty cell never carries a kind.
func (c Cell) normalize() Cell {
	if c.Color == ColorNone {
		return Cell{}
	}
	return c
}

func (c Cell) String() string {
	if c.Empty() {
		return "."
	}
	s := string(c.Color.Letter())
	if int(c.Kind) < len(kindSuffix) {
		s += kindSuffix[c.Kind]
	}
	return s
}
