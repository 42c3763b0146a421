// Package termui draws a game on a tcell screen and maps terminal keys to
// player commands.
package termui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/candytris/game"
	"github.com/plus3/candytris/loop"
)

// View is the read-only surface of a game the renderer needs.
type View interface {
	Snapshot() game.Snapshot
	Current() *game.Piece
	Next() *game.Piece
	GhostY() int
	Score() int
	State() game.State
	Paused() bool
	Stats() game.Stats
}

// Screen layout. Every board cell is two terminal columns wide.
const (
	boardX     = 1
	boardY     = 1
	cellWidth  = 2
	sidebarGap = 3
)

const (
	glyphBlock  = '█'
	glyphGhost  = '░'
	glyphEmpty  = '·'
	glyphRow    = '═'
	glyphColumn = '║'
	glyphArea   = '▓'
)

var colors = map[game.Color]tcell.Color{
	game.ColorRed:    tcell.ColorRed,
	game.ColorGreen:  tcell.ColorGreen,
	game.ColorBlue:   tcell.ColorBlue,
	game.ColorYellow: tcell.ColorYellow,
	game.ColorOrange: tcell.ColorOrange,
	game.ColorPurple: tcell.ColorPurple,
	game.ColorCyan:   tcell.ColorAqua,
}

var (
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEmpty   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true).Bold(true)
)

// CellStyle is the style used for a settled or falling block of color c.
func CellStyle(c game.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(colors[c])
}

// GhostStyle is the style of the landing preview for color c.
func GhostStyle(c game.Color) tcell.Style {
	return CellStyle(c).Dim(true)
}

// Glyph returns the rune used for a cell kind.
func Glyph(k game.Kind) rune {
	switch k {
	case game.KindRowClear:
		return glyphRow
	case game.KindColumnClear:
		return glyphColumn
	case game.KindAreaClear:
		return glyphArea
	}
	return glyphBlock
}

// Renderer draws a View onto a tcell screen.
type Renderer struct {
	Screen tcell.Screen
	// Help lines are printed under the sidebar.
	Help []string
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		Screen: screen,
		Help: []string{
			"←/→ a/d  move",
			"↑ w x    rotate",
			"↓ s      soft drop",
			"space    hard drop",
			"p pause  r restart",
			"F2 copy  q quit",
		},
	}
}

// BoardOrigin returns the screen position of board cell (x, y).
func BoardOrigin(x, y int) (int, int) {
	return boardX + x*cellWidth, boardY + y
}

// Draw clears the screen, draws the whole frame and shows it.
func (r *Renderer) Draw(v View) {
	s := r.Screen
	s.Clear()

	snap := v.Snapshot()
	r.drawBorder(snap.Width(), snap.Height())

	for y := range snap.Height() {
		for x := range snap.Width() {
			r.drawCell(x, y, snap.At(x, y), false)
		}
	}

	if v.State() != game.StateGameOver {
		if cur := v.Current(); cur != nil {
			r.drawGhost(cur, v.GhostY(), snap)
			for i, p := range cur.Positions() {
				if p.Y >= 0 {
					r.drawCell(p.X, p.Y, cur.Cells[i], false)
				}
			}
		}
	}

	r.drawSidebar(v, snap.Width())

	switch {
	case v.State() == game.StateGameOver:
		r.drawOverlay(snap, "GAME OVER", "r to restart")
	case v.Paused():
		r.drawOverlay(snap, "PAUSED", "p to resume")
	}

	s.Show()
}

func (r *Renderer) drawBorder(w, h int) {
	right := boardX + w*cellWidth
	bottom := boardY + h
	for y := boardY; y < bottom; y++ {
		r.Screen.SetContent(boardX-1, y, '│', nil, styleBorder)
		r.Screen.SetContent(right, y, '│', nil, styleBorder)
	}
	for x := boardX; x < right; x++ {
		r.Screen.SetContent(x, boardY-1, '─', nil, styleBorder)
		r.Screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	r.Screen.SetContent(boardX-1, boardY-1, '┌', nil, styleBorder)
	r.Screen.SetContent(right, boardY-1, '┐', nil, styleBorder)
	r.Screen.SetContent(boardX-1, bottom, '└', nil, styleBorder)
	r.Screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (r *Renderer) drawCell(x, y int, c game.Cell, ghost bool) {
	sx, sy := BoardOrigin(x, y)
	if c.Empty() {
		r.Screen.SetContent(sx, sy, ' ', nil, styleEmpty)
		r.Screen.SetContent(sx+1, sy, glyphEmpty, nil, styleEmpty)
		return
	}

	glyph, style := Glyph(c.Kind), CellStyle(c.Color)
	if ghost {
		glyph, style = glyphGhost, GhostStyle(c.Color)
	}
	r.Screen.SetContent(sx, sy, glyph, nil, style)
	r.Screen.SetContent(sx+1, sy, glyph, nil, style)
}

func (r *Renderer) drawGhost(cur *game.Piece, ghostY int, snap game.Snapshot) {
	if ghostY == cur.Y {
		return
	}
	for i, off := range cur.Offsets() {
		x, y := cur.X+off.X, ghostY+off.Y
		if y < 0 || !snap.At(x, y).Empty() {
			continue
		}
		r.drawCell(x, y, cur.Cells[i], true)
	}
}

func (r *Renderer) drawSidebar(v View, boardWidth int) {
	x := boardX + boardWidth*cellWidth + sidebarGap
	y := boardY

	r.drawText(x, y, styleLabel, "SCORE")
	r.drawText(x, y+1, styleText, fmt.Sprintf("%d", v.Score()))

	r.drawText(x, y+3, styleLabel, "NEXT")
	if next := v.Next(); next != nil {
		for i, off := range next.Offsets() {
			c := next.Cells[i]
			px, py := x+off.X*cellWidth, y+4+off.Y
			r.Screen.SetContent(px, py, Glyph(c.Kind), nil, CellStyle(c.Color))
			r.Screen.SetContent(px+1, py, Glyph(c.Kind), nil, CellStyle(c.Color))
		}
	}

	stats := v.Stats()
	r.drawText(x, y+9, styleText, fmt.Sprintf("pieces  %d", stats.PiecesPlaced))
	r.drawText(x, y+10, styleText, fmt.Sprintf("cascade %d", stats.LongestCascade))
	r.drawText(x, y+11, styleText, fmt.Sprintf("purges  %d", stats.ColorPurges))

	for i, line := range r.Help {
		r.drawText(x, y+13+i, styleText, line)
	}
}

func (r *Renderer) drawOverlay(snap game.Snapshot, title, hint string) {
	mid := boardY + snap.Height()/2
	width := snap.Width() * cellWidth
	r.drawCentered(mid, width, styleOverlay, title)
	r.drawCentered(mid+1, width, styleText, hint)
}

func (r *Renderer) drawCentered(y, width int, style tcell.Style, text string) {
	n := len([]rune(text))
	x := boardX + max((width-n)/2, 0)
	r.drawText(x, y, style, text)
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		r.Screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// System redraws the game at the end of every frame.
type System struct {
	Renderer *Renderer
}

func (s *System) Execute(frame *loop.Frame) {
	frame.Commands.Defer(func() { s.Renderer.Draw(frame.Game) })
}
