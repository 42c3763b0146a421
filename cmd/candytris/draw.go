package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/candytris/game"
	"golang.org/x/image/font/basicfont"
)

const (
	cellSize        = 28
	margin          = 20
	sidebarWidth    = 180
	debugPanelWidth = 800
)

var (
	background  = color.RGBA{R: 18, G: 18, B: 28, A: 255}
	wellColor   = color.RGBA{R: 30, G: 30, B: 44, A: 255}
	gridColor   = color.RGBA{R: 44, G: 44, B: 60, A: 255}
	borderColor = color.RGBA{R: 140, G: 140, B: 170, A: 255}
	textColor   = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	dimText     = color.RGBA{R: 150, G: 150, B: 170, A: 255}
	markColor   = color.RGBA{R: 255, G: 255, B: 255, A: 220}
	shadeColor  = color.RGBA{R: 0, G: 0, B: 0, A: 170}
)

var blockColors = map[game.Color]color.RGBA{
	game.ColorRed:    {R: 230, G: 64, B: 64, A: 255},
	game.ColorGreen:  {R: 76, G: 204, B: 90, A: 255},
	game.ColorBlue:   {R: 76, G: 128, B: 242, A: 255},
	game.ColorYellow: {R: 242, G: 217, B: 64, A: 255},
	game.ColorOrange: {R: 242, G: 140, B: 38, A: 255},
	game.ColorPurple: {R: 166, G: 90, B: 217, A: 255},
	game.ColorCyan:   {R: 64, G: 217, B: 230, A: 255},
}

func windowSize(w, h int) (int, int) {
	return margin*3 + w*cellSize + sidebarWidth, margin*2 + h*cellSize
}

func drawGame(screen *ebiten.Image, g *game.Game) {
	screen.Fill(background)

	snap := g.Snapshot()
	bw, bh := float32(snap.Width()*cellSize), float32(snap.Height()*cellSize)
	vector.DrawFilledRect(screen, margin, margin, bw, bh, wellColor, false)
	vector.StrokeRect(screen, margin-1, margin-1, bw+2, bh+2, 2, borderColor, false)

	for y := range snap.Height() {
		for x := range snap.Width() {
			cell := snap.At(x, y)
			if cell.Empty() {
				vector.StrokeRect(screen, cellX(x), cellY(y), cellSize, cellSize, 0.5, gridColor, false)
				continue
			}
			drawBlock(screen, cellX(x), cellY(y), cell)
		}
	}

	if cur := g.Current(); cur != nil {
		ghostY := g.GhostY()
		for i, off := range cur.Offsets() {
			c := blockColors[cur.Cells[i].Color]
			c.A = 110
			vector.StrokeRect(screen, cellX(cur.X+off.X)+2, cellY(ghostY+off.Y)+2, cellSize-4, cellSize-4, 2, c, false)
		}
		for i, p := range cur.Positions() {
			if p.Y >= 0 {
				drawBlock(screen, cellX(p.X), cellY(p.Y), cur.Cells[i])
			}
		}
	}

	drawSidebar(screen, g, margin*2+int(bw))

	switch {
	case g.State() == game.StateGameOver:
		drawBanner(screen, bw, bh, "GAME OVER", "R to restart")
	case g.Paused():
		drawBanner(screen, bw, bh, "PAUSED", "P to resume")
	}
}

func cellX(x int) float32 { return float32(margin + x*cellSize) }
func cellY(y int) float32 { return float32(margin + y*cellSize) }

func drawBlock(screen *ebiten.Image, x, y float32, cell game.Cell) {
	vector.DrawFilledRect(screen, x+1, y+1, cellSize-2, cellSize-2, blockColors[cell.Color], false)

	const s = cellSize
	switch cell.Kind {
	case game.KindRowClear:
		vector.DrawFilledRect(screen, x+5, y+s/2-2, s-10, 4, markColor, false)
	case game.KindColumnClear:
		vector.DrawFilledRect(screen, x+s/2-2, y+5, 4, s-10, markColor, false)
	case game.KindAreaClear:
		vector.StrokeRect(screen, x+7, y+7, s-14, s-14, 2, markColor, false)
	}
}

func drawSidebar(screen *ebiten.Image, g *game.Game, left int) {
	face := basicfont.Face7x13
	y := margin + 13

	text.Draw(screen, "SCORE", face, left, y, dimText)
	text.Draw(screen, fmt.Sprintf("%d", g.Score()), face, left, y+18, textColor)

	y += 50
	text.Draw(screen, "NEXT", face, left, y, dimText)
	if next := g.Next(); next != nil {
		for i, off := range next.Offsets() {
			x := float32(left + off.X*cellSize*2/3)
			py := float32(y + 10 + off.Y*cellSize*2/3)
			c := blockColors[next.Cells[i].Color]
			vector.DrawFilledRect(screen, x, py, cellSize*2/3-2, cellSize*2/3-2, c, false)
		}
	}

	stats := g.Stats()
	y += 110
	for _, line := range []string{
		fmt.Sprintf("pieces  %d", stats.PiecesPlaced),
		fmt.Sprintf("cascade %d", stats.LongestCascade),
		fmt.Sprintf("blasts  %d", stats.AreaBlasts),
		fmt.Sprintf("purges  %d", stats.ColorPurges),
		fmt.Sprintf("clears  %d", stats.BoardClears),
	} {
		text.Draw(screen, line, face, left, y, textColor)
		y += 16
	}

	y += 20
	for _, line := range []string{
		"arrows/WASD move",
		"up/W/X rotate",
		"space   drop",
		"P pause  R restart",
		"F2 copy  Q quit",
	} {
		text.Draw(screen, line, face, left, y, dimText)
		y += 16
	}
}

func drawBanner(screen *ebiten.Image, bw, bh float32, title, hint string) {
	vector.DrawFilledRect(screen, margin, margin+bh/2-30, bw, 60, shadeColor, false)

	face := basicfont.Face7x13
	center := func(s string) int {
		return margin + (int(bw)-len(s)*7)/2
	}
	mid := margin + int(bh/2)
	text.Draw(screen, title, face, center(title), mid-4, textColor)
	text.Draw(screen, hint, face, center(hint), mid+16, dimText)
}
