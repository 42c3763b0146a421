package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/candytris/game"
	"github.com/plus3/candytris/loop"
)

var cellColors = map[game.Color][3]float32{
	game.ColorRed:    {0.90, 0.25, 0.25},
	game.ColorGreen:  {0.30, 0.80, 0.35},
	game.ColorBlue:   {0.30, 0.50, 0.95},
	game.ColorYellow: {0.95, 0.85, 0.25},
	game.ColorOrange: {0.95, 0.55, 0.15},
	game.ColorPurple: {0.65, 0.35, 0.85},
	game.ColorCyan:   {0.25, 0.85, 0.90},
}

// ColorVec returns the display color of a block color; empty cells are grey.
func ColorVec(c game.Color) imgui.Vec4 {
	rgb, ok := cellColors[c]
	if !ok {
		return imgui.NewVec4(0.4, 0.4, 0.4, 1)
	}
	return imgui.NewVec4(rgb[0], rgb[1], rgb[2], 1)
}

// BoardPanel inspects the board cell by cell and offers loop controls.
type BoardPanel struct {
	Input *loop.InputQueue
}

func (b *BoardPanel) Render(g *game.Game) {
	imgui.SetNextWindowPosV(imgui.NewVec2(360, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 520), imgui.CondOnce)
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(g.String())
	if cur := g.Current(); cur != nil {
		imgui.Text(fmt.Sprintf("Piece: %s rot=%d at (%d,%d) ghost y=%d", cur.Shape.Name, cur.Rotation, cur.X, cur.Y, g.GhostY()))
	}
	if next := g.Next(); next != nil {
		imgui.Text(fmt.Sprintf("Next: %s", next.Shape.Name))
	}

	if imgui.Button("Pause") {
		b.Input.Push(game.CommandPause)
	}
	imgui.SameLine()
	if imgui.Button("Hard drop") {
		b.Input.Push(game.CommandHardDrop)
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		b.Input.Push(game.CommandRestart)
	}

	imgui.Separator()

	snap := g.Snapshot()
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("BoardTable", int32(snap.Width()), tableFlags, imgui.NewVec2(0, 0), 0) {
		for y := range snap.Height() {
			imgui.TableNextRow()
			for x := range snap.Width() {
				imgui.TableNextColumn()
				cell := snap.At(x, y)
				imgui.TextColored(ColorVec(cell.Color), cell.String())
			}
		}
		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Stats") {
		stats := g.Stats()
		imgui.BulletText(fmt.Sprintf("Pieces placed: %d", stats.PiecesPlaced))
		imgui.BulletText(fmt.Sprintf("Passes: %d (longest cascade %d)", stats.Passes, stats.LongestCascade))
		imgui.BulletText(fmt.Sprintf("Cells removed: %d", stats.CellsRemoved))
		imgui.BulletText(fmt.Sprintf("Area blasts: %d", stats.AreaBlasts))
		imgui.BulletText(fmt.Sprintf("Specials fired: %d", stats.SpecialsFired))
		imgui.BulletText(fmt.Sprintf("Color purges: %d", stats.ColorPurges))
		imgui.BulletText(fmt.Sprintf("Board clears: %d", stats.BoardClears))
		imgui.BulletText(fmt.Sprintf("Hidden cells lost: %d", stats.HiddenCellsLost))
		imgui.TreePop()
	}

	imgui.End()
}
