package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/candytris/loop"
)

// PerformancePanel shows frame times and per-system scheduler statistics.
type PerformancePanel struct {
	scheduler *loop.Scheduler
	frames    *History
}

func NewPerformancePanel(s *loop.Scheduler, historyFrames int) *PerformancePanel {
	return &PerformancePanel{
		scheduler: s,
		frames:    NewHistory(historyFrames),
	}
}

// Execute records the frame time in milliseconds.
func (p *PerformancePanel) Execute(frame *loop.Frame) {
	p.frames.Push(float32(frame.DeltaTime * 1000))
}

// FrameTimes returns the recorded frame times in milliseconds.
func (p *PerformancePanel) FrameTimes() *History {
	return p.frames
}

func (p *PerformancePanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 300), imgui.CondOnce)
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := p.scheduler.GetStats()
	avg := p.frames.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000 / avg
	}

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))
	imgui.Text(fmt.Sprintf("Rejected commands: %d", stats.RejectedCommands))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	if values := p.frames.Values(); len(values) > 0 {
		imgui.PlotLinesFloatPtr("##frametime", &values[0], int32(len(values)))
	}

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
