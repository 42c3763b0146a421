package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/candytris/game"
	"github.com/plus3/candytris/loop"
)

// EventLog keeps the most recent resolution events, the cascade length of
// every resolved landing and the score after every landing.
type EventLog struct {
	max     int
	frame   int64
	entries []string
	scores  *History
	passes  *History
}

func NewEventLog(max int) *EventLog {
	return &EventLog{
		max:    max,
		scores: NewHistory(max),
		passes: NewHistory(max),
	}
}

// Execute records this frame's events.
func (l *EventLog) Execute(frame *loop.Frame) {
	l.frame++
	for _, e := range frame.Events {
		switch e.Kind {
		case game.EventCascadeFinished:
			l.passes.Push(float32(e.Pass))
			l.add(fmt.Sprintf("#%d %s", l.frame, e))
		case game.EventCleared, game.EventGameOver, game.EventReset:
			l.add(fmt.Sprintf("#%d %s", l.frame, e))
		}
	}
	if frame.Has(game.EventLanded) {
		l.scores.Push(float32(frame.Game.Score()))
	}
}

func (l *EventLog) add(line string) {
	l.entries = append(l.entries, line)
	if over := len(l.entries) - l.max; over > 0 {
		l.entries = append(l.entries[:0], l.entries[over:]...)
	}
}

// Entries returns the recorded lines from oldest to newest.
func (l *EventLog) Entries() []string {
	return l.entries
}

// Scores returns the score sampled after each landing.
func (l *EventLog) Scores() *History {
	return l.scores
}

// Passes returns the number of passes of each finished cascade.
func (l *EventLog) Passes() *History {
	return l.passes
}

func (l *EventLog) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 380), imgui.CondOnce)
	if !imgui.BeginV("Cascades", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if scores := l.scores.Values(); len(scores) > 0 {
		if implot.BeginPlotV("Score", imgui.NewVec2(-1, 150), 0) {
			implot.SetupAxesV("Landing", "Score", 0, implot.AxisFlagsAutoFit)
			implot.PlotLineFloatPtrInt("score", &scores[0], int32(len(scores)))
			implot.EndPlot()
		}
	}

	if passes := l.passes.Values(); len(passes) > 0 {
		imgui.Text(fmt.Sprintf("Passes per landing (max %.0f)", l.passes.Max()))
		imgui.PlotLinesFloatPtr("##passes", &passes[0], int32(len(passes)))
	}

	imgui.Separator()
	start := max(len(l.entries)-20, 0)
	for i := len(l.entries) - 1; i >= start; i-- {
		imgui.Text(l.entries[i])
	}

	imgui.End()
}
