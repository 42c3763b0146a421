// Package debugui provides Dear ImGui inspection panels for a running game.
// Panels sample engine state as loop systems and draw at the end of the
// frame through System.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/candytris/loop"
)

// Item holds a Dear ImGui render function drawn once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Hosts skip game key handling while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System defers the render function of every item to the end of the frame.
// It must run between the backend's BeginFrame and EndFrame.
type System struct {
	Items []Item
	Input InputState
}

// Add appends a render function.
func (s *System) Add(render func()) {
	s.Items = append(s.Items, Item{Render: render})
}

// Execute updates input state and queues all ImGui render functions for execution.
func (s *System) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}

// Install registers the standard panels on the scheduler and returns the
// system that draws them. Panel buttons push commands to input.
func Install(s *loop.Scheduler, input *loop.InputQueue) *System {
	perf := NewPerformancePanel(s, 120)
	events := NewEventLog(200)
	board := &BoardPanel{Input: input}

	ui := &System{}
	ui.Add(perf.Render)
	ui.Add(func() { board.Render(s.Game()) })
	ui.Add(events.Render)

	s.Register(perf)
	s.Register(events)
	s.Register(ui)
	return ui
}
