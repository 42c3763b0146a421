package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/candytris/game"
	"github.com/plus3/candytris/loop"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	opts := game.DefaultOptions()
	opts.Seed = 1
	opts.SpecialChance = 0
	g, err := game.New(opts)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

type recordSystem struct {
	name  string
	order *[]string
	seen  []game.EventKind
}

func (s *recordSystem) Execute(frame *loop.Frame) {
	*s.order = append(*s.order, s.name)
	s.seen = s.seen[:0]
	for _, e := range frame.Events {
		s.seen = append(s.seen, e.Kind)
	}
}

type hardDropSystem struct{}

func (s *hardDropSystem) Execute(frame *loop.Frame) {
	frame.Game.Apply(game.CommandHardDrop)
}

type queuePauseSystem struct {
	pausedDuringFrame bool
}

func (s *queuePauseSystem) Execute(frame *loop.Frame) {
	frame.Commands.Apply(game.CommandPause)
	s.pausedDuringFrame = frame.Game.Paused()
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		scheduler := loop.NewScheduler(newGame(t))

		var order []string
		scheduler.Register(&recordSystem{name: "first", order: &order})
		scheduler.Register(&recordSystem{name: "second", order: &order})

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		want := []string{"first", "second", "first", "second"}
		if len(order) != len(want) {
			t.Fatalf("expected %v, got %v", want, order)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Errorf("expected %v, got %v", want, order)
				break
			}
		}
	})

	t.Run("events reach later systems in the same frame", func(t *testing.T) {
		scheduler := loop.NewScheduler(newGame(t))

		var order []string
		before := &recordSystem{name: "before", order: &order}
		after := &recordSystem{name: "after", order: &order}
		scheduler.Register(before)
		scheduler.Register(&hardDropSystem{})
		scheduler.Register(after)

		scheduler.Once(0)

		if len(before.seen) != 1 || before.seen[0] != game.EventSpawned {
			t.Errorf("expected only the initial spawn before the drop, got %v", before.seen)
		}
		if len(after.seen) < 3 || after.seen[1] != game.EventLanded {
			t.Errorf("expected landing events after the drop, got %v", after.seen)
		}
	})

	t.Run("commands apply after every system ran", func(t *testing.T) {
		g := newGame(t)
		scheduler := loop.NewScheduler(g)

		system := &queuePauseSystem{}
		scheduler.Register(system)

		scheduler.Once(0)
		if system.pausedDuringFrame {
			t.Error("command applied before the frame ended")
		}
		if !g.Paused() {
			t.Error("expected game to be paused after the frame")
		}

		scheduler.Once(0)
		if !system.pausedDuringFrame {
			t.Error("expected the next frame to observe the pause")
		}
		if g.Paused() {
			t.Error("expected the second pause to resume the game")
		}
	})

	t.Run("deferred functions run after queued commands", func(t *testing.T) {
		g := newGame(t)
		scheduler := loop.NewScheduler(g)

		var pausedInDefer bool
		scheduler.Register(systemFunc(func(frame *loop.Frame) {
			frame.Commands.Defer(func() { pausedInDefer = frame.Game.Paused() })
			frame.Commands.Apply(game.CommandPause)
		}))

		scheduler.Once(0)
		if !pausedInDefer {
			t.Error("expected deferred function to observe the applied command")
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler(newGame(t))

		var order []string
		scheduler.Register(&recordSystem{name: "tick", order: &order})

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if len(order) == 0 {
			t.Error("expected system to execute at least once")
		}
	})
}

type systemFunc func(frame *loop.Frame)

func (f systemFunc) Execute(frame *loop.Frame) { f(frame) }
