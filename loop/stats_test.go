package loop_test

import (
	"testing"
	"time"

	"github.com/plus3/candytris/game"
	"github.com/plus3/candytris/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sleepSystem struct {
	d time.Duration
}

func (s *sleepSystem) Execute(frame *loop.Frame) {
	time.Sleep(s.d)
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler(newGame(t))
	scheduler.Register(&loop.TickSystem{})
	scheduler.Register(&sleepSystem{d: time.Millisecond})

	empty := scheduler.GetStats()
	assert.Equal(t, 2, empty.SystemCount)
	assert.Equal(t, time.Duration(0), empty.Systems[0].MinDuration)

	for range 3 {
		scheduler.Once(0.016)
	}

	stats := scheduler.GetStats()
	assert.Equal(t, int64(3), stats.Frames)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	require.Len(t, stats.Systems, 2)

	assert.Equal(t, "TickSystem", stats.Systems[0].Name)
	assert.Equal(t, "sleepSystem", stats.Systems[1].Name)

	sleep := stats.Systems[1]
	assert.Equal(t, int64(3), sleep.ExecutionCount)
	assert.GreaterOrEqual(t, sleep.MinDuration, time.Millisecond)
	assert.GreaterOrEqual(t, sleep.MaxDuration, sleep.MinDuration)
	assert.Equal(t, sleep.TotalDuration/3, sleep.AvgDuration)
}

func TestSchedulerCountsRejectedCommands(t *testing.T) {
	scheduler := loop.NewScheduler(newGame(t))
	scheduler.Register(systemFunc(func(frame *loop.Frame) {
		frame.Commands.Apply(game.CommandPause)
		frame.Commands.Apply(game.CommandMoveLeft)
	}))

	scheduler.Once(0)

	assert.Equal(t, int64(1), scheduler.GetStats().RejectedCommands)
}
