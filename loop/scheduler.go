package loop

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/candytris/game"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount      int
	Frames           int64
	TotalExecutions  int64
	RejectedCommands int64
	Systems          []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler drives one game through an ordered list of systems.
type Scheduler struct {
	game        *game.Game
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64
	rejected    int64
}

// NewScheduler creates a new scheduler for the given game.
func NewScheduler(g *game.Game) *Scheduler {
	return &Scheduler{
		game:    g,
		systems: make([]System, 0),
	}
}

// Game returns the game the scheduler drives.
func (s *Scheduler) Game() *game.Game {
	return s.game
}

// Register appends a system to the frame.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemName(system),
		minDuration: time.Duration(1<<63 - 1),
	})
}

func systemName(system System) string {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}

// Once executes all registered systems once with the given delta time in
// seconds, then flushes the frame's commands.
func (s *Scheduler) Once(dt float64) {
	frame := newFrame(dt, s.game)
	frame.Events = s.game.DrainEvents()

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)
		frame.Events = append(frame.Events, s.game.DrainEvents()...)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.rejected += int64(frame.Commands.Flush(s.game))
	s.frames++
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:      len(s.systems),
		Frames:           s.frames,
		RejectedCommands: s.rejected,
		Systems:          make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		minDuration := internal.minDuration
		if internal.executionCount == 0 {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
