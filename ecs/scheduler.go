package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          uint64
	Systems         []SystemStats
	// Frame times whole Once calls, commit included.
	Frame SystemStats
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

// Scheduler commits the registry and then executes systems in registration
// order, once per frame.
type Scheduler struct {
	manager     *Manager
	systems     []System
	systemStats []*systemStatsInternal
	frameStats  *systemStatsInternal
	tick        uint64
}

// NewScheduler creates a new scheduler for the given registry.
func NewScheduler(manager *Manager) *Scheduler {
	return &Scheduler{
		manager:    manager,
		systems:    make([]System, 0),
		frameStats: newSystemStats("frame"),
	}
}

// Register appends a system, named after its type in the stats.
func (s *Scheduler) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	s.RegisterNamed(systemType.Name(), system)
}

// RegisterNamed appends a system under an explicit stats name.
func (s *Scheduler) RegisterNamed(name string, system System) {
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, newSystemStats(name))
}

func newSystemStats(name string) *systemStatsInternal {
	return &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (st *systemStatsInternal) record(d time.Duration) {
	st.executionCount++
	st.lastDuration = d
	st.totalDuration += d
	if d < st.minDuration {
		st.minDuration = d
	}
	if d > st.maxDuration {
		st.maxDuration = d
	}
}

func (st *systemStatsInternal) snapshot() SystemStats {
	out := SystemStats{
		Name:           st.name,
		ExecutionCount: st.executionCount,
		MaxDuration:    st.maxDuration,
		LastDuration:   st.lastDuration,
		TotalDuration:  st.totalDuration,
	}
	if st.executionCount > 0 {
		out.AvgDuration = st.totalDuration / time.Duration(st.executionCount)
		out.MinDuration = st.minDuration
	}
	return out
}

// Once commits pending entity changes, then executes all registered systems
// once with the given delta time.
func (s *Scheduler) Once(dt float64) {
	frameStart := time.Now()
	s.manager.Update()
	s.tick++
	frame := newUpdateFrame(dt, s.tick, s.manager)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.systemStats[i].record(time.Since(start))
	}
	s.frameStats.record(time.Since(frameStart))
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

// Tick returns the number of frames executed so far.
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.tick,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		stats.Systems[i] = internal.snapshot()
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	stats.Frame = s.frameStats.snapshot()
	return stats
}
