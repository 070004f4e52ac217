package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/platformer/ecs"
)

type Report struct {
	// Configuration
	Duration       time.Duration
	Tiles          int
	BulletsPerTick int
	Systems        int
	Interval       time.Duration

	// Results
	TotalTime      time.Duration
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
	Pool           *ecs.PoolStats
	Scheduler      *ecs.SchedulerStats
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Pool Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Tiles:** {{.Tiles}}
- **Bullets Per Tick:** {{.BulletsPerTick}}
- **Systems:** {{.Systems}}
- **Tick Interval:** {{.Interval}}

## Performance Results
- **Total Updates:** {{.Scheduler.Frames}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.Scheduler.Frame.AvgDuration}}
  - **Min:** {{.Scheduler.Frame.MinDuration}}
  - **Max:** {{.Scheduler.Frame.MaxDuration}}

## Pool
- **Active:** {{.Pool.Active}} / {{.Pool.Capacity}}
- **Awaiting Sweep:** {{.Pool.Dying}}
{{range $tag, $n := .Pool.TagCount}}- {{$tag}}: {{$n}}
{{end}}
## Systems
{{range .Scheduler.Systems}}- **{{.Name}}:** avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end, {{mb .MemStatsEnd.HeapAlloc}} MiB) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
