package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/platformer/ecs"
)

// PerformanceStats plots frame times and reports pool occupancy and
// per-system timings.
type PerformanceStats struct {
	frameHistory []float32
	frameIndex   int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	if historyFrames <= 0 {
		historyFrames = 120
	}
	return &PerformanceStats{
		frameHistory: make([]float32, historyFrames),
	}
}

// Record stores one frame time in seconds.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % len(ps.frameHistory)
}

// AverageMillis returns the mean of the recorded frame times.
func (ps *PerformanceStats) AverageMillis() float32 {
	var sum float32
	for _, ft := range ps.frameHistory {
		sum += ft
	}
	return sum / float32(len(ps.frameHistory))
}

func (ps *PerformanceStats) Render(p *ecs.Pool, s *ecs.Scheduler, deltaTime float32) {
	ps.Record(deltaTime)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	stats := p.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d / %d", stats.Active, stats.Capacity))
	imgui.Text(fmt.Sprintf("Awaiting sweep: %d", stats.Dying))

	avg := ps.AverageMillis()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Tags") {
		for _, tag := range ecs.Tags() {
			imgui.BulletText(fmt.Sprintf("%s: %d", tag, stats.TagCount[tag]))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Components") {
		for _, k := range ecs.Kinds() {
			imgui.BulletText(fmt.Sprintf("%s: %d", k, stats.ComponentCount[k]))
		}
		imgui.TreePop()
	}

	if s == nil {
		return
	}

	sched := s.GetStats()
	if imgui.TreeNodeStr(fmt.Sprintf("Systems (%d frames)", sched.Frames)) {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range append(sched.Systems, sched.Frame) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}
}
