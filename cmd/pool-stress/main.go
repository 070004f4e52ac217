// Command pool-stress drives the entity pool and the gameplay systems with a
// synthetic population and reports frame timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/systems"
	"github.com/plus3/platformer/vec"
	"github.com/plus3/platformer/world"
	"go.uber.org/zap"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	tileCount := flag.Int("tiles", 10000, "The number of ground tiles to create.")
	bulletRate := flag.Int("bullets", 20, "Bullets spawned per frame.")
	interval := flag.Duration("interval", time.Millisecond, "Scheduler tick interval; ticks are dropped while a frame overruns it.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu, mem or allocs.")
	flag.Parse()

	if *interval <= 0 {
		log.Fatalf("Interval must be positive, got %s", *interval)
	}

	if stop := startProfile(*profileMode); stop != nil {
		defer stop()
	}

	log.Println("Starting pool stress test...")

	opts := world.DefaultOptions()
	opts.Capacity = *tileCount + 64*(*bulletRate) + 1024
	w := world.New(opts, nil, zap.NewNop())

	scheduler := ecs.NewScheduler(w.Manager)
	scheduler.RegisterNamed("lifespan", &systems.Lifespan{})
	scheduler.RegisterNamed("movement", &systems.Movement{World: w})
	scheduler.RegisterNamed("collision", &systems.Collision{World: w})
	scheduler.RegisterNamed("animation", &systems.Animation{World: w})
	scheduler.RegisterNamed("shooter", ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		spawnBullets(w, *bulletRate)
	}))

	log.Printf("Populating pool with %d tiles...\n", *tileCount)
	if err := populate(w, *tileCount); err != nil {
		log.Fatalf("Failed to populate: %v", err)
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:       *duration,
		Tiles:          *tileCount,
		BulletsPerTick: *bulletRate,
		Systems:        scheduler.GetStats().SystemCount,
		Interval:       *interval,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	scheduler.Run(ctx, *interval)

	report.TotalTime = time.Since(startTime)
	report.Pool = w.Pool.CollectStats()
	report.Scheduler = scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func startProfile(mode string) func() {
	var p interface{ Stop() }
	switch mode {
	case "":
		return nil
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		p = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "allocs":
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		log.Fatalf("Unknown profile mode %q", mode)
	}
	return p.Stop
}

// populate lays tiles in rows along the bottom of the level with a player
// walking on the first row.
func populate(w *world.World, tiles int) error {
	const rowLength = 1000
	for i := range tiles {
		if _, err := w.SpawnTile("Ground", float32(i%rowLength), float32(i/rowLength)); err != nil {
			return err
		}
	}
	w.Player.X, w.Player.Y = 2, float32(tiles/rowLength+2)
	if _, err := w.SpawnPlayer(); err != nil {
		return err
	}
	w.Manager.Update()

	if in, ok := ecs.Get[ecs.Input](w.Pool, w.PlayerEntity); ok {
		in.Right = true
	}
	return nil
}

// spawnBullets fires n bullets from random points above the tiles.
func spawnBullets(w *world.World, n int) {
	for range n {
		e, err := w.Manager.AddEntity(ecs.TagDecoration)
		if err != nil {
			return
		}
		pos := vec.New(rand.Float32()*w.Options.Width*4, rand.Float32()*w.Options.Height)
		ecs.Add(w.Pool, e, ecs.NewTransform(pos))
		_, err = w.SpawnBullet(e)
		w.Pool.Destroy(e)
		if err != nil {
			return
		}
	}
}
