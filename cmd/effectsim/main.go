// Package main runs the hero effects headless on a simulated clock and
// prints what they produced. Useful for checking tuning changes without
// opening a window.
//
// Usage:
//
//	go run ./cmd/effectsim [flags]
//
// Flags:
//
//	--ms <n>          Simulated time with the hero view mounted (default 1200)
//	--moves <n>       Pointer moves dispatched while mounted (default 10000)
//	--seed <n>        Random seed (default 1)
//	--config <path>   Effects config file (default: built-in defaults)
//	--verbose         Enable verbose logging (default off)
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/aquabot/firstmate/pkg/animation"
	"github.com/aquabot/firstmate/pkg/clock"
	"github.com/aquabot/firstmate/pkg/components"
	"github.com/aquabot/firstmate/pkg/config"
	"github.com/aquabot/firstmate/pkg/ecs"
	"github.com/aquabot/firstmate/pkg/effects"
	"github.com/aquabot/firstmate/pkg/input"
	"github.com/aquabot/firstmate/pkg/random"
	"github.com/aquabot/firstmate/pkg/systems"
)

const (
	frame        = time.Second / 60
	screenWidth  = config.GameWindowWidth
	screenHeight = config.GameWindowHeight
)

var (
	msFlag      = flag.Int("ms", 1200, "Simulated milliseconds with the hero view mounted")
	movesFlag   = flag.Int("moves", 10000, "Pointer moves dispatched while mounted")
	seedFlag    = flag.Uint64("seed", 1, "Random seed")
	configFlag  = flag.String("config", "", "Effects config file (default: built-in defaults)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// report 一次模拟的统计
type report struct {
	Particles      int
	Colors         map[effects.Color]int
	GlitterSpawned int
	SparkleSpawned int
	Moves          int
	LiveAtUnmount  int
	LiveAfterDrain int
	Listeners      int
	Sheets         int
	PendingTimers  int
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg := effects.DefaultConfig()
	if *configFlag != "" {
		loaded, err := config.LoadEffectsConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "effectsim: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	r := simulate(cfg, *seedFlag, time.Duration(*msFlag)*time.Millisecond, *movesFlag)
	printReport(os.Stdout, cfg, r)
}

// simulate 挂载特效，推进 mounted 时长并均匀派发 moves 次指针移动，
// 然后卸载并继续推进，直到所有短暂节点自行移除
func simulate(cfg effects.Config, seed uint64, mounted time.Duration, moves int) report {
	rng := random.NewSeeded(seed)
	sched := clock.NewScheduler()
	em := ecs.NewEntityManager()
	stage := systems.NewEffectStage(em, sched, cfg)
	styles := animation.NewRegistry()
	bus := input.NewPointerBus()

	manager := effects.NewManager(effects.Options{
		Random:    rng,
		Scheduler: sched,
		Target:    stage,
		Styles:    styles,
		Pointer:   bus,
		Config:    cfg,
	})
	manager.Activate()

	r := report{Colors: make(map[effects.Color]int)}
	for _, p := range manager.Particles() {
		r.Colors[p.Color]++
	}
	r.Particles = stage.Count(components.NodeParticle)

	frames := int(mounted / frame)
	for i := 0; i < frames; i++ {
		sched.Advance(frame)
		r.Moves += dispatchMoves(bus, rng, moves, frames, i)
		stage.Flush()
	}
	if rest := mounted - time.Duration(frames)*frame; rest > 0 {
		sched.Advance(rest)
	}
	// 时长不足一帧时也要派发全部移动
	if frames == 0 {
		r.Moves += dispatchMoves(bus, rng, moves, 1, 0)
	}
	stage.Flush()

	r.GlitterSpawned = manager.Emitter().Spawned()
	r.SparkleSpawned = manager.Trail().Spawned()

	manager.Deactivate()
	r.LiveAtUnmount = stage.Count(components.NodeGlitter) + stage.Count(components.NodeSparkle)
	r.Listeners = bus.Listeners()
	r.Sheets = styles.Len()

	drain := time.Duration(cfg.GlitterFall.Max*float64(time.Second)) + cfg.GlitterMargin + cfg.SparkleLifetime
	sched.Advance(drain)
	stage.Flush()
	r.LiveAfterDrain = stage.Count(components.NodeGlitter) + stage.Count(components.NodeSparkle)
	r.PendingTimers = sched.Pending()
	return r
}

// dispatchMoves 把 total 次移动平均分到 frames 帧，返回本帧派发的次数
func dispatchMoves(bus *input.PointerBus, rng random.Source, total, frames, i int) int {
	n := total*(i+1)/frames - total*i/frames
	for j := 0; j < n; j++ {
		bus.Dispatch(effects.Point{
			X: rng.Uniform(0, screenWidth),
			Y: rng.Uniform(0, screenHeight),
		})
	}
	return n
}

func printReport(w io.Writer, cfg effects.Config, r report) {
	fmt.Fprintf(w, "particles:        %d (white %d, gold %d, skyBlue %d)\n",
		r.Particles, r.Colors[effects.White], r.Colors[effects.Gold], r.Colors[effects.SkyBlue])
	fmt.Fprintf(w, "glitter spawned:  %d (every %v)\n", r.GlitterSpawned, cfg.GlitterInterval)

	rate := 0.0
	if r.Moves > 0 {
		rate = float64(r.SparkleSpawned) / float64(r.Moves)
	}
	fmt.Fprintf(w, "sparkles spawned: %d of %d moves (%.4f, expected %.4f)\n",
		r.SparkleSpawned, r.Moves, rate, cfg.SparkleChance)

	fmt.Fprintf(w, "after unmount:    %d live transients, %d listeners, %d sheets\n",
		r.LiveAtUnmount, r.Listeners, r.Sheets)
	fmt.Fprintf(w, "after drain:      %d live transients, %d pending timers\n",
		r.LiveAfterDrain, r.PendingTimers)
}
