package effects

import (
	"log"
	"time"

	"github.com/aquabot/firstmate/pkg/clock"
	"github.com/aquabot/firstmate/pkg/random"
)

// Scheduler is the timer source the effects run on.
type Scheduler interface {
	Every(interval time.Duration, fn func()) *clock.Timer
	After(delay time.Duration, fn func()) *clock.Timer
}

// GlitterEmitter spawns one falling glitter per interval while running.
// Each glitter removes itself after its fall plus a margin; stopping the
// emitter cancels only the recurring tick, never those removals.
type GlitterEmitter struct {
	rng    random.Source
	sched  Scheduler
	target Target
	cfg    Config

	tick    *clock.Timer
	spawned int

	// OnSpawn, when set, is called after each glitter is inserted.
	OnSpawn func(id NodeID, g Glitter)
}

// NewGlitterEmitter creates a stopped emitter.
func NewGlitterEmitter(rng random.Source, sched Scheduler, target Target, cfg Config) *GlitterEmitter {
	return &GlitterEmitter{
		rng:    rng,
		sched:  sched,
		target: target,
		cfg:    cfg,
	}
}

// Start begins the recurring spawn tick. Starting a running emitter is a no-op.
func (e *GlitterEmitter) Start() {
	if e.Running() {
		return
	}
	e.tick = e.sched.Every(e.cfg.GlitterInterval, e.spawn)
	log.Printf("[GlitterEmitter] started, interval %v", e.cfg.GlitterInterval)
}

// Stop cancels the recurring tick. Already spawned glitter still removes
// itself on schedule.
func (e *GlitterEmitter) Stop() {
	if e.tick.Stop() {
		log.Printf("[GlitterEmitter] stopped after %d spawns", e.spawned)
	}
	e.tick = nil
}

// Running reports whether the recurring tick is scheduled.
func (e *GlitterEmitter) Running() bool {
	return e.tick.Active()
}

// Spawned returns how many glitter instances this emitter has inserted.
func (e *GlitterEmitter) Spawned() int {
	return e.spawned
}

func (e *GlitterEmitter) spawn() {
	if e.target == nil {
		return
	}

	g := Glitter{
		X:        e.rng.Uniform(0, 100),
		Duration: e.rng.Uniform(e.cfg.GlitterFall.Min, e.cfg.GlitterFall.Max),
	}
	id := e.target.AddGlitter(g)
	e.spawned++

	// 自行移除，与发射器状态无关
	target := e.target
	e.sched.After(seconds(g.Duration)+e.cfg.GlitterMargin, func() {
		target.Remove(id)
	})

	if e.OnSpawn != nil {
		e.OnSpawn(id, g)
	}
}
