package effects

import (
	"github.com/aquabot/firstmate/pkg/random"
)

// SparkleTrail spawns a short-lived sparkle at the pointer on a fraction of
// pointer-move events. Every event is an independent trial; there is no
// cooldown and no cap on overlapping sparkles.
type SparkleTrail struct {
	rng    random.Source
	sched  Scheduler
	target Target
	cfg    Config

	spawned int
}

// NewSparkleTrail creates a trail inserting into target.
func NewSparkleTrail(rng random.Source, sched Scheduler, target Target, cfg Config) *SparkleTrail {
	return &SparkleTrail{
		rng:    rng,
		sched:  sched,
		target: target,
		cfg:    cfg,
	}
}

// OnPointerMove handles one pointer-move event.
func (s *SparkleTrail) OnPointerMove(at Point) {
	if s.target == nil {
		return
	}
	if !random.Chance(s.rng, s.cfg.SparkleChance) {
		return
	}

	id := s.target.AddSparkle(Sparkle{At: at})
	s.spawned++

	target := s.target
	s.sched.After(s.cfg.SparkleLifetime, func() {
		target.Remove(id)
	})
}

// Spawned returns how many sparkles the trail has inserted.
func (s *SparkleTrail) Spawned() int {
	return s.spawned
}
