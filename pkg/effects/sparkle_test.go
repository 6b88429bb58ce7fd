package effects

import (
	"math"
	"testing"
	"time"

	"github.com/aquabot/firstmate/pkg/clock"
	"github.com/aquabot/firstmate/pkg/random"
)

func TestSparkleForcedHit(t *testing.T) {
	sched := clock.NewScheduler()
	target := newRecordingTarget()
	trail := NewSparkleTrail(random.NewSequence(0.05), sched, target, DefaultConfig())

	trail.OnPointerMove(Point{X: 100, Y: 200})

	if len(target.sparkles) != 1 {
		t.Fatalf("live sparkles = %d, want 1", len(target.sparkles))
	}
	for _, s := range target.sparkles {
		if s.At != (Point{X: 100, Y: 200}) {
			t.Errorf("sparkle at %+v, want (100,200)", s.At)
		}
	}

	sched.Advance(599 * time.Millisecond)
	if len(target.sparkles) != 1 {
		t.Fatal("sparkle removed before 600ms")
	}
	sched.Advance(time.Millisecond)
	if len(target.sparkles) != 0 {
		t.Error("sparkle should remove itself after 600ms")
	}
}

func TestSparkleForcedMiss(t *testing.T) {
	sched := clock.NewScheduler()
	target := newRecordingTarget()
	trail := NewSparkleTrail(random.NewSequence(0.1, 0.5, 0.99), sched, target, DefaultConfig())

	for i := 0; i < 3; i++ {
		trail.OnPointerMove(Point{X: 1, Y: 1})
	}
	if trail.Spawned() != 0 {
		t.Errorf("draws >= 0.1 spawned %d sparkles", trail.Spawned())
	}
	if sched.Pending() != 0 {
		t.Errorf("misses scheduled %d timers", sched.Pending())
	}
}

// TestSparkleRateConverges 10000 次移动事件中约 10% 产生光点
func TestSparkleRateConverges(t *testing.T) {
	sched := clock.NewScheduler()
	target := newRecordingTarget()
	trail := NewSparkleTrail(random.NewSeeded(99), sched, target, DefaultConfig())

	const n = 10000
	for i := 0; i < n; i++ {
		trail.OnPointerMove(Point{X: float64(i % 800), Y: float64(i % 600)})
	}

	ratio := float64(trail.Spawned()) / n
	if math.Abs(ratio-0.1) > 0.012 {
		t.Errorf("sparkle ratio = %.4f, want ~0.1", ratio)
	}
}

// TestSparkleNoCooldown 连续命中不受冷却限制
func TestSparkleNoCooldown(t *testing.T) {
	sched := clock.NewScheduler()
	target := newRecordingTarget()
	trail := NewSparkleTrail(random.NewSequence(0), sched, target, DefaultConfig())

	for i := 0; i < 25; i++ {
		trail.OnPointerMove(Point{X: float64(i), Y: 0})
	}
	if len(target.sparkles) != 25 {
		t.Errorf("live sparkles = %d, want 25", len(target.sparkles))
	}
}

func TestSparkleNilTarget(t *testing.T) {
	sched := clock.NewScheduler()
	trail := NewSparkleTrail(random.NewSequence(0), sched, nil, DefaultConfig())
	trail.OnPointerMove(Point{X: 5, Y: 5})
	if trail.Spawned() != 0 || sched.Pending() != 0 {
		t.Error("nil target should make OnPointerMove a no-op")
	}
}
