package effects

import (
	"fmt"
	"time"
)

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64
	Max float64
}

// Config tunes the effect engine.
type Config struct {
	ParticleCount    int
	ParticleSize     Range // px
	ParticleDuration Range // seconds
	ParticleDelay    Range // seconds

	GlitterInterval time.Duration
	GlitterFall     Range         // seconds
	GlitterMargin   time.Duration // extra time before a glitter removes itself

	SparkleChance   float64 // per pointer-move event
	SparkleLifetime time.Duration
}

// DefaultConfig returns the hero view's tuning.
func DefaultConfig() Config {
	return Config{
		ParticleCount:    50,
		ParticleSize:     Range{Min: 2, Max: 6},
		ParticleDuration: Range{Min: 4, Max: 7},
		ParticleDelay:    Range{Min: 0, Max: 2},

		GlitterInterval: 300 * time.Millisecond,
		GlitterFall:     Range{Min: 2, Max: 4},
		GlitterMargin:   2 * time.Second,

		SparkleChance:   0.1,
		SparkleLifetime: 600 * time.Millisecond,
	}
}

// Validate checks that the configuration can drive the engine.
func (c Config) Validate() error {
	if c.ParticleCount < 0 {
		return fmt.Errorf("particle count must not be negative, got %d", c.ParticleCount)
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"particle size", c.ParticleSize},
		{"particle duration", c.ParticleDuration},
		{"particle delay", c.ParticleDelay},
		{"glitter fall", c.GlitterFall},
	}
	for _, rr := range ranges {
		if rr.r.Min > rr.r.Max {
			return fmt.Errorf("%s range invalid: min(%.2f) > max(%.2f)", rr.name, rr.r.Min, rr.r.Max)
		}
		if rr.r.Min < 0 {
			return fmt.Errorf("%s range invalid: min(%.2f) < 0", rr.name, rr.r.Min)
		}
	}
	if c.GlitterInterval <= 0 {
		return fmt.Errorf("glitter interval must be positive, got %v", c.GlitterInterval)
	}
	if c.GlitterMargin < 0 {
		return fmt.Errorf("glitter margin must not be negative, got %v", c.GlitterMargin)
	}
	if c.SparkleChance < 0 || c.SparkleChance > 1 {
		return fmt.Errorf("sparkle chance must be within [0, 1], got %.3f", c.SparkleChance)
	}
	if c.SparkleLifetime <= 0 {
		return fmt.Errorf("sparkle lifetime must be positive, got %v", c.SparkleLifetime)
	}
	return nil
}

// seconds converts fractional seconds to a Duration.
func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
