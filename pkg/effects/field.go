package effects

import (
	"github.com/aquabot/firstmate/pkg/random"
)

// FieldGenerator builds the ambient particle field.
type FieldGenerator struct {
	rng random.Source
	cfg Config
}

// NewFieldGenerator creates a generator drawing from rng.
func NewFieldGenerator(rng random.Source, cfg Config) *FieldGenerator {
	return &FieldGenerator{rng: rng, cfg: cfg}
}

// Generate returns count freshly generated particles.
func (g *FieldGenerator) Generate(count int) []Particle {
	if count <= 0 {
		return []Particle{}
	}

	particles := make([]Particle, count)
	for i := range particles {
		p := Particle{Index: i, Color: ColorFor(i)}
		p.Size = g.rng.Uniform(g.cfg.ParticleSize.Min, g.cfg.ParticleSize.Max)
		p.X = g.rng.Uniform(0, 100)
		p.Y = g.rng.Uniform(0, 100)
		p.Duration = g.rng.Uniform(g.cfg.ParticleDuration.Min, g.cfg.ParticleDuration.Max)
		p.Delay = g.rng.Uniform(g.cfg.ParticleDelay.Min, g.cfg.ParticleDelay.Max)
		particles[i] = p
	}
	return particles
}

// Populate generates count particles and replaces the target's particle
// layer with them. A nil target is a no-op and yields nil.
func (g *FieldGenerator) Populate(target Target, count int) []Particle {
	if target == nil {
		return nil
	}
	particles := g.Generate(count)
	target.ReplaceParticles(particles)
	return particles
}
