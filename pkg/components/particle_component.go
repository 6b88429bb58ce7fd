package components

import (
	"github.com/aquabot/firstmate/pkg/effects"
)

// ParticleComponent marks an ambient particle of the hero field.
// It keeps the descriptor the particle was generated from, so the field can
// be inspected and replaced as a whole.
//
// This is a pure data component - it contains no methods.
type ParticleComponent struct {
	Index    int           // position in the generated field
	Color    effects.Color // color category
	Duration float64       // floatParticle cycle (seconds)
	Delay    float64       // animation delay (seconds)
}
