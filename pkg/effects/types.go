// Package effects implements the decorative effect engine of the hero view:
// the ambient particle field, the falling glitter stream, the pointer
// sparkle trail, and the lifecycle manager that mounts and unmounts them.
//
// All work happens on the scheduler's single execution context. Components
// only describe visual nodes; a Target renders them.
package effects

import (
	"github.com/aquabot/firstmate/pkg/animation"
)

// Color is the color category of an ambient particle.
type Color int

const (
	White Color = iota
	Gold
	SkyBlue
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Gold:
		return "gold"
	case SkyBlue:
		return "skyBlue"
	default:
		return "unknown"
	}
}

// ColorFor returns the color category of particle i: white for every third
// index, otherwise gold for even indices and sky blue for odd ones.
func ColorFor(i int) Color {
	if i%3 == 0 {
		return White
	}
	if i%2 == 0 {
		return Gold
	}
	return SkyBlue
}

// Particle is one ambient particle descriptor. Positions are percentages
// of the viewport, durations are seconds.
type Particle struct {
	Index    int
	Size     float64 // px
	X, Y     float64 // percent, [0, 100)
	Color    Color
	Duration float64 // floatParticle cycle length
	Delay    float64
}

// Glitter is one falling glitter instance.
type Glitter struct {
	X        float64 // percent of viewport width, [0, 100)
	Duration float64 // fall duration in seconds
}

// Point is a pointer coordinate in pixels.
type Point struct {
	X, Y float64
}

// Sparkle is one pointer sparkle instance.
type Sparkle struct {
	At Point
}

// NodeID identifies a node inserted into a Target.
type NodeID uint64

// Target is the render container that the effects insert nodes into.
type Target interface {
	// ReplaceParticles clears the particle layer and inserts the given set.
	ReplaceParticles(particles []Particle)
	AddGlitter(g Glitter) NodeID
	AddSparkle(s Sparkle) NodeID
	// Remove deletes a node. Removing an unknown or removed node is a no-op.
	Remove(id NodeID)
}

// PointerSource delivers pointer-move events to subscribed listeners.
type PointerSource interface {
	Subscribe(fn func(Point)) (unsubscribe func())
}

// StyleInjector is the document-level registry of shared animation sheets.
type StyleInjector interface {
	Inject(sheet *animation.Sheet) *animation.Injection
}
