// Package animation holds named keyframe animations and the registry they
// are injected into while a view is mounted.
//
// An Animation is a set of per-property tracks over normalized time. Each
// property interpolates only between the stops that name it, and the
// timing function applies to each segment between two stops.
package animation

import "math"

// Unit is the unit of a stop value.
type Unit int

const (
	// Px is an absolute pixel (or degree, or plain ratio) value.
	Px Unit = iota
	// VH is a percentage of the viewport height.
	VH
)

// Stop is one keyframe value of a single property.
type Stop struct {
	At    float64 // normalized time in [0, 1]
	Value float64
	Unit  Unit
}

// Track is an ordered list of stops for one property.
type Track []Stop

// Easing maps segment progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear 线性插值
func Linear(t float64) float64 { return t }

// EaseInOut 近似 CSS ease-in-out
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseOut 近似 CSS ease-out
func EaseOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// resolve converts a stop value to pixels for the given viewport height.
func (s Stop) resolve(viewportH float64) float64 {
	if s.Unit == VH {
		return s.Value / 100 * viewportH
	}
	return s.Value
}

// sample interpolates the track at progress p. ok is false for an empty
// track so the caller can fall back to the property's neutral value.
func (tr Track) sample(p float64, ease Easing, viewportH float64) (v float64, ok bool) {
	if len(tr) == 0 {
		return 0, false
	}
	if p <= tr[0].At {
		return tr[0].resolve(viewportH), true
	}
	last := tr[len(tr)-1]
	if p >= last.At {
		return last.resolve(viewportH), true
	}

	for i := 1; i < len(tr); i++ {
		a, b := tr[i-1], tr[i]
		if p > b.At {
			continue
		}
		span := b.At - a.At
		if span <= 0 {
			return b.resolve(viewportH), true
		}
		local := (p - a.At) / span
		if ease != nil {
			local = ease(local)
		}
		from, to := a.resolve(viewportH), b.resolve(viewportH)
		return from + (to-from)*local, true
	}
	return last.resolve(viewportH), true
}
