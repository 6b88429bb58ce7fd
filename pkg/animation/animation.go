package animation

import "math"

// Fill controls what an element shows outside its active interval.
type Fill int

const (
	// FillNone shows the unanimated element before the delay and after the end.
	FillNone Fill = iota
	// FillForwards holds the last frame after the end.
	FillForwards
	// FillBoth also applies the first frame during the delay.
	FillBoth
)

// Animation is a named set of keyframe tracks.
type Animation struct {
	Name       string
	TranslateX Track // px
	TranslateY Track // px or vh
	Rotate     Track // degrees
	Scale      Track // ratio, neutral 1
	ScaleX     Track // ratio, multiplies Scale
	ScaleY     Track // ratio, multiplies Scale
	Opacity    Track // 0..1, neutral 1
}

// Timing describes how an animation is played on one element.
type Timing struct {
	Duration float64 // seconds
	Delay    float64 // seconds, may be negative
	Easing   Easing
	Infinite bool
	Fill     Fill
}

// Transform is the sampled state that the renderer applies to a node.
type Transform struct {
	DX, DY   float64
	Rotate   float64
	ScaleX   float64
	ScaleY   float64
	Opacity  float64
	Finished bool // a finite animation has run to its end
}

// Identity is the unanimated transform.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1, Opacity: 1}
}

// Sample evaluates the animation elapsed seconds after the element was
// created, following CSS animation semantics for delay, iteration and fill.
func (a *Animation) Sample(elapsed float64, timing Timing, viewportH float64) Transform {
	if a == nil || timing.Duration <= 0 {
		return Identity()
	}

	local := elapsed - timing.Delay
	if local < 0 {
		if timing.Fill == FillBoth {
			return a.at(0, timing.Easing, viewportH)
		}
		return Identity()
	}

	if timing.Infinite {
		p := math.Mod(local, timing.Duration) / timing.Duration
		return a.at(p, timing.Easing, viewportH)
	}

	if local >= timing.Duration {
		if timing.Fill == FillForwards || timing.Fill == FillBoth {
			tf := a.at(1, timing.Easing, viewportH)
			tf.Finished = true
			return tf
		}
		tf := Identity()
		tf.Finished = true
		return tf
	}
	return a.at(local/timing.Duration, timing.Easing, viewportH)
}

func (a *Animation) at(p float64, ease Easing, viewportH float64) Transform {
	tf := Identity()
	if v, ok := a.TranslateX.sample(p, ease, viewportH); ok {
		tf.DX = v
	}
	if v, ok := a.TranslateY.sample(p, ease, viewportH); ok {
		tf.DY = v
	}
	if v, ok := a.Rotate.sample(p, ease, viewportH); ok {
		tf.Rotate = v
	}
	scale := 1.0
	if v, ok := a.Scale.sample(p, ease, viewportH); ok {
		scale = v
	}
	tf.ScaleX, tf.ScaleY = scale, scale
	if v, ok := a.ScaleX.sample(p, ease, viewportH); ok {
		tf.ScaleX *= v
	}
	if v, ok := a.ScaleY.sample(p, ease, viewportH); ok {
		tf.ScaleY *= v
	}
	if v, ok := a.Opacity.sample(p, ease, viewportH); ok {
		tf.Opacity = v
	}
	return tf
}
