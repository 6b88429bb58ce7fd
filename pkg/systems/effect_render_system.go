package systems

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/aquabot/firstmate/pkg/animation"
	"github.com/aquabot/firstmate/pkg/components"
	"github.com/aquabot/firstmate/pkg/ecs"
)

// AnimationLookup resolves animation names to keyframes.
type AnimationLookup interface {
	Animation(name string) (*animation.Animation, bool)
}

// DrawCommand is one circle to draw, already animated and positioned.
type DrawCommand struct {
	Entity ecs.EntityID
	Kind   components.NodeKind
	X, Y   float64 // centre, px
	Radius float64
	Inner  color.NRGBA
	Outer  color.NRGBA
	Alpha  float64 // animation opacity, multiplies the colors' own alpha
	Z      int
}

// EffectRenderSystem draws the effect stage. Positions are resolved against
// the viewport and animations are sampled at the clock's current time.
type EffectRenderSystem struct {
	em    *ecs.EntityManager
	clock Clock
	anims AnimationLookup
}

// NewEffectRenderSystem creates a render system.
func NewEffectRenderSystem(em *ecs.EntityManager, clock Clock, anims AnimationLookup) *EffectRenderSystem {
	return &EffectRenderSystem{
		em:    em,
		clock: clock,
		anims: anims,
	}
}

// Commands computes the draw list for a viewport of the given size, in
// paint order (z-index, then insertion order).
func (s *EffectRenderSystem) Commands(viewW, viewH float64) []DrawCommand {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.em)
	cmds := make([]DrawCommand, 0, len(ids))
	now := s.clock.Now()

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.em, id)

		x, y := pos.X, pos.Y
		if pos.Relative {
			x = pos.X / 100 * viewW
			y = pos.Y / 100 * viewH
		}
		// 元素左上角定位，圆心偏移半个尺寸
		x += sprite.Size / 2
		y += sprite.Size / 2

		tf := s.transform(id, now.Seconds(), viewH)
		radius := sprite.Size / 2 * (tf.ScaleX + tf.ScaleY) / 2
		if radius <= 0 || tf.Opacity <= 0 {
			continue
		}

		cmds = append(cmds, DrawCommand{
			Entity: id,
			Kind:   sprite.Kind,
			X:      x + tf.DX,
			Y:      y + tf.DY,
			Radius: radius,
			Inner:  sprite.Inner,
			Outer:  sprite.Outer,
			Alpha:  tf.Opacity,
			Z:      sprite.ZIndex,
		})
	}

	sort.SliceStable(cmds, func(i, j int) bool {
		return cmds[i].Z < cmds[j].Z
	})
	return cmds
}

func (s *EffectRenderSystem) transform(id ecs.EntityID, now, viewH float64) animation.Transform {
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.em, id)
	if !ok || s.anims == nil {
		return animation.Identity()
	}
	keyframes, ok := s.anims.Animation(anim.Name)
	if !ok {
		return animation.Identity()
	}

	born := 0.0
	if life, ok := ecs.GetComponent[*components.LifetimeComponent](s.em, id); ok {
		born = life.Born.Seconds()
	}
	return keyframes.Sample(now-born, anim.Timing, viewH)
}

// Draw renders the stage onto screen.
func (s *EffectRenderSystem) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	for _, cmd := range s.Commands(float64(bounds.Dx()), float64(bounds.Dy())) {
		x, y, r := float32(cmd.X), float32(cmd.Y), float32(cmd.Radius)
		vector.DrawFilledCircle(screen, x, y, r, fade(cmd.Outer, cmd.Alpha), true)
		if cmd.Inner != cmd.Outer {
			vector.DrawFilledCircle(screen, x, y, r*0.5, fade(cmd.Inner, cmd.Alpha), true)
		}
	}
}

// fade scales a color's alpha by a.
func fade(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}
