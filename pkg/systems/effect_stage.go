package systems

import (
	"image/color"
	"time"

	"github.com/aquabot/firstmate/pkg/animation"
	"github.com/aquabot/firstmate/pkg/components"
	"github.com/aquabot/firstmate/pkg/ecs"
	"github.com/aquabot/firstmate/pkg/effects"
)

// Clock reports the current time of the effect timeline.
type Clock interface {
	Now() time.Duration
}

// 节点颜色（与网页版落地页一致）
var (
	ColorWhite   = color.NRGBA{R: 255, G: 255, B: 255, A: 230} // rgba(255,255,255,0.9)
	ColorGold    = color.NRGBA{R: 255, G: 215, B: 0, A: 204}   // rgba(255,215,0,0.8)
	ColorSkyBlue = color.NRGBA{R: 135, G: 206, B: 250, A: 230} // rgba(135,206,250,0.9)

	glitterInner = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	glitterOuter = color.NRGBA{R: 255, G: 215, B: 0, A: 255}
)

const (
	particleZ = 10
	glitterZ  = 1000
	sparkleZ  = 1001

	glitterSize = 6
	sparkleSize = 4
)

// EffectStage is the render target of the hero effects. Every inserted node
// becomes an entity; removals are deferred until Flush so that systems can
// iterate safely within a frame.
type EffectStage struct {
	em    *ecs.EntityManager
	clock Clock
	cfg   effects.Config
}

// NewEffectStage creates a stage storing nodes in em.
func NewEffectStage(em *ecs.EntityManager, clock Clock, cfg effects.Config) *EffectStage {
	return &EffectStage{
		em:    em,
		clock: clock,
		cfg:   cfg,
	}
}

// SetConfig updates the tuning used for new nodes.
func (s *EffectStage) SetConfig(cfg effects.Config) {
	s.cfg = cfg
}

// ParticleColor maps a color category to its render color.
func ParticleColor(c effects.Color) color.NRGBA {
	switch c {
	case effects.Gold:
		return ColorGold
	case effects.SkyBlue:
		return ColorSkyBlue
	default:
		return ColorWhite
	}
}

// ReplaceParticles clears the particle layer and inserts the new field.
func (s *EffectStage) ReplaceParticles(particles []effects.Particle) {
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](s.em) {
		s.em.DestroyEntity(id)
	}

	now := s.clock.Now()
	for _, p := range particles {
		id := s.em.CreateEntity()
		s.em.AddComponent(id, &components.ParticleComponent{
			Index:    p.Index,
			Color:    p.Color,
			Duration: p.Duration,
			Delay:    p.Delay,
		})
		s.em.AddComponent(id, &components.PositionComponent{X: p.X, Y: p.Y, Relative: true})
		c := ParticleColor(p.Color)
		s.em.AddComponent(id, &components.SpriteComponent{
			Kind:   components.NodeParticle,
			Size:   p.Size,
			Inner:  c,
			Outer:  c,
			ZIndex: particleZ,
		})
		s.em.AddComponent(id, &components.AnimationComponent{
			Name: animation.FloatParticle,
			Timing: animation.Timing{
				Duration: p.Duration,
				Delay:    p.Delay,
				Easing:   animation.EaseInOut,
				Infinite: true,
			},
		})
		s.em.AddComponent(id, &components.LifetimeComponent{Born: now})
	}
}

// AddGlitter inserts a falling glitter at the top edge.
func (s *EffectStage) AddGlitter(g effects.Glitter) effects.NodeID {
	id := s.em.CreateEntity()
	s.em.AddComponent(id, &components.PositionComponent{X: g.X, Y: 0, Relative: true})
	s.em.AddComponent(id, &components.SpriteComponent{
		Kind:   components.NodeGlitter,
		Size:   glitterSize,
		Inner:  glitterInner,
		Outer:  glitterOuter,
		ZIndex: glitterZ,
	})
	s.em.AddComponent(id, &components.AnimationComponent{
		Name: animation.GlitterFall,
		Timing: animation.Timing{
			Duration: g.Duration,
			Easing:   animation.Linear,
			Fill:     animation.FillForwards,
		},
	})
	s.em.AddComponent(id, &components.LifetimeComponent{
		Born:     s.clock.Now(),
		Lifespan: time.Duration(g.Duration*float64(time.Second)) + s.cfg.GlitterMargin,
	})
	return effects.NodeID(id)
}

// AddSparkle inserts a sparkle centred on the pointer coordinate.
func (s *EffectStage) AddSparkle(sp effects.Sparkle) effects.NodeID {
	id := s.em.CreateEntity()
	s.em.AddComponent(id, &components.PositionComponent{X: sp.At.X, Y: sp.At.Y})
	s.em.AddComponent(id, &components.SpriteComponent{
		Kind:   components.NodeSparkle,
		Size:   sparkleSize,
		Inner:  glitterInner,
		Outer:  glitterOuter,
		ZIndex: sparkleZ,
	})
	s.em.AddComponent(id, &components.AnimationComponent{
		Name: animation.SparkleAnim,
		Timing: animation.Timing{
			Duration: s.cfg.SparkleLifetime.Seconds(),
			Easing:   animation.EaseOut,
			Fill:     animation.FillForwards,
		},
	})
	s.em.AddComponent(id, &components.LifetimeComponent{
		Born:     s.clock.Now(),
		Lifespan: s.cfg.SparkleLifetime,
	})
	return effects.NodeID(id)
}

// Remove marks a node for removal at the next Flush.
func (s *EffectStage) Remove(id effects.NodeID) {
	s.em.DestroyEntity(ecs.EntityID(id))
}

// Flush drops nodes removed during the frame.
func (s *EffectStage) Flush() {
	s.em.RemoveMarkedEntities()
}

// Count returns the live nodes of the given kind.
func (s *EffectStage) Count(kind components.NodeKind) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.SpriteComponent](s.em) {
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok && sprite.Kind == kind {
			n++
		}
	}
	return n
}
