package effects

import (
	"log"
	"time"

	"github.com/aquabot/firstmate/pkg/animation"
	"github.com/aquabot/firstmate/pkg/random"
)

// Options wires a Manager to its collaborators. Any of Target, Styles and
// Pointer may be nil, which disables the corresponding part of the effect.
type Options struct {
	Random    random.Source
	Scheduler Scheduler
	Target    Target
	Styles    StyleInjector
	Pointer   PointerSource
	Sheet     *animation.Sheet // defaults to animation.HeroSheet()
	Config    Config
}

// session records what one activation acquired, so that deactivation can
// release exactly that.
type session struct {
	style       *animation.Injection
	unsubscribe func()
	particles   []Particle
	startedAt   time.Time
}

// Manager mounts and unmounts the hero effects. Activate and Deactivate
// are both idempotent, since the host view drives them from mount and
// unmount events that may repeat.
type Manager struct {
	opts Options

	generator *FieldGenerator
	emitter   *GlitterEmitter
	trail     *SparkleTrail

	session *session
}

// NewManager creates an idle manager. A nil Random is replaced by a
// time-seeded source; a nil Scheduler panics on Activate.
func NewManager(opts Options) *Manager {
	if opts.Random == nil {
		opts.Random = random.NewSeeded(uint64(time.Now().UnixNano()))
	}
	if opts.Sheet == nil {
		opts.Sheet = animation.HeroSheet()
	}
	m := &Manager{opts: opts}
	m.build()
	return m
}

func (m *Manager) build() {
	o := m.opts
	m.generator = NewFieldGenerator(o.Random, o.Config)
	m.emitter = NewGlitterEmitter(o.Random, o.Scheduler, o.Target, o.Config)
	m.trail = NewSparkleTrail(o.Random, o.Scheduler, o.Target, o.Config)
}

// Activate injects the shared sheet, renders a fresh particle field, then
// starts the glitter stream and the pointer listener. The field is fully
// generated before anything time- or event-driven starts.
func (m *Manager) Activate() {
	if m.session != nil {
		return
	}
	s := &session{startedAt: time.Now()}

	if m.opts.Styles != nil {
		s.style = m.opts.Styles.Inject(m.opts.Sheet)
	}
	s.particles = m.generator.Populate(m.opts.Target, m.opts.Config.ParticleCount)
	m.emitter.Start()
	if m.opts.Pointer != nil {
		s.unsubscribe = m.opts.Pointer.Subscribe(m.trail.OnPointerMove)
	}

	m.session = s
	log.Printf("[EffectManager] activated: %d particles", len(s.particles))
}

// Deactivate stops the glitter stream, detaches the pointer listener and
// removes the injected sheet. Glitter and sparkles already on screen are
// left to remove themselves.
func (m *Manager) Deactivate() {
	s := m.session
	if s == nil {
		return
	}

	m.emitter.Stop()
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.style.Remove()

	m.session = nil
	log.Printf("[EffectManager] deactivated after %v", time.Since(s.startedAt).Round(time.Millisecond))
}

// Active reports whether a session is mounted.
func (m *Manager) Active() bool {
	return m.session != nil
}

// Particles returns the field rendered by the current session.
func (m *Manager) Particles() []Particle {
	if m.session == nil {
		return nil
	}
	return m.session.particles
}

// Emitter exposes the glitter emitter for inspection.
func (m *Manager) Emitter() *GlitterEmitter {
	return m.emitter
}

// Trail exposes the sparkle trail for inspection.
func (m *Manager) Trail() *SparkleTrail {
	return m.trail
}

// Config returns the tuning in use.
func (m *Manager) Config() Config {
	return m.opts.Config
}

// Reload switches to new tuning. An active session is remounted so the new
// values take effect at once.
func (m *Manager) Reload(cfg Config) {
	wasActive := m.Active()
	m.Deactivate()

	m.opts.Config = cfg
	m.build()
	log.Printf("[EffectManager] config reloaded")

	if wasActive {
		m.Activate()
	}
}
