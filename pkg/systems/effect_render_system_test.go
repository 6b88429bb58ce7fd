package systems

import (
	"math"
	"testing"
	"time"

	"github.com/aquabot/firstmate/pkg/animation"
	"github.com/aquabot/firstmate/pkg/components"
	"github.com/aquabot/firstmate/pkg/effects"
)

func TestRenderCommandsRelativePosition(t *testing.T) {
	stage, em, sched := newTestStage()
	registry := animation.NewRegistry()
	rs := NewEffectRenderSystem(em, sched, registry)

	// 样式表未注入：节点静止显示在原位
	stage.ReplaceParticles([]effects.Particle{{Index: 0, Size: 4, X: 50, Y: 25, Duration: 5}})
	cmds := rs.Commands(800, 600)
	if len(cmds) != 1 {
		t.Fatalf("commands = %d, want 1", len(cmds))
	}
	c := cmds[0]
	if c.X != 402 || c.Y != 152 || c.Radius != 2 || c.Alpha != 1 {
		t.Errorf("static particle = %+v, want centre (402,152) r=2 alpha=1", c)
	}
}

func TestRenderCommandsAnimated(t *testing.T) {
	stage, em, sched := newTestStage()
	registry := animation.NewRegistry()
	registry.Inject(animation.HeroSheet())
	rs := NewEffectRenderSystem(em, sched, registry)

	stage.AddSparkle(effects.Sparkle{At: effects.Point{X: 100, Y: 200}})

	// t=0：scale 0，不绘制
	if cmds := rs.Commands(800, 600); len(cmds) != 0 {
		t.Errorf("sparkle at t=0 should be invisible, got %+v", cmds)
	}

	sched.Advance(300 * time.Millisecond)
	cmds := rs.Commands(800, 600)
	if len(cmds) != 1 {
		t.Fatalf("commands = %d, want 1", len(cmds))
	}
	c := cmds[0]
	if c.X != 102 || c.Y != 202 {
		t.Errorf("sparkle centre = (%v,%v), want (102,202)", c.X, c.Y)
	}
	if c.Radius <= 0 || c.Radius >= 3 || c.Alpha <= 0 || c.Alpha >= 1 {
		t.Errorf("sparkle mid-animation = %+v", c)
	}
}

func TestRenderGlitterFalls(t *testing.T) {
	stage, em, sched := newTestStage()
	registry := animation.NewRegistry()
	registry.Inject(animation.HeroSheet())
	rs := NewEffectRenderSystem(em, sched, registry)

	stage.AddGlitter(effects.Glitter{X: 10, Duration: 2})

	sched.Advance(time.Second)
	cmds := rs.Commands(1000, 600)
	if len(cmds) != 1 {
		t.Fatalf("commands = %d, want 1", len(cmds))
	}
	// 线性下落：-100px → 600px，中点 250px，加半径 3
	if math.Abs(cmds[0].Y-253) > 1e-9 || cmds[0].X != 103 {
		t.Errorf("glitter midpoint = (%v,%v), want (103,253)", cmds[0].X, cmds[0].Y)
	}
}

func TestRenderCommandsZOrder(t *testing.T) {
	stage, em, sched := newTestStage()
	rs := NewEffectRenderSystem(em, sched, nil)

	stage.AddSparkle(effects.Sparkle{At: effects.Point{X: 1, Y: 1}})
	stage.AddGlitter(effects.Glitter{X: 1, Duration: 2})
	stage.ReplaceParticles([]effects.Particle{{Size: 3}, {Size: 3}})

	cmds := rs.Commands(100, 100)
	want := []components.NodeKind{
		components.NodeParticle, components.NodeParticle,
		components.NodeGlitter, components.NodeSparkle,
	}
	if len(cmds) != len(want) {
		t.Fatalf("commands = %d, want %d", len(cmds), len(want))
	}
	for i, k := range want {
		if cmds[i].Kind != k {
			t.Errorf("command %d kind = %v, want %v", i, cmds[i].Kind, k)
		}
	}
}

func TestFade(t *testing.T) {
	c := fade(ColorWhite, 0.5)
	if c.A != 115 {
		t.Errorf("fade alpha = %d, want 115", c.A)
	}
	if fade(ColorWhite, 2).A != ColorWhite.A || fade(ColorWhite, -1).A != 0 {
		t.Error("fade should clamp its factor")
	}
}
