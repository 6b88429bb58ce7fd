package effects

import (
	"testing"

	"github.com/aquabot/firstmate/pkg/random"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		index int
		want  Color
	}{
		{0, White},
		{1, SkyBlue},
		{2, Gold},
		{3, White},
		{4, Gold},
		{5, SkyBlue},
		{6, White},
		{8, Gold},
		{49, SkyBlue},
	}
	for _, tt := range tests {
		if got := ColorFor(tt.index); got != tt.want {
			t.Errorf("ColorFor(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestGenerateRanges(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		g := NewFieldGenerator(random.NewSeeded(seed), DefaultConfig())
		particles := g.Generate(50)
		if len(particles) != 50 {
			t.Fatalf("seed %d: got %d particles, want 50", seed, len(particles))
		}
		for i, p := range particles {
			if p.Index != i {
				t.Errorf("particle %d has index %d", i, p.Index)
			}
			if p.Size < 2 || p.Size >= 6 {
				t.Errorf("particle %d size %v out of [2,6)", i, p.Size)
			}
			if p.X < 0 || p.X >= 100 || p.Y < 0 || p.Y >= 100 {
				t.Errorf("particle %d position (%v,%v) out of [0,100)", i, p.X, p.Y)
			}
			if p.Duration < 4 || p.Duration >= 7 {
				t.Errorf("particle %d duration %v out of [4,7)", i, p.Duration)
			}
			if p.Delay < 0 || p.Delay >= 2 {
				t.Errorf("particle %d delay %v out of [0,2)", i, p.Delay)
			}
			if p.Color != ColorFor(i) {
				t.Errorf("particle %d color %v, want %v", i, p.Color, ColorFor(i))
			}
		}
	}
}

// TestGenerateDrawOrder 验证随机取值顺序：尺寸、X、Y、时长、延迟
func TestGenerateDrawOrder(t *testing.T) {
	g := NewFieldGenerator(random.NewSequence(0.5, 0.1, 0.2, 0, 0.5), DefaultConfig())
	p := g.Generate(1)[0]

	if p.Size != 4 || p.X != 10 || p.Y != 20 || p.Duration != 4 || p.Delay != 1 {
		t.Errorf("particle = %+v, want size 4 pos (10,20) duration 4 delay 1", p)
	}
}

func TestGenerateNonPositiveCount(t *testing.T) {
	g := NewFieldGenerator(random.NewSeeded(1), DefaultConfig())
	if got := g.Generate(0); len(got) != 0 {
		t.Errorf("Generate(0) returned %d particles", len(got))
	}
	if got := g.Generate(-3); len(got) != 0 {
		t.Errorf("Generate(-3) returned %d particles", len(got))
	}
}

func TestPopulateReplaces(t *testing.T) {
	target := newRecordingTarget()
	g := NewFieldGenerator(random.NewSeeded(1), DefaultConfig())

	first := g.Populate(target, 50)
	second := g.Populate(target, 50)

	if target.replaces != 2 {
		t.Errorf("ReplaceParticles called %d times, want 2", target.replaces)
	}
	if len(target.particles) != 50 {
		t.Errorf("target holds %d particles, want 50 (no accumulation)", len(target.particles))
	}
	if first[0] == second[0] {
		t.Error("regeneration should produce a new set")
	}
	if target.particles[0] != second[0] {
		t.Error("target should hold the latest set")
	}
}

func TestPopulateNilTarget(t *testing.T) {
	g := NewFieldGenerator(random.NewSeeded(1), DefaultConfig())
	if got := g.Populate(nil, 50); got != nil {
		t.Errorf("Populate(nil) = %d particles, want nil", len(got))
	}
}
