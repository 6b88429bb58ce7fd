package random

import (
	"math"
	"testing"
)

// TestRandUniformRange 验证 Uniform 的取值范围
func TestRandUniformRange(t *testing.T) {
	r := NewSeeded(42)
	for i := 0; i < 10000; i++ {
		v := r.Uniform(2, 6)
		if v < 2 || v >= 6 {
			t.Fatalf("Uniform(2, 6) = %v, out of range", v)
		}
	}
}

// TestRandSeedDeterministic 验证相同种子产生相同序列
func TestRandSeedDeterministic(t *testing.T) {
	a := NewSeeded(7)
	b := NewSeeded(7)
	for i := 0; i < 100; i++ {
		if va, vb := a.Uniform(0, 1), b.Uniform(0, 1); va != vb {
			t.Fatalf("draw %d differs: %v vs %v", i, va, vb)
		}
	}
}

func TestSequenceMapsAndCycles(t *testing.T) {
	s := NewSequence(0, 0.5)

	tests := []struct {
		min, max float64
		want     float64
	}{
		{0, 100, 0},
		{0, 100, 50},
		{2, 6, 2},
		{2, 6, 4},
	}
	for i, tt := range tests {
		if got := s.Uniform(tt.min, tt.max); got != tt.want {
			t.Errorf("draw %d: Uniform(%v, %v) = %v, want %v", i, tt.min, tt.max, got, tt.want)
		}
	}
	if s.Draws() != 4 {
		t.Errorf("Draws() = %d, want 4", s.Draws())
	}
}

func TestSequenceEmpty(t *testing.T) {
	s := NewSequence()
	if got := s.Uniform(3, 9); got != 3 {
		t.Errorf("empty sequence Uniform(3, 9) = %v, want 3", got)
	}
}

func TestChance(t *testing.T) {
	if !Chance(NewSequence(0.05), 0.1) {
		t.Error("Chance with draw 0.05 and p 0.1 should succeed")
	}
	if Chance(NewSequence(0.1), 0.1) {
		t.Error("Chance with draw 0.1 and p 0.1 should fail (strict less-than)")
	}
}

// TestChanceConvergence 验证大样本下成功比例收敛到 p
func TestChanceConvergence(t *testing.T) {
	r := NewSeeded(2024)
	const n = 10000
	hits := 0
	for i := 0; i < n; i++ {
		if Chance(r, 0.1) {
			hits++
		}
	}
	ratio := float64(hits) / n
	// 标准差约 0.003，允许 4 个标准差
	if math.Abs(ratio-0.1) > 0.012 {
		t.Errorf("success ratio = %.4f, want ~0.1", ratio)
	}
}

func TestChoice(t *testing.T) {
	options := []Weighted[string]{
		{Value: "white", Weight: 1},
		{Value: "never", Weight: 0},
		{Value: "gold", Weight: 3},
	}

	tests := []struct {
		draw float64
		want string
	}{
		{0.0, "white"},
		{0.2, "white"},
		{0.25, "gold"},
		{0.99, "gold"},
	}
	for _, tt := range tests {
		got, ok := Choice(NewSequence(tt.draw), options)
		if !ok || got != tt.want {
			t.Errorf("Choice(draw=%v) = %q, %v; want %q", tt.draw, got, ok, tt.want)
		}
	}

	if _, ok := Choice(NewSequence(0.5), []Weighted[string]{{Value: "x", Weight: 0}}); ok {
		t.Error("Choice with only zero weights should report false")
	}
}
