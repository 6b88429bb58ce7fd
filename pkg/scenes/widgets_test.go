package scenes

import (
	"image/color"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/aquabot/firstmate/pkg/game"
)

func TestButtonContains(t *testing.T) {
	b := Button{X: 10, Y: 20, W: 100, H: 40}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{109.9, 59.9, true},
		{110, 30, false},
		{50, 60, false},
		{9.9, 30, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	fonts, err := game.NewFontCache()
	if err != nil {
		t.Fatalf("NewFontCache: %v", err)
	}
	face := fonts.Regular(16)
	s := "Ask questions about laytime, weather, distances, CP clauses, or upload documents for AI-assisted summaries."

	lines := wrapText(s, face, 200)
	if len(lines) < 2 {
		t.Fatalf("expected several lines, got %q", lines)
	}
	for _, l := range lines {
		if w, _ := text.Measure(l, face, 0); w > 200 && strings.Contains(l, " ") {
			t.Errorf("line %q is %.1fpx wide", l, w)
		}
	}
	if got := strings.Join(lines, " "); got != s {
		t.Errorf("rejoined = %q, want %q", got, s)
	}

	if lines := wrapText("   ", face, 200); lines != nil {
		t.Errorf("blank text wrapped to %q", lines)
	}
}

func TestLerpColor(t *testing.T) {
	a := color.NRGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.NRGBA{R: 100, G: 200, B: 0, A: 255}

	if got := lerpColor(a, b, 0); got != a {
		t.Errorf("lerp 0 = %v", got)
	}
	if got := lerpColor(a, b, 2); got != b {
		t.Errorf("lerp clamps above 1: %v", got)
	}
	if got := lerpColor(a, b, 0.5); got != (color.NRGBA{R: 50, G: 150, B: 100, A: 255}) {
		t.Errorf("lerp 0.5 = %v", got)
	}
}
