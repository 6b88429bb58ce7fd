package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aquabot/firstmate/pkg/effects"
)

func TestParseEffectsConfigFull(t *testing.T) {
	data := []byte(`
particles:
  count: 20
  size: {min: 1, max: 3}
  duration: {min: 5, max: 6}
  delay: {min: 0, max: 1}
glitter:
  intervalMs: 150
  fall: {min: 1, max: 2}
  marginMs: 500
sparkle:
  chance: 0.25
  lifetimeMs: 400
`)
	cfg, err := ParseEffectsConfig(data)
	if err != nil {
		t.Fatalf("ParseEffectsConfig: %v", err)
	}

	want := effects.Config{
		ParticleCount:    20,
		ParticleSize:     effects.Range{Min: 1, Max: 3},
		ParticleDuration: effects.Range{Min: 5, Max: 6},
		ParticleDelay:    effects.Range{Min: 0, Max: 1},
		GlitterInterval:  150 * time.Millisecond,
		GlitterFall:      effects.Range{Min: 1, Max: 2},
		GlitterMargin:    500 * time.Millisecond,
		SparkleChance:    0.25,
		SparkleLifetime:  400 * time.Millisecond,
	}
	if cfg != want {
		t.Errorf("config = %+v\nwant     %+v", cfg, want)
	}
}

// TestParseEffectsConfigPartial 缺省字段保留默认值
func TestParseEffectsConfigPartial(t *testing.T) {
	cfg, err := ParseEffectsConfig([]byte("sparkle:\n  chance: 0.5\n"))
	if err != nil {
		t.Fatalf("ParseEffectsConfig: %v", err)
	}

	want := effects.DefaultConfig()
	want.SparkleChance = 0.5
	if cfg != want {
		t.Errorf("config = %+v, want defaults with chance 0.5", cfg)
	}
}

func TestParseEffectsConfigEmpty(t *testing.T) {
	cfg, err := ParseEffectsConfig(nil)
	if err != nil {
		t.Fatalf("ParseEffectsConfig(nil): %v", err)
	}
	if cfg != effects.DefaultConfig() {
		t.Errorf("empty config = %+v, want defaults", cfg)
	}
}

func TestParseEffectsConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "particles: [unterminated"},
		{"wrong type", "particles:\n  count: many\n"},
		{"invalid range", "particles:\n  size: {min: 6, max: 2}\n"},
		{"zero interval", "glitter:\n  intervalMs: 0\n"},
		{"chance too high", "sparkle:\n  chance: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseEffectsConfig([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSaveAndLoadEffectsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "effects.yaml")
	cfg := effects.DefaultConfig()
	cfg.ParticleCount = 75

	if err := SaveEffectsConfig(path, cfg); err != nil {
		t.Fatalf("SaveEffectsConfig: %v", err)
	}
	loaded, err := LoadEffectsConfig(path)
	if err != nil {
		t.Fatalf("LoadEffectsConfig: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}

func TestLoadEffectsConfigMissing(t *testing.T) {
	if _, err := LoadEffectsConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

// TestDefaultEffectsFileMatchesDefaults 仓库中的 data/effects.yaml 与默认值一致
func TestDefaultEffectsFileMatchesDefaults(t *testing.T) {
	data, err := os.ReadFile("../../data/effects.yaml")
	if err != nil {
		t.Fatalf("read data/effects.yaml: %v", err)
	}
	cfg, err := ParseEffectsConfig(data)
	if err != nil {
		t.Fatalf("parse data/effects.yaml: %v", err)
	}
	if cfg != effects.DefaultConfig() {
		t.Errorf("data/effects.yaml = %+v, want %+v", cfg, effects.DefaultConfig())
	}
}
