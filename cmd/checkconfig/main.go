// Package main validates an effects config file and prints the values the
// app would run with.
//
// Usage:
//
//	go run ./cmd/checkconfig [path]    (default: data/effects.yaml)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aquabot/firstmate/pkg/config"
	"github.com/aquabot/firstmate/pkg/effects"
)

func main() {
	path := config.DefaultEffectsConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	os.Exit(run(os.Stdout, path))
}

func run(w io.Writer, path string) int {
	cfg, err := config.LoadEffectsConfig(path)
	if err != nil {
		fmt.Fprintf(w, "❌ %v\n", err)
		return 1
	}

	fmt.Fprintf(w, "✅ %s 格式正确\n", path)
	printConfig(w, cfg)

	if cfg != effects.DefaultConfig() {
		fmt.Fprintf(w, "ℹ️  与默认值不同\n")
	}
	return 0
}

func printConfig(w io.Writer, cfg effects.Config) {
	fmt.Fprintf(w, "  particles: %d, size %v-%vpx, duration %v-%vs, delay %v-%vs\n",
		cfg.ParticleCount,
		cfg.ParticleSize.Min, cfg.ParticleSize.Max,
		cfg.ParticleDuration.Min, cfg.ParticleDuration.Max,
		cfg.ParticleDelay.Min, cfg.ParticleDelay.Max)
	fmt.Fprintf(w, "  glitter:   every %v, fall %v-%vs, margin %v\n",
		cfg.GlitterInterval, cfg.GlitterFall.Min, cfg.GlitterFall.Max, cfg.GlitterMargin)
	fmt.Fprintf(w, "  sparkle:   chance %v, lifetime %v\n",
		cfg.SparkleChance, cfg.SparkleLifetime)
}
