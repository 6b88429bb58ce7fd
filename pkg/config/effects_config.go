package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aquabot/firstmate/pkg/effects"
	"github.com/aquabot/firstmate/pkg/embedded"
)

// DefaultEffectsConfigPath 嵌入的默认特效配置
const DefaultEffectsConfigPath = "data/effects.yaml"

// EffectsConfig 特效配置文件结构
//
// 配置文件位置: data/effects.yaml
// 缺省的字段保留默认值，所以配置文件只需包含要调整的项。
type EffectsConfig struct {
	Particles ParticlesConfig `yaml:"particles"`
	Glitter   GlitterConfig   `yaml:"glitter"`
	Sparkle   SparkleConfig   `yaml:"sparkle"`
}

// ParticlesConfig 环境粒子配置
type ParticlesConfig struct {
	Count    int        `yaml:"count"`
	Size     RangeValue `yaml:"size"`
	Duration RangeValue `yaml:"duration"`
	Delay    RangeValue `yaml:"delay"`
}

// GlitterConfig 闪粉下落配置
type GlitterConfig struct {
	IntervalMs int        `yaml:"intervalMs"`
	Fall       RangeValue `yaml:"fall"`
	MarginMs   int        `yaml:"marginMs"`
}

// SparkleConfig 指针光点配置
type SparkleConfig struct {
	Chance     float64 `yaml:"chance"`
	LifetimeMs int     `yaml:"lifetimeMs"`
}

// RangeValue 取值区间 [min, max)
type RangeValue struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// FromEffects 由运行时配置构建配置文件结构
func FromEffects(c effects.Config) EffectsConfig {
	return EffectsConfig{
		Particles: ParticlesConfig{
			Count:    c.ParticleCount,
			Size:     RangeValue(c.ParticleSize),
			Duration: RangeValue(c.ParticleDuration),
			Delay:    RangeValue(c.ParticleDelay),
		},
		Glitter: GlitterConfig{
			IntervalMs: int(c.GlitterInterval / time.Millisecond),
			Fall:       RangeValue(c.GlitterFall),
			MarginMs:   int(c.GlitterMargin / time.Millisecond),
		},
		Sparkle: SparkleConfig{
			Chance:     c.SparkleChance,
			LifetimeMs: int(c.SparkleLifetime / time.Millisecond),
		},
	}
}

// Effects 转换为运行时配置
func (c EffectsConfig) Effects() effects.Config {
	return effects.Config{
		ParticleCount:    c.Particles.Count,
		ParticleSize:     effects.Range(c.Particles.Size),
		ParticleDuration: effects.Range(c.Particles.Duration),
		ParticleDelay:    effects.Range(c.Particles.Delay),
		GlitterInterval:  time.Duration(c.Glitter.IntervalMs) * time.Millisecond,
		GlitterFall:      effects.Range(c.Glitter.Fall),
		GlitterMargin:    time.Duration(c.Glitter.MarginMs) * time.Millisecond,
		SparkleChance:    c.Sparkle.Chance,
		SparkleLifetime:  time.Duration(c.Sparkle.LifetimeMs) * time.Millisecond,
	}
}

// ParseEffectsConfig 解析 YAML 特效配置并校验
//
// 参数:
//   - data: YAML 内容，缺省字段使用 effects.DefaultConfig() 的值
//
// 返回:
//   - effects.Config: 运行时配置
//   - error: 解析或校验失败时返回错误
func ParseEffectsConfig(data []byte) (effects.Config, error) {
	file := FromEffects(effects.DefaultConfig())
	if err := yaml.Unmarshal(data, &file); err != nil {
		return effects.Config{}, fmt.Errorf("failed to parse effects config: %w", err)
	}

	cfg := file.Effects()
	if err := cfg.Validate(); err != nil {
		return effects.Config{}, fmt.Errorf("invalid effects config: %w", err)
	}
	return cfg, nil
}

// LoadEffectsConfig 从文件系统加载特效配置
func LoadEffectsConfig(path string) (effects.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return effects.Config{}, fmt.Errorf("failed to read effects config: %w", err)
	}
	return ParseEffectsConfig(data)
}

// LoadEmbeddedEffectsConfig 加载嵌入的默认特效配置
func LoadEmbeddedEffectsConfig() (effects.Config, error) {
	data, err := embedded.ReadFile(DefaultEffectsConfigPath)
	if err != nil {
		return effects.Config{}, fmt.Errorf("failed to read embedded effects config: %w", err)
	}
	return ParseEffectsConfig(data)
}

// SaveEffectsConfig 将配置写入文件（用于导出默认配置）
func SaveEffectsConfig(path string, cfg effects.Config) error {
	data, err := yaml.Marshal(FromEffects(cfg))
	if err != nil {
		return fmt.Errorf("failed to marshal effects config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write effects config: %w", err)
	}
	return nil
}
