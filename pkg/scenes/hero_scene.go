package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/aquabot/firstmate/pkg/animation"
	"github.com/aquabot/firstmate/pkg/clock"
	"github.com/aquabot/firstmate/pkg/config"
	"github.com/aquabot/firstmate/pkg/ecs"
	"github.com/aquabot/firstmate/pkg/effects"
	"github.com/aquabot/firstmate/pkg/game"
	"github.com/aquabot/firstmate/pkg/input"
	"github.com/aquabot/firstmate/pkg/random"
	"github.com/aquabot/firstmate/pkg/systems"
)

// HeroSceneOptions 落地页场景的依赖
type HeroSceneOptions struct {
	Navigator game.Navigator
	Settings  *game.SettingsManager // 可为 nil，此时特效默认开启且不保存
	Fonts     *game.FontCache       // 可为 nil，此时不绘制文字
	Config    effects.Config
	Random    random.Source // 可为 nil，使用时间种子
	Inputs    Inputs
}

// heroCopy 一行带动画类的文案
type heroCopy struct {
	text     string
	class    string
	size     float64
	bold     bool
	y        float64
	color    colorRole
	gradient bool
}

type colorRole int

const (
	roleText colorRole = iota
	roleDim
)

var heroLines = []heroCopy{
	{text: "Maritime Logistics", class: "fade-in-up", size: 64, bold: true, y: 170, gradient: true},
	{text: "Reinvented with AI", class: "fade-in-up", size: 64, bold: true, y: 245, gradient: true},
	{text: "Digital First Mate", class: "fade-in-up-delay-1", size: 34, y: 320},
	{text: "The AI-powered Digital First Mate for modern maritime operations.", class: "fade-in-up-delay-2", size: 20, y: 375, color: roleDim},
	{text: "Optimize voyages, match cargo, and get critical market insights with cutting-edge technology.", class: "fade-in-up-delay-2", size: 20, y: 402, color: roleDim},
}

var heroFeatures = []string{
	"Smart Voyage Planning",
	"Cargo Matching Assistant",
	"Market Intelligence",
	"Port Intelligence",
	"Cost Management",
}

// HeroScene 落地页
//
// 场景拥有特效运行所需的全部部件：模拟时钟、实体舞台、动画注册表和指针总线。
// 挂载时激活特效，卸载时停用；短暂节点在卸载后不再推进，随场景一起丢弃。
type HeroScene struct {
	nav      game.Navigator
	settings *game.SettingsManager
	fonts    *game.FontCache
	inputs   Inputs

	scheduler *clock.Scheduler
	entities  *ecs.EntityManager
	stage     *systems.EffectStage
	renderer  *systems.EffectRenderSystem
	styles    *animation.Registry
	pointer   *input.PointerBus
	pointerIn *input.PointerSystem
	effects   *effects.Manager

	cta        Button
	ctaHovered bool
	enabled    bool // 无 Settings 时的特效开关
}

// NewHeroScene 创建落地页场景（尚未挂载）
func NewHeroScene(opts HeroSceneOptions) *HeroScene {
	inputs := opts.Inputs.withDefaults()
	s := &HeroScene{
		nav:       opts.Navigator,
		settings:  opts.Settings,
		fonts:     opts.Fonts,
		inputs:    inputs,
		scheduler: clock.NewScheduler(),
		entities:  ecs.NewEntityManager(),
		styles:    animation.NewRegistry(),
		pointer:   input.NewPointerBus(),
		enabled:   true,
	}
	s.stage = systems.NewEffectStage(s.entities, s.scheduler, opts.Config)
	s.renderer = systems.NewEffectRenderSystem(s.entities, s.scheduler, s.styles)
	s.pointerIn = input.NewPointerSystem(s.pointer, inputs.Pointer)
	s.effects = effects.NewManager(effects.Options{
		Random:    opts.Random,
		Scheduler: s.scheduler,
		Target:    s.stage,
		Styles:    s.styles,
		Pointer:   s.pointer,
		Config:    opts.Config,
	})

	const w, h = 220.0, 64.0
	s.cta = Button{
		Label:  "Get Started",
		X:      (config.GameWindowWidth - w) / 2,
		Y:      450,
		W:      w,
		H:      h,
		Target: game.PathDashboard,
	}
	return s
}

// OnEnter 挂载：开启特效（若偏好允许）
func (s *HeroScene) OnEnter() {
	if !s.EffectsEnabled() {
		log.Printf("[HeroScene] effects disabled by settings")
		return
	}
	s.effects.Activate()
}

// OnExit 卸载：停止发射并释放监听器和动画表
func (s *HeroScene) OnExit() {
	s.effects.Deactivate()
}

// EffectsEnabled 当前的特效偏好
func (s *HeroScene) EffectsEnabled() bool {
	if s.settings != nil {
		return s.settings.GetSettings().EffectsEnabled
	}
	return s.enabled
}

// ToggleEffects 切换特效偏好并立即生效
func (s *HeroScene) ToggleEffects() {
	enabled := !s.EffectsEnabled()
	if s.settings != nil {
		s.settings.SetEffectsEnabled(enabled)
		if err := s.settings.Save(); err != nil {
			log.Printf("[HeroScene] Warning: failed to save settings: %v", err)
		}
	} else {
		s.enabled = enabled
	}

	if enabled {
		s.effects.Activate()
	} else {
		s.effects.Deactivate()
	}
	log.Printf("[HeroScene] effects enabled: %v", enabled)
}

// ApplyConfig 应用新的特效参数
func (s *HeroScene) ApplyConfig(cfg effects.Config) {
	s.stage.SetConfig(cfg)
	s.effects.Reload(cfg)
}

// Effects 返回特效生命周期管理器
func (s *HeroScene) Effects() *effects.Manager { return s.effects }

// Stage 返回特效舞台
func (s *HeroScene) Stage() *systems.EffectStage { return s.stage }

// Styles 返回动画注册表
func (s *HeroScene) Styles() *animation.Registry { return s.styles }

// Pointer 返回指针事件总线
func (s *HeroScene) Pointer() *input.PointerBus { return s.pointer }

// Scheduler 返回场景时钟
func (s *HeroScene) Scheduler() *clock.Scheduler { return s.scheduler }

// Update 推进时钟、派发指针事件、回收已移除的节点，然后处理点击
func (s *HeroScene) Update(deltaTime float64) {
	s.scheduler.Advance(frameDuration(deltaTime))
	s.pointerIn.Update()
	s.stage.Flush()

	if px, py, ok := s.inputs.Pointer(); ok {
		s.ctaHovered = s.cta.Contains(float64(px), float64(py))
	}

	if s.inputs.KeyPressed(ebiten.KeyE) {
		s.ToggleEffects()
	}

	if x, y, ok := s.inputs.Click(); ok && s.cta.Contains(float64(x), float64(y)) {
		if s.nav != nil {
			s.nav.Navigate(s.cta.Target)
		}
		return
	}
	if s.inputs.KeyPressed(ebiten.KeyEnter) && s.nav != nil {
		s.nav.Navigate(s.cta.Target)
	}
}

// Draw 绘制背景、特效层和文案
func (s *HeroScene) Draw(screen *ebiten.Image) {
	drawBackdrop(screen)
	s.renderer.Draw(screen)

	if s.fonts == nil {
		return
	}
	elapsed := s.scheduler.Now().Seconds()
	viewH := float64(screen.Bounds().Dy())
	centerX := float64(screen.Bounds().Dx()) / 2

	s.drawBrand(screen, elapsed, viewH)

	gradient := s.styles.Apply("gradient-text", elapsed, viewH)
	titleColor := lerpColor(colorCyan, colorSkyBlue, gradient.DX/100)
	for _, line := range heroLines {
		t := s.styles.Apply(line.class, elapsed, viewH)
		face := s.fonts.Regular(line.size)
		if line.bold {
			face = s.fonts.Bold(line.size)
		}
		clr := colorText
		switch {
		case line.gradient:
			clr = titleColor
		case line.color == roleDim:
			clr = colorTextDim
		}
		drawText(screen, face, line.text, centerX+t.DX, line.y+t.DY, clr, t.Opacity, text.AlignCenter, text.AlignCenter)
	}

	fill := colorCTA
	if s.ctaHovered {
		fill = colorCTAHover
	}
	s.cta.Draw(screen, s.fonts.Bold(22), fill, s.styles.Apply("fade-in-up-delay-3", elapsed, viewH))

	s.drawFeatures(screen, elapsed, viewH)
}

// drawBrand 左上角的标识，船形图标带漂浮动画
func (s *HeroScene) drawBrand(screen *ebiten.Image, elapsed, viewH float64) {
	bob := s.styles.Apply("ship-float", elapsed, viewH)
	vector.DrawFilledCircle(screen, 48, float32(40+bob.DY), 18, colorCyan, true)

	t := s.styles.Apply("slide-in-down", elapsed, viewH)
	gradient := s.styles.Apply("gradient-text", elapsed, viewH)
	clr := lerpColor(colorCyan, colorSkyBlue, gradient.DX/100)
	drawText(screen, s.fonts.Bold(24), "AquaBot", 76, 40+t.DY, clr, t.Opacity, text.AlignStart, text.AlignCenter)

	for i, class := range []string{"wave-anim", "wave-anim-delay"} {
		w := s.styles.Apply(class, elapsed, viewH)
		x := float32(34 + i*16)
		vector.DrawFilledRect(screen, x, 64, float32(12*w.ScaleX), float32(3*w.ScaleY), withAlpha(colorSkyBlue, w.Opacity), true)
	}
}

// drawFeatures 底部的功能卡片标题
func (s *HeroScene) drawFeatures(screen *ebiten.Image, elapsed, viewH float64) {
	t := s.styles.Apply("fade-in-up-delay-4", elapsed, viewH)
	if t.Opacity <= 0 {
		return
	}

	const cardW, cardH, gap = 220.0, 90.0, 16.0
	total := float64(len(heroFeatures))*cardW + float64(len(heroFeatures)-1)*gap
	x := (float64(screen.Bounds().Dx()) - total) / 2
	y := 570 + t.DY
	face := s.fonts.Bold(17)
	for _, title := range heroFeatures {
		vector.DrawFilledRect(screen, float32(x), float32(y), cardW, cardH, withAlpha(colorPanel, 0.85*t.Opacity), true)
		vector.StrokeRect(screen, float32(x), float32(y), cardW, cardH, 1, withAlpha(colorCyan, 0.3*t.Opacity), true)
		drawText(screen, face, title, x+cardW/2, y+cardH/2, colorText, t.Opacity, text.AlignCenter, text.AlignCenter)
		x += cardW + gap
	}
}
