package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/aquabot/firstmate/pkg/config"
	"github.com/aquabot/firstmate/pkg/effects"
	"github.com/aquabot/firstmate/pkg/game"
	"github.com/aquabot/firstmate/pkg/input"
)

const (
	cardWidth  = 520.0
	cardHeight = 400.0
	cardGap    = 60.0
	cardTop    = 250.0
	glowRadius = 192.0
)

// DashboardScene 两个入口卡片，光晕跟随指针
type DashboardScene struct {
	nav      game.Navigator
	settings *game.SettingsManager
	fonts    *game.FontCache
	inputs   Inputs

	pointer     *input.PointerBus
	pointerIn   *input.PointerSystem
	unsubscribe func()

	cards   []Button
	hovered int // -1 表示没有
	glow    effects.Point
	hasGlow bool
}

// NewDashboardScene 创建 dashboard 场景
func NewDashboardScene(nav game.Navigator, settings *game.SettingsManager, fonts *game.FontCache, inputs Inputs) *DashboardScene {
	inputs = inputs.withDefaults()
	s := &DashboardScene{
		nav:      nav,
		settings: settings,
		fonts:    fonts,
		inputs:   inputs,
		pointer:  input.NewPointerBus(),
		hovered:  -1,
	}
	s.pointerIn = input.NewPointerSystem(s.pointer, inputs.Pointer)

	left := (config.GameWindowWidth - (2*cardWidth + cardGap)) / 2
	for i, d := range destinations {
		s.cards = append(s.cards, Button{
			Label:  d.Title,
			X:      left + float64(i)*(cardWidth+cardGap),
			Y:      cardTop,
			W:      cardWidth,
			H:      cardHeight,
			Target: d.Path,
		})
	}
	return s
}

// OnEnter 开始跟踪指针
func (s *DashboardScene) OnEnter() {
	if s.unsubscribe != nil {
		return
	}
	s.unsubscribe = s.pointer.Subscribe(s.onPointerMove)
}

// OnExit 停止跟踪指针
func (s *DashboardScene) OnExit() {
	if s.unsubscribe == nil {
		return
	}
	s.unsubscribe()
	s.unsubscribe = nil
}

func (s *DashboardScene) onPointerMove(p effects.Point) {
	s.glow = p
	s.hasGlow = true
	s.hovered = s.cardAt(p.X, p.Y)
}

func (s *DashboardScene) cardAt(x, y float64) int {
	for i, c := range s.cards {
		if c.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Hovered 返回指针下的卡片目标路径
func (s *DashboardScene) Hovered() (string, bool) {
	if s.hovered < 0 {
		return "", false
	}
	return s.cards[s.hovered].Target, true
}

// Glow 返回光晕中心
func (s *DashboardScene) Glow() (effects.Point, bool) {
	return s.glow, s.hasGlow
}

// Pointer 返回指针事件总线
func (s *DashboardScene) Pointer() *input.PointerBus { return s.pointer }

// Update 处理指针、点击和返回键
func (s *DashboardScene) Update(deltaTime float64) {
	s.pointerIn.Update()

	if s.inputs.KeyPressed(ebiten.KeyEscape) {
		s.navigate(game.PathHero)
		return
	}

	x, y, ok := s.inputs.Click()
	if !ok {
		return
	}
	if i := s.cardAt(float64(x), float64(y)); i >= 0 {
		s.choose(s.cards[i].Target)
	}
}

// choose 记住选择的入口并跳转
func (s *DashboardScene) choose(path string) {
	if s.settings != nil {
		s.settings.SetLastDestination(path)
		if err := s.settings.Save(); err != nil {
			log.Printf("[DashboardScene] Warning: failed to save settings: %v", err)
		}
	}
	s.navigate(path)
}

func (s *DashboardScene) navigate(path string) {
	if s.nav != nil {
		s.nav.Navigate(path)
	}
}

// Draw 绘制页头、光晕和卡片
func (s *DashboardScene) Draw(screen *ebiten.Image) {
	drawBackdrop(screen)

	if s.hasGlow {
		vector.DrawFilledCircle(screen, float32(s.glow.X), float32(s.glow.Y), glowRadius, colorGlow, true)
	}

	if s.fonts == nil {
		return
	}
	centerX := float64(screen.Bounds().Dx()) / 2
	drawText(screen, s.fonts.Bold(56), "AquaBot", centerX, 70, colorSkyBlue, 1, text.AlignCenter, text.AlignCenter)
	drawText(screen, s.fonts.Regular(16), "AI Maritime Intelligence • Online", centerX, 118, colorSkyBlue, 0.9, text.AlignCenter, text.AlignCenter)

	blurb := "Next-generation maritime intelligence platform powered by advanced AI. Plan smarter voyages, optimize operations, and maximize profitability."
	face := s.fonts.Regular(20)
	for i, line := range wrapText(blurb, face, 900) {
		drawText(screen, face, line, centerX, 165+float64(i)*26, colorTextDim, 1, text.AlignCenter, text.AlignCenter)
	}

	last := ""
	if s.settings != nil {
		last = s.settings.GetSettings().LastDestination
	}
	for i, card := range s.cards {
		s.drawCard(screen, card, destinations[i], i == s.hovered, card.Target == last)
	}
}

func (s *DashboardScene) drawCard(screen *ebiten.Image, card Button, d Destination, hovered, lastVisited bool) {
	x, y := float32(card.X), float32(card.Y)
	if hovered {
		y -= 6
	}
	fill := withAlpha(d.Accent, 0.75)
	if hovered {
		fill = d.Accent
	}
	vector.DrawFilledRect(screen, x, y, float32(card.W), float32(card.H), fill, true)
	vector.StrokeRect(screen, x, y, float32(card.W), float32(card.H), 1, withAlpha(colorText, 0.2), true)

	const pad = 28.0
	tx, ty := card.X+pad, float64(y)+pad
	drawText(screen, s.fonts.Bold(26), d.Title, tx, ty, colorText, 1, text.AlignStart, text.AlignStart)
	drawText(screen, s.fonts.Regular(15), d.Subtitle, tx, ty+36, colorTextDim, 1, text.AlignStart, text.AlignStart)

	body := s.fonts.Regular(16)
	ty += 72
	for _, line := range wrapText(d.Description, body, card.W-2*pad) {
		drawText(screen, body, line, tx, ty, colorTextDim, 1, text.AlignStart, text.AlignStart)
		ty += 22
	}

	ty += 12
	for _, f := range d.Features {
		drawText(screen, body, "• "+f, tx, ty, colorText, 0.9, text.AlignStart, text.AlignStart)
		ty += 26
	}

	footer := "Launch " + d.Title
	if lastVisited {
		footer += "  (last visited)"
	}
	drawText(screen, s.fonts.Bold(17), footer, tx, float64(y)+card.H-pad, colorText, 1, text.AlignStart, text.AlignEnd)
}
