package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/aquabot/firstmate/pkg/animation"
	"github.com/aquabot/firstmate/pkg/config"
	"github.com/aquabot/firstmate/pkg/game"
)

// DestinationScene /general 与 /special 的占位页
type DestinationScene struct {
	nav    game.Navigator
	fonts  *game.FontCache
	inputs Inputs

	dest Destination
	back Button
}

// NewDestinationScene 为 path 创建占位页；未知路径返回 nil
func NewDestinationScene(path string, nav game.Navigator, fonts *game.FontCache, inputs Inputs) *DestinationScene {
	dest, ok := DestinationFor(path)
	if !ok {
		return nil
	}
	const w, h = 240.0, 56.0
	return &DestinationScene{
		nav:    nav,
		fonts:  fonts,
		inputs: inputs.withDefaults(),
		dest:   dest,
		back: Button{
			Label:  "Back to Dashboard",
			X:      (config.GameWindowWidth - w) / 2,
			Y:      520,
			W:      w,
			H:      h,
			Target: game.PathDashboard,
		},
	}
}

// Destination 返回页面对应的入口
func (s *DestinationScene) Destination() Destination { return s.dest }

// Update 返回按钮或 Esc 回到 dashboard
func (s *DestinationScene) Update(deltaTime float64) {
	if s.nav == nil {
		return
	}
	if s.inputs.KeyPressed(ebiten.KeyEscape) {
		s.nav.Navigate(s.back.Target)
		return
	}
	if x, y, ok := s.inputs.Click(); ok && s.back.Contains(float64(x), float64(y)) {
		s.nav.Navigate(s.back.Target)
	}
}

// Draw 绘制标题和返回按钮
func (s *DestinationScene) Draw(screen *ebiten.Image) {
	drawBackdrop(screen)
	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), 8, s.dest.Accent, true)

	if s.fonts == nil {
		return
	}
	centerX := float64(screen.Bounds().Dx()) / 2
	drawText(screen, s.fonts.Bold(52), s.dest.Title, centerX, 220, colorText, 1, text.AlignCenter, text.AlignCenter)
	drawText(screen, s.fonts.Regular(24), s.dest.Subtitle, centerX, 290, colorSkyBlue, 1, text.AlignCenter, text.AlignCenter)
	drawText(screen, s.fonts.Regular(18), "This assistant is not available in the desktop build yet.", centerX, 360, colorTextDim, 1, text.AlignCenter, text.AlignCenter)
	s.back.Draw(screen, s.fonts.Bold(20), colorPanel, animation.Identity())
}
