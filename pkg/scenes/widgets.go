package scenes

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/aquabot/firstmate/pkg/animation"
)

// 页面配色
var (
	colorBackground = color.NRGBA{R: 15, G: 15, B: 35, A: 255}   // #0f0f23
	colorPanel      = color.NRGBA{R: 26, G: 26, B: 46, A: 255}   // #1a1a2e
	colorCyan       = color.NRGBA{R: 0, G: 212, B: 255, A: 255}  // #00d4ff
	colorSkyBlue    = color.NRGBA{R: 135, G: 206, B: 250, A: 255}
	colorText       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorTextDim    = color.NRGBA{R: 255, G: 255, B: 255, A: 204}
	colorCTA        = color.NRGBA{R: 239, G: 68, B: 68, A: 255}  // red-500
	colorCTAHover   = color.NRGBA{R: 248, G: 113, B: 113, A: 255} // red-400
	colorGlow       = color.NRGBA{R: 59, G: 130, B: 246, A: 26}  // blue-500/10
)

// Button 矩形按钮，点击判定使用未变换的基础矩形
type Button struct {
	Label  string
	X, Y   float64
	W, H   float64
	Target string
}

// Contains 判断点是否落在按钮内（左上闭、右下开）
func (b Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Draw 按动画变换绘制按钮
func (b Button) Draw(screen *ebiten.Image, face *text.GoTextFace, fill color.NRGBA, t animation.Transform) {
	if t.Opacity <= 0 {
		return
	}
	x, y := float32(b.X+t.DX), float32(b.Y+t.DY)
	vector.DrawFilledRect(screen, x, y, float32(b.W), float32(b.H), withAlpha(fill, t.Opacity), true)
	drawText(screen, face, b.Label, b.X+t.DX+b.W/2, b.Y+t.DY+b.H/2, colorText, t.Opacity, text.AlignCenter, text.AlignCenter)
}

// drawText 绘制单行或多行文字；face 为 nil 时不绘制
func drawText(screen *ebiten.Image, face *text.GoTextFace, s string, x, y float64, clr color.NRGBA, alpha float64, h, v text.Align) {
	if face == nil || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = h
	op.SecondaryAlign = v
	op.LineSpacing = face.Size * 1.25
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	text.Draw(screen, s, face, op)
}

// wrapText 按最大宽度折行，单个超长单词独占一行
func wrapText(s string, face *text.GoTextFace, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if width, _ := text.Measure(candidate, face, 0); width > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// drawBackdrop 绘制深色背景和两处径向光晕
func drawBackdrop(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	vector.DrawFilledCircle(screen, w*0.2, h*0.8, h*0.5, color.NRGBA{R: 0, G: 212, B: 255, A: 20}, true)
	vector.DrawFilledCircle(screen, w*0.8, h*0.2, h*0.5, color.NRGBA{R: 135, G: 206, B: 250, A: 20}, true)
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A)*clamp01(a) + 0.5)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
