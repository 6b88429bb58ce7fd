package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyFunc 报告某个按键是否在本帧刚被按下
type KeyFunc func(key ebiten.Key) bool

// JustClicked 返回本帧新按下的点击位置（鼠标左键或新触摸点）
func JustClicked() (int, int, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	return 0, 0, false
}

// JustPressed 是基于 inpututil 的 KeyFunc
func JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
