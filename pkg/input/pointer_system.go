package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/aquabot/firstmate/pkg/effects"
)

// PositionFunc 返回当前指针位置；ok 为 false 表示没有可用指针
type PositionFunc func() (x, y int, ok bool)

// PointerSystem 每帧轮询指针位置，位置变化时向总线派发移动事件
type PointerSystem struct {
	bus      *PointerBus
	position PositionFunc

	lastX, lastY int
	seen         bool
}

// NewPointerSystem 创建轮询系统，position 为 nil 时使用 ebiten 鼠标/触摸位置
func NewPointerSystem(bus *PointerBus, position PositionFunc) *PointerSystem {
	if position == nil {
		position = CursorPosition
	}
	return &PointerSystem{bus: bus, position: position}
}

// Update 检查指针是否移动，首次观察到的位置不算移动
func (s *PointerSystem) Update() {
	x, y, ok := s.position()
	if !ok {
		s.seen = false
		return
	}
	if s.seen && (x != s.lastX || y != s.lastY) {
		s.bus.Dispatch(effects.Point{X: float64(x), Y: float64(y)})
	}
	s.lastX, s.lastY = x, y
	s.seen = true
}

// CursorPosition 优先返回触摸位置，否则返回鼠标位置
func CursorPosition() (int, int, bool) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return x, y, true
	}
	x, y := ebiten.CursorPosition()
	return x, y, true
}
