package components

// PositionComponent 节点位置
//
// Relative 为 true 时 X/Y 是视口百分比（0-100），否则是像素坐标。
type PositionComponent struct {
	X, Y     float64
	Relative bool
}
