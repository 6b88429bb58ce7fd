package components

import "image/color"

// NodeKind 特效节点类型
type NodeKind int

const (
	NodeParticle NodeKind = iota
	NodeGlitter
	NodeSparkle
)

func (k NodeKind) String() string {
	switch k {
	case NodeParticle:
		return "particle"
	case NodeGlitter:
		return "glitter"
	case NodeSparkle:
		return "sparkle"
	default:
		return "unknown"
	}
}

// SpriteComponent 圆点精灵
//
// 落地页的网页版使用径向/线性渐变，这里用内外两层同心圆近似：
// Outer 是外圈颜色，Inner 是中心高光颜色（与 Outer 相同时为纯色圆点）。
type SpriteComponent struct {
	Kind   NodeKind
	Size   float64 // 直径（像素）
	Inner  color.NRGBA
	Outer  color.NRGBA
	ZIndex int // 绘制层级，数值大的后绘制
}
