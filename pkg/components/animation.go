package components

import (
	"github.com/aquabot/firstmate/pkg/animation"
)

// AnimationComponent 节点上播放的关键帧动画
//
// Name 在绘制时通过动画注册表解析；注册表中不存在（例如样式表已移除）时节点静止显示。
type AnimationComponent struct {
	Name   string
	Timing animation.Timing
}
