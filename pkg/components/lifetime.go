package components

import "time"

// LifetimeComponent 记录节点的创建时间和声明寿命
//
// 节点的移除由创建者预约的一次性计时器完成，这里只用于计算动画进度和调试显示。
type LifetimeComponent struct {
	Born     time.Duration // 创建时的调度器时间
	Lifespan time.Duration // 声明寿命，0 表示常驻
}
