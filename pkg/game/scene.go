package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one view of the application (landing hero, dashboard, ...).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Mountable 是一个可选接口，场景在进入和离开时获得通知
//
// SceneManager 在切换场景时先调用旧场景的 OnExit，再调用新场景的 OnEnter。
// 场景应在 OnEnter 中获取定时器、监听器等资源，并在 OnExit 中全部释放。
type Mountable interface {
	OnEnter()
	OnExit()
}

// Navigator 由路由器实现，场景通过它请求跳转
type Navigator interface {
	Navigate(path string) bool
}
