package scenes

import (
	"math"
	"time"

	"github.com/aquabot/firstmate/pkg/game"
	"github.com/aquabot/firstmate/pkg/input"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Inputs 场景的输入来源，字段为 nil 时使用 ebiten 的实际输入
type Inputs struct {
	Pointer    input.PositionFunc
	Click      input.PositionFunc
	KeyPressed input.KeyFunc
}

func (in Inputs) withDefaults() Inputs {
	if in.Pointer == nil {
		in.Pointer = input.CursorPosition
	}
	if in.Click == nil {
		in.Click = input.JustClicked
	}
	if in.KeyPressed == nil {
		in.KeyPressed = input.JustPressed
	}
	return in
}

// frameDuration 把帧间隔（秒）转换为调度器时长，四舍五入到纳秒
func frameDuration(deltaTime float64) time.Duration {
	if deltaTime <= 0 {
		return 0
	}
	return time.Duration(math.Round(deltaTime * float64(time.Second)))
}
