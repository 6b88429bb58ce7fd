package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/aquabot/firstmate/pkg/effects"
	"github.com/aquabot/firstmate/pkg/game"
	"github.com/aquabot/firstmate/pkg/random"
)

// scriptedInput 可编程的输入来源
type scriptedInput struct {
	x, y       int
	hasPointer bool
	clicks     [][2]int
	keys       map[ebiten.Key]bool
}

func newScriptedInput() *scriptedInput {
	return &scriptedInput{keys: make(map[ebiten.Key]bool)}
}

func (in *scriptedInput) moveTo(x, y int) {
	in.x, in.y = x, y
	in.hasPointer = true
}

func (in *scriptedInput) click(x, y float64) {
	in.clicks = append(in.clicks, [2]int{int(x), int(y)})
}

func (in *scriptedInput) press(key ebiten.Key) {
	in.keys[key] = true
}

func (in *scriptedInput) inputs() Inputs {
	return Inputs{
		Pointer: func() (int, int, bool) {
			return in.x, in.y, in.hasPointer
		},
		Click: func() (int, int, bool) {
			if len(in.clicks) == 0 {
				return 0, 0, false
			}
			c := in.clicks[0]
			in.clicks = in.clicks[1:]
			return c[0], c[1], true
		},
		KeyPressed: func(key ebiten.Key) bool {
			pressed := in.keys[key]
			delete(in.keys, key)
			return pressed
		},
	}
}

// testApp 按应用的方式注册全部路由
type testApp struct {
	router   *game.Router
	manager  *game.SceneManager
	settings *game.SettingsManager
	input    *scriptedInput
	hero     *HeroScene
}

func newTestApp(rng random.Source) *testApp {
	a := &testApp{
		manager:  game.NewSceneManager(),
		settings: game.NewSettingsManager(nil),
		input:    newScriptedInput(),
	}
	a.router = game.NewRouter(a.manager)
	a.router.Handle(game.PathHero, func() game.Scene {
		a.hero = NewHeroScene(HeroSceneOptions{
			Navigator: a.router,
			Settings:  a.settings,
			Config:    effects.DefaultConfig(),
			Random:    rng,
			Inputs:    a.input.inputs(),
		})
		return a.hero
	})
	a.router.Handle(game.PathDashboard, func() game.Scene {
		return NewDashboardScene(a.router, a.settings, nil, a.input.inputs())
	})
	for _, p := range []string{game.PathGeneral, game.PathSpecial} {
		a.router.Handle(p, func() game.Scene {
			return NewDestinationScene(p, a.router, nil, a.input.inputs())
		})
	}
	return a
}

func (a *testApp) current() game.Scene {
	return a.manager.GetCurrentScene()
}
