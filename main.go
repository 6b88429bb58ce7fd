// Command aquabot 是 AquaBot 落地页的桌面版本
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose          启用详细日志和调试信息
//	--config <path>    特效配置文件（默认使用内置 data/effects.yaml）
//	--watch            修改 --config 指定的文件后热加载
//	--seed <n>         固定随机种子（0 表示时间种子）
//	--route <path>     起始视图：/、/dashboard、/general、/special
//
// Controls:
//
//	Enter / 点击按钮   进入 dashboard
//	E                  开关落地页特效
//	Esc                返回上一级
//	F11                切换全屏
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/aquabot/firstmate/pkg/app"
	"github.com/aquabot/firstmate/pkg/config"
	"github.com/aquabot/firstmate/pkg/embedded"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag  = flag.String("config", "", "Effects config file (default: built-in data/effects.yaml)")
	watchFlag   = flag.Bool("watch", false, "Hot reload the --config file when it changes")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (0 = time based)")
	routeFlag   = flag.String("route", "/", "Initial view path")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Watch:      *watchFlag,
		Seed:       *seedFlag,
		Route:      *routeFlag,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Printf("game loop ended: %v", err)
	}
}
