// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载特效配置、打开偏好存储、
// 注册路由并进入起始视图。桌面端通过 main.go 调用 NewApp()。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/aquabot/firstmate/pkg/components"
	"github.com/aquabot/firstmate/pkg/config"
	"github.com/aquabot/firstmate/pkg/effects"
	"github.com/aquabot/firstmate/pkg/game"
	"github.com/aquabot/firstmate/pkg/random"
	"github.com/aquabot/firstmate/pkg/scenes"
)

// AppName gdata 存储使用的应用名
const AppName = "aquabot"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和调试信息
	Verbose bool
	// ConfigPath 特效配置文件路径，为空时使用内置配置
	ConfigPath string
	// Watch 监视 ConfigPath 并在修改后热加载（需要 ConfigPath）
	Watch bool
	// Seed 随机种子，0 表示使用时间种子
	Seed uint64
	// Route 起始视图路径，为空或未知时进入落地页
	Route string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	router       *game.Router
	settings     *game.SettingsManager
	fonts        *game.FontCache
	rng          random.Source

	effectsConfig effects.Config
	configPath    string
	watcher       *config.Watcher
	verbose       bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 使用内置配置时，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	effectsConfig, err := loadEffectsConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	// 存储不可用时降级为仅内存设置
	storage, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		storage = nil
	}

	fonts, err := game.NewFontCache()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	a := &App{
		sceneManager:  game.NewSceneManager(),
		settings:      game.NewSettingsManager(storage),
		fonts:         fonts,
		effectsConfig: effectsConfig,
		configPath:    cfg.ConfigPath,
		verbose:       cfg.Verbose,
	}
	if cfg.Seed != 0 {
		a.rng = random.NewSeeded(cfg.Seed)
		log.Printf("[App] Using random seed %d", cfg.Seed)
	}
	a.router = a.newRouter(scenes.Inputs{})

	switch {
	case cfg.Watch && cfg.ConfigPath == "":
		log.Printf("[App] Warning: --watch needs --config, hot reload disabled")
	case cfg.Watch:
		watcher, err := config.NewWatcher(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("配置监视启动失败: %w", err)
		}
		a.watcher = watcher
		log.Printf("[App] Watching %s for changes", cfg.ConfigPath)
	}

	route := cfg.Route
	if route == "" {
		route = game.PathHero
	}
	if !a.router.Navigate(route) {
		a.router.Navigate(game.PathHero)
	}

	return a, nil
}

func loadEffectsConfig(path string) (effects.Config, error) {
	if path == "" {
		cfg, err := config.LoadEmbeddedEffectsConfig()
		if err != nil {
			return effects.Config{}, fmt.Errorf("内置特效配置加载失败: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.LoadEffectsConfig(path)
	if err != nil {
		return effects.Config{}, fmt.Errorf("特效配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载特效配置: %s", path)
	return cfg, nil
}

// newRouter 注册全部视图
func (a *App) newRouter(inputs scenes.Inputs) *game.Router {
	r := game.NewRouter(a.sceneManager)
	r.Handle(game.PathHero, func() game.Scene {
		return scenes.NewHeroScene(scenes.HeroSceneOptions{
			Navigator: r,
			Settings:  a.settings,
			Fonts:     a.fonts,
			Config:    a.effectsConfig,
			Random:    a.rng,
			Inputs:    inputs,
		})
	})
	r.Handle(game.PathDashboard, func() game.Scene {
		return scenes.NewDashboardScene(r, a.settings, a.fonts, inputs)
	})
	for _, path := range []string{game.PathGeneral, game.PathSpecial} {
		r.Handle(path, func() game.Scene {
			if s := scenes.NewDestinationScene(path, r, a.fonts, inputs); s != nil {
				return s
			}
			return nil
		})
	}
	return r
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.drainReloads()

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// drainReloads 处理配置监视器上报的变化，不阻塞
func (a *App) drainReloads() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-a.watcher.Events:
			if !ok {
				return
			}
			a.reloadConfig(path)
		case err, ok := <-a.watcher.Errors:
			if ok {
				log.Printf("[App] Warning: config watcher: %v", err)
			}
			return
		default:
			return
		}
	}
}

// reloadConfig 重新读取配置；无效的配置被忽略，保留当前参数
func (a *App) reloadConfig(path string) {
	cfg, err := config.LoadEffectsConfig(path)
	if err != nil {
		log.Printf("[App] Warning: ignoring config change: %v", err)
		return
	}
	if cfg == a.effectsConfig {
		return
	}
	a.effectsConfig = cfg
	log.Printf("[App] Effects config reloaded from %s", path)

	if hero, ok := a.sceneManager.GetCurrentScene().(*scenes.HeroScene); ok {
		hero.ApplyConfig(cfg)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)

	if a.verbose {
		a.drawDebug(screen)
	}
}

// drawDebug 左下角显示帧率和特效节点数量
func (a *App) drawDebug(screen *ebiten.Image) {
	msg := fmt.Sprintf("FPS %.0f  route %s", ebiten.ActualFPS(), a.router.Current())
	if hero, ok := a.sceneManager.GetCurrentScene().(*scenes.HeroScene); ok {
		stage := hero.Stage()
		msg += fmt.Sprintf("  particles %d  glitter %d  sparkles %d",
			stage.Count(components.NodeParticle),
			stage.Count(components.NodeGlitter),
			stage.Count(components.NodeSparkle))
	}
	ebitenutil.DebugPrintAt(screen, msg, 8, config.GameWindowHeight-20)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 卸载当前视图并停止配置监视，可重复调用
func (a *App) Close() error {
	a.sceneManager.Close()
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// GetRouter 返回路由器
func (a *App) GetRouter() *game.Router {
	return a.router
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
