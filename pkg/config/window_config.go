package config

// 窗口配置
// 游戏逻辑分辨率固定，Ebitengine 负责缩放到实际窗口
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 1280
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 720
	// WindowTitle 窗口标题
	WindowTitle = "AquaBot - Digital First Mate"
)
