// Package app 提供游戏应用的核心包装器
//
// 该包把窗口前端的初始化逻辑从 main 包提取出来：
// 创建音频、键盘输入和游戏场景，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/game"
	"github.com/decker502/pong/pkg/logger"
	"github.com/decker502/pong/pkg/scenes"
	"github.com/decker502/pong/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene                    game.Scene
	settings                 *config.AppConfig
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	log                      *zap.SugaredLogger
}

// NewApp 创建并初始化游戏应用
//
// 参数:
//   - settings: 启动器设置
//
// 返回:
//   - *App: 应用实例
//   - error: 场景创建失败时返回错误
func NewApp(settings *config.AppConfig) (*App, error) {
	if settings == nil {
		settings = config.DefaultAppConfig()
	}
	log := logger.Named("App")

	// 音效关闭时 sound 为 nil，游戏静音运行
	var sound systems.SoundPlayer
	if settings.Audio.Enabled {
		audioManager := game.NewAudioManager(audio.NewContext(game.AudioSampleRate), settings.Audio)
		audioManager.PreloadSounds()
		sound = audioManager
		log.Infof("AudioManager initialized (volume %.2f)", settings.Audio.Volume)
	}

	scene, err := scenes.NewGameScene(KeyboardInput{}, sound, settings.Debug.Overlay)
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	return &App{
		scene:    scene,
		settings: settings,
		log:      log,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 TPS 次）
func (a *App) Update() error {
	// ESC 关闭窗口
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.log.Infof("Escape pressed, quitting")
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.settings.Window.Width, a.settings.Window.Height)
			a.log.Debugf("delayed SetWindowSize(%d, %d)", a.settings.Window.Width, a.settings.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// Ebitengine 以固定 TPS 调用 Update，每次正好推进一个 tick 的真实时间
	deltaTime := 1.0 / float64(ebiten.TPS())
	a.scene.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右两边填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}
