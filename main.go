package main

import (
	"flag"
	"log"

	"github.com/decker502/pong/pkg/app"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configPath = flag.String("config", "", "启动器设置文件（YAML），为空时使用默认设置")
	verbose    = flag.Bool("verbose", false, "显示详细调试日志")
	logFile    = flag.String("log-file", "", "日志文件路径，为空时输出到 stderr")
	overlay    = flag.Bool("overlay", false, "显示调试覆盖层")
)

func main() {
	flag.Parse()

	settings := config.DefaultAppConfig()
	if *configPath != "" {
		loaded, err := config.LoadAppConfig(*configPath)
		if err != nil {
			log.Fatalf("配置加载失败: %v", err)
		}
		settings = loaded
	}

	// 命令行参数覆盖配置文件
	if *verbose {
		settings.Log.Verbose = true
	}
	if *logFile != "" {
		settings.Log.File = *logFile
	}
	if *overlay {
		settings.Debug.Overlay = true
	}

	if err := logger.Init(logger.Options{Verbose: settings.Log.Verbose, File: settings.Log.File}); err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer logger.Sync()

	gameApp, err := app.NewApp(settings)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.Window.Fullscreen)
	ebiten.SetTPS(config.TicksPerSecond)

	// 游戏循环持续运行，直到窗口关闭或按下 ESC
	if err := ebiten.RunGame(gameApp); err != nil {
		logger.Log.Errorf("game loop exited: %v", err)
		log.Fatal(err)
	}
}
