// pong-tui 在终端中运行 Pong
//
// 用法:
//
//	go run ./cmd/pong-tui [--config pong.yaml] [--verbose] [--log-file pong-tui.log] [--mute]
//
// 操作：↑/w/k 上移，↓/s/j 下移，q/Esc/Ctrl+C 退出。
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/logger"
	"github.com/decker502/pong/pkg/systems"
	"github.com/decker502/pong/pkg/terminal"
	"github.com/gdamore/tcell/v2"
)

var (
	configPath = flag.String("config", "", "启动器设置文件（YAML），为空时使用默认设置")
	verbose    = flag.Bool("verbose", false, "显示详细调试日志")
	// 终端被游戏占用，日志默认写文件
	logFile = flag.String("log-file", "pong-tui.log", "日志文件路径")
	mute    = flag.Bool("mute", false, "关闭音效")
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
	if *verbose {
		settings.Log.Verbose = true
	}
	if *logFile != "" {
		settings.Log.File = *logFile
	}
	if *mute {
		settings.Audio.Enabled = false
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("终端创建失败: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// run 返回时终端已还原、音频已关闭、日志已刷新
	if err := run(ctx, settings, screen); err != nil {
		stop()
		log.Fatalf("游戏异常退出: %v", err)
	}
}

// run 初始化日志、音频和终端并运行游戏，返回前完成全部清理
func run(ctx context.Context, settings *config.AppConfig, screen tcell.Screen) error {
	if err := logger.Init(logger.Options{Verbose: settings.Log.Verbose, File: settings.Log.File}); err != nil {
		return fmt.Errorf("日志初始化失败: %w", err)
	}
	defer logger.Sync()

	// 音频设备不可用时静音继续
	var sound systems.SoundPlayer
	if settings.Audio.Enabled {
		sounder, err := terminal.NewBeepSounder(settings.Audio.Volume)
		if err != nil {
			logger.Log.Warnf("audio disabled: %v", err)
		} else {
			defer sounder.Close()
			sound = sounder
		}
	}

	if err := screen.Init(); err != nil {
		return fmt.Errorf("终端初始化失败: %w", err)
	}
	defer screen.Fini()

	game, err := terminal.NewGame(screen, sound)
	if err != nil {
		return fmt.Errorf("游戏初始化失败: %w", err)
	}

	if err := game.Run(ctx); err != nil {
		logger.Log.Errorf("terminal loop exited: %v", err)
		return err
	}
	logger.Log.Infof("terminal game finished after %d ticks", game.Simulation().TickCount())
	return nil
}
