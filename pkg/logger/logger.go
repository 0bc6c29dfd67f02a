// Package logger 提供全局日志
//
// 默认是不输出任何内容的 no-op 日志；调用 Init 后才真正输出。
// 各模块通过 Named 获取带模块名的子日志，例如 logger.Named("CollisionSystem")。
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 是全局可用的 SugaredLogger
var Log = zap.NewNop().Sugar()

// Options 日志初始化选项
type Options struct {
	// Verbose 为 true 时输出 Debug 级别，否则只输出 Info 及以上
	Verbose bool
	// File 日志文件路径，为空时输出到 stderr
	File string
}

// Init 根据选项初始化全局日志
// 指定文件时使用 lumberjack 滚动：10MB 每文件，保留3个备份，7天
func Init(opts Options) error {
	var ws zapcore.WriteSyncer
	if opts.File != "" {
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		})
	} else {
		ws = zapcore.Lock(os.Stderr)
	}

	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
		EncodeName:    zapcore.FullNameEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, level)

	Log = zap.New(core, zap.AddCaller()).Sugar()
	return nil
}

// Named 返回带模块名的子日志
func Named(name string) *zap.SugaredLogger {
	return Log.Named(name)
}

// Sync 刷新缓冲
func Sync() {
	_ = Log.Sync()
}
