package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AppConfig 启动器设置
//
// 只影响窗口、音频、日志和调试显示，不影响模拟本身。
// 配置文件为可选项，通过 --config 指定，缺省字段使用 DefaultAppConfig 的值。
type AppConfig struct {
	Window WindowConfig `yaml:"window"`
	Audio  AudioConfig  `yaml:"audio"`
	Log    LogConfig    `yaml:"log"`
	Debug  DebugConfig  `yaml:"debug"`
}

// WindowConfig 窗口设置
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`  // 初始窗口宽度（像素）
	Height     int    `yaml:"height"` // 初始窗口高度（像素）
	Fullscreen bool   `yaml:"fullscreen"`
}

// AudioConfig 音频设置
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 ~ 1.0
}

// LogConfig 日志设置
type LogConfig struct {
	Verbose bool   `yaml:"verbose"`
	File    string `yaml:"file"` // 为空时输出到 stderr
}

// DebugConfig 调试设置
type DebugConfig struct {
	// Overlay 在画面左上角显示 TPS/FPS 和碰撞统计
	Overlay bool `yaml:"overlay"`
}

// DefaultAppConfig 返回默认启动器设置
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Title:  "Pong",
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// LoadAppConfig 加载启动器设置
//
// 参数:
//   - path: YAML 文件路径
//
// 返回:
//   - *AppConfig: 以默认值为基础、被文件内容覆盖后的设置
//   - error: 读取、解析或验证失败时返回错误
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read app config: %w", err)
	}

	return ParseAppConfig(data)
}

// ParseAppConfig 从 YAML 数据解析启动器设置
func ParseAppConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}

	return cfg, nil
}

// Validate 验证设置有效性
func (c *AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be within [0, 1], got %.2f", c.Audio.Volume)
	}

	return nil
}
