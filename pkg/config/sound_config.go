package config

import "time"

// 音效ID
const (
	// SoundPaddleHit 球撞上挡板
	SoundPaddleHit = "SOUND_PADDLE"
	// SoundWallHit 球撞上墙体
	SoundWallHit = "SOUND_WALL"
)

// ToneSpec 合成音效参数
// 游戏不带音频资源文件，所有音效都是运行时合成的正弦波
type ToneSpec struct {
	Frequency float64       // 频率（Hz）
	Duration  time.Duration // 时长
	Amplitude float64       // 振幅 0.0 ~ 1.0
}

// SoundTones 音效ID到合成参数的映射
var SoundTones = map[string]ToneSpec{
	SoundPaddleHit: {Frequency: 660, Duration: 70 * time.Millisecond, Amplitude: 0.4},
	SoundWallHit:   {Frequency: 440, Duration: 50 * time.Millisecond, Amplitude: 0.3},
}
