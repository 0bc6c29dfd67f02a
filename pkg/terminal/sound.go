package terminal

import (
	"fmt"
	"math"
	"time"

	"github.com/decker502/pong/pkg/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// sampleRate 扬声器采样率
const sampleRate = beep.SampleRate(44100)

// BeepSounder 用 beep 合成并播放音效
// 实现 systems.SoundPlayer
type BeepSounder struct {
	volume float64
}

// NewBeepSounder 初始化扬声器
//
// 参数:
//   - volume: 音量 0.0 ~ 1.0，会与每个音效自身的振幅相乘
//
// 返回:
//   - error: 音频设备不可用时返回错误（调用方可以选择静音继续）
func NewBeepSounder(volume float64) (*BeepSounder, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &BeepSounder{volume: volume}, nil
}

// PlaySound 实现 systems.SoundPlayer
func (s *BeepSounder) PlaySound(soundID string) bool {
	spec, ok := config.SoundTones[soundID]
	if !ok {
		return false
	}

	sine, err := generators.SineTone(sampleRate, spec.Frequency)
	if err != nil {
		return false
	}

	speaker.Play(withVolume(beep.Take(sampleRate.N(spec.Duration), sine), spec.Amplitude*s.volume))
	return true
}

// withVolume 按线性音量缩放
// math.Log2(0) 为 -Inf，音量为 0 时直接静音
func withVolume(streamer beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: streamer, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: streamer, Base: 2, Volume: math.Log2(volume)}
}

// Close 停止所有正在播放的音效
func (s *BeepSounder) Close() {
	speaker.Clear()
}
