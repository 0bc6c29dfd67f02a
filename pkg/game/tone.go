package game

import (
	"encoding/binary"
	"math"

	"github.com/decker502/pong/pkg/config"
)

// GenerateTone 生成正弦波音效的 PCM 数据
//
// 格式为 16 位有符号小端、双声道（Ebitengine audio.Player 的默认格式）。
// 振幅线性衰减到 0，避免结尾的爆音。
//
// 参数:
//   - sampleRate: 采样率（如 48000）
//   - spec: 音效参数
//
// 返回:
//   - []byte: PCM 数据，长度 = 采样数 * 4
func GenerateTone(sampleRate int, spec config.ToneSpec) []byte {
	samples := int(float64(sampleRate) * spec.Duration.Seconds())
	if samples <= 0 {
		return nil
	}

	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := 1 - float64(i)/float64(samples)
		value := math.Sin(2*math.Pi*spec.Frequency*t) * spec.Amplitude * envelope
		sample := int16(value * math.MaxInt16)

		// 左右声道写入同样的采样
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}
