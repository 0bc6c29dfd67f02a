package game

import (
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// AudioManager 音频管理器
// 职责：
//   - 按音效ID播放合成音效（无需音频资源文件）
//   - 应用启动器设置中的开关与音量
//
// 实现 systems.SoundPlayer。
type AudioManager struct {
	context      *audio.Context
	settings     config.AudioConfig
	soundPlayers map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
	log          *zap.SugaredLogger
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: Ebitengine 音频上下文（整个进程只能创建一个）
//   - settings: 音频设置
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, settings config.AudioConfig) *AudioManager {
	return &AudioManager{
		context:      ctx,
		settings:     settings,
		soundPlayers: make(map[string]*audio.Player),
		log:          logger.Named("AudioManager"),
	}
}

// PlaySound 播放音效
//
// 参数：
//   - soundID: 音效ID（如 config.SoundPaddleHit）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.settings.Enabled {
		return false // 音效已禁用
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.settings.Volume)

	// 重置并播放
	if err := player.Rewind(); err != nil {
		am.log.Warnf("failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// PreloadSounds 预先合成全部音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds() {
	for soundID := range config.SoundTones {
		am.getSoundPlayer(soundID)
	}
	am.log.Debugf("preloaded %d sounds", len(am.soundPlayers))
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	spec, exists := config.SoundTones[soundID]
	if !exists {
		am.log.Warnf("sound not found: %s", soundID)
		return nil
	}

	player := am.context.NewPlayerFromBytes(GenerateTone(AudioSampleRate, spec))
	am.soundPlayers[soundID] = player
	return player
}
