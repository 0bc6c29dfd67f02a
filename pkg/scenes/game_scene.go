package scenes

import (
	"fmt"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/simulation"
	"github.com/decker502/pong/pkg/systems"
	"github.com/decker502/pong/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene represents the main gameplay screen.
// It owns the simulation and draws its entities every frame.
type GameScene struct {
	sim   *simulation.Simulation
	stats *systems.CollisionStatsSystem

	camera      utils.Camera
	showOverlay bool
}

// NewGameScene creates the gameplay scene.
//
// 参数:
//   - input: 按键状态来源（键盘适配器）
//   - sound: 音效播放器，可为 nil（静音）
//   - showOverlay: 是否显示调试覆盖层
func NewGameScene(input systems.InputSource, sound systems.SoundPlayer, showOverlay bool) (*GameScene, error) {
	sim, err := simulation.NewSimulation(input)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	em := sim.EntityManager()
	stats := systems.NewCollisionStatsSystem(em)
	sim.AddObserver(stats)
	if sound != nil {
		sim.AddObserver(systems.NewBounceSoundSystem(em, sound))
	}

	return &GameScene{
		sim:         sim,
		stats:       stats,
		camera:      utils.NewCamera(config.GameWindowWidth, config.GameWindowHeight),
		showOverlay: showOverlay,
	}, nil
}

// Update advances the simulation by deltaTime seconds of real time.
func (s *GameScene) Update(deltaTime float64) {
	s.sim.Advance(deltaTime)
}

// Draw renders the arena.
func (s *GameScene) Draw(screen *ebiten.Image) {
	// Layer 1: 背景色
	screen.Fill(config.BackgroundColor)

	// Layer 2: 墙体、挡板、球（按 Z 排序）
	s.drawEntities(screen)

	// Layer 3: 调试信息
	if s.showOverlay {
		s.drawOverlay(screen)
	}
}

// Simulation 返回场景持有的模拟
func (s *GameScene) Simulation() *simulation.Simulation {
	return s.sim
}
