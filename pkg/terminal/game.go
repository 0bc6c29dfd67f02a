package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/logger"
	"github.com/decker502/pong/pkg/simulation"
	"github.com/decker502/pong/pkg/systems"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Game 终端游戏循环
//
// 事件由独立的 goroutine 从 tcell 读取并通过 channel 转交，
// 模拟、按键状态和绘制都只在 Run 所在的 goroutine 中访问。
type Game struct {
	screen   tcell.Screen
	sim      *simulation.Simulation
	stats    *systems.CollisionStatsSystem
	keys     *HeldKeys
	renderer *Renderer
	now      func() time.Time
	log      *zap.SugaredLogger
}

// NewGame 创建终端游戏
//
// 参数:
//   - screen: 已初始化的 tcell 屏幕
//   - sound: 音效播放器，可为 nil（静音）
func NewGame(screen tcell.Screen, sound systems.SoundPlayer) (*Game, error) {
	if screen == nil {
		return nil, fmt.Errorf("screen cannot be nil")
	}

	keys := NewHeldKeys(DefaultInitialHold, DefaultRepeatHold, nil)
	sim, err := simulation.NewSimulation(keys)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	em := sim.EntityManager()
	stats := systems.NewCollisionStatsSystem(em)
	sim.AddObserver(stats)
	if sound != nil {
		sim.AddObserver(systems.NewBounceSoundSystem(em, sound))
	}

	return &Game{
		screen:   screen,
		sim:      sim,
		stats:    stats,
		keys:     keys,
		renderer: NewRenderer(screen, sim.Arena()),
		now:      time.Now,
		log:      logger.Named("Terminal"),
	}, nil
}

// Simulation 返回游戏持有的模拟
func (g *Game) Simulation() *simulation.Simulation {
	return g.sim
}

// Run 运行游戏循环，直到 ctx 取消或玩家按下退出键
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// 屏幕已 Fini
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / config.TicksPerSecond)
	defer ticker.Stop()

	last := g.now()
	g.draw()
	g.log.Infof("terminal loop started")

	for {
		select {
		case <-ctx.Done():
			g.log.Infof("context done, quitting")
			return nil

		case ev := <-events:
			if quit := g.handleEvent(ev); quit {
				g.log.Infof("quit key pressed, total hits %d", g.stats.Total())
				return nil
			}

		case <-ticker.C:
			current := g.now()
			g.sim.Advance(current.Sub(last).Seconds())
			last = current
			g.draw()
		}
	}
}

// handleEvent 处理一个终端事件，返回是否退出
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := KeyAction(ev)
		if action == ActionQuit {
			return true
		}
		g.keys.Press(action)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return false
}

func (g *Game) draw() {
	g.renderer.Draw(g.sim.EntityManager(), g.statusLine())
}

// statusLine 状态栏：操作提示和碰撞统计
func (g *Game) statusLine() string {
	return fmt.Sprintf(" ↑/w 上  ↓/s 下  q 退出 | ticks %d | hits %d", g.sim.TickCount(), g.stats.Total())
}
