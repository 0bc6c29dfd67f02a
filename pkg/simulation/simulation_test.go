package simulation

import (
	"math"
	"testing"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/events"
	"github.com/decker502/pong/pkg/systems"
)

// recordingObserver 记录每个 tick 收到的事件数量和当时的球位置
type recordingObserver struct {
	sim   *Simulation
	calls []int
	ballX []float64
}

func (o *recordingObserver) OnCollisions(collisions []events.CollisionEvent) {
	o.calls = append(o.calls, len(collisions))
	ball, _ := ecs.GetComponent[*components.TransformComponent](o.sim.EntityManager(), o.sim.Entities().Ball)
	o.ballX = append(o.ballX, ball.X)
}

func newTestSimulation(t *testing.T, input systems.InputSource) *Simulation {
	t.Helper()
	sim, err := NewSimulation(input)
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}
	return sim
}

func TestNewSimulationNilInput(t *testing.T) {
	if _, err := NewSimulation(nil); err == nil {
		t.Error("expected error for nil input")
	}
}

// TestFirstTick 第一个 tick 之后的球和玩家位置
func TestFirstTick(t *testing.T) {
	sim := newTestSimulation(t, systems.KeyState{Up: true})
	sim.Tick()

	em := sim.EntityManager()
	ball, _ := ecs.GetComponent[*components.TransformComponent](em, sim.Entities().Ball)
	if math.Abs(ball.X-4.714045) > 1e-5 || math.Abs(ball.Y+54.714045) > 1e-5 {
		t.Errorf("ball = (%v, %v), want (4.714, -54.714)", ball.X, ball.Y)
	}

	player, _ := ecs.GetComponent[*components.TransformComponent](em, sim.Entities().Player)
	if math.Abs(player.Y-500.0/60) > 1e-9 {
		t.Errorf("player Y = %v, want %v", player.Y, 500.0/60)
	}

	if sim.TickCount() != 1 {
		t.Errorf("TickCount() = %d, want 1", sim.TickCount())
	}
}

// TestAdvanceDefersPartialStep 不足一个步长时不推进
func TestAdvanceDefersPartialStep(t *testing.T) {
	sim := newTestSimulation(t, systems.KeyState{})

	if got := sim.Advance(0.01); got != 0 {
		t.Errorf("Advance(0.01) = %d, want 0", got)
	}
	ball, _ := ecs.GetComponent[*components.TransformComponent](sim.EntityManager(), sim.Entities().Ball)
	if ball.X != 0 || ball.Y != -50 {
		t.Errorf("ball moved to (%v, %v) before a full step", ball.X, ball.Y)
	}

	if got := sim.Advance(1.0 / 150); got != 1 {
		t.Errorf("Advance(1/150) = %d, want 1", got)
	}
}

// TestObserversRunAfterSystems 观察者在所有系统之后调用，每个 tick 一次
func TestObserversRunAfterSystems(t *testing.T) {
	sim := newTestSimulation(t, systems.KeyState{})
	observer := &recordingObserver{sim: sim}
	sim.AddObserver(observer)

	sim.Advance(3 * config.TimeStep)

	if len(observer.calls) != 3 {
		t.Fatalf("observer called %d times, want 3", len(observer.calls))
	}
	// 观察者看到的是本 tick 移动之后的位置
	if observer.ballX[0] <= 0 {
		t.Errorf("observer saw ball X = %v before velocity update", observer.ballX[0])
	}
}

// TestBallBouncesInsideArena 长时间运行后球仍在竞技场内，速度大小不变
func TestBallBouncesInsideArena(t *testing.T) {
	sim := newTestSimulation(t, systems.KeyState{})
	stats := systems.NewCollisionStatsSystem(sim.EntityManager())
	sim.AddObserver(stats)

	arena := sim.Arena()
	em := sim.EntityManager()
	for i := 0; i < 60*60; i++ {
		sim.Tick()

		ball, _ := ecs.GetComponent[*components.TransformComponent](em, sim.Entities().Ball)
		if ball.X < arena.Left || ball.X > arena.Right || ball.Y < arena.Bottom || ball.Y > arena.Top {
			t.Fatalf("tick %d: ball escaped to (%v, %v)", i, ball.X, ball.Y)
		}
		velocity, _ := ecs.GetComponent[*components.VelocityComponent](em, sim.Entities().Ball)
		if speed := math.Hypot(velocity.X, velocity.Y); math.Abs(speed-config.BallSpeed) > 1e-6 {
			t.Fatalf("tick %d: speed = %v", i, speed)
		}
	}

	if stats.Total() == 0 {
		t.Error("expected at least one collision in 60 seconds")
	}
	if len(sim.LastCollisions()) != stats.LastTickHits() {
		t.Errorf("LastCollisions() = %d, stats last tick = %d", len(sim.LastCollisions()), stats.LastTickHits())
	}
}

// TestTickCollidesWithMovedPaddle 碰撞检测使用挡板本 tick 移动之后的位置
func TestTickCollidesWithMovedPaddle(t *testing.T) {
	sim := newTestSimulation(t, systems.KeyState{Up: true})
	em := sim.EntityManager()
	spawned := sim.Entities()

	ball, _ := ecs.GetComponent[*components.TransformComponent](em, spawned.Ball)
	velocity, _ := ecs.GetComponent[*components.VelocityComponent](em, spawned.Ball)

	// 挡板 x ∈ [-440, -430]，上边缘 y = 22.5，本 tick 上移 500/60 到 30.83
	// 球底边停在 y = 23：只和移动后的挡板重叠，离左墙也足够远
	ball.X, ball.Y = -420, 38
	velocity.X, velocity.Y = -60, 0

	sim.Tick()

	collisions := sim.LastCollisions()
	if len(collisions) != 1 {
		t.Fatalf("got %d collisions, want 1: %+v", len(collisions), collisions)
	}
	if collisions[0].Collider != spawned.Player {
		t.Errorf("collider = %d, want player %d", collisions[0].Collider, spawned.Player)
	}
	// 球在挡板右侧，朝左运动，X 分量被翻转
	if velocity.X != 60 || velocity.Y != 0 {
		t.Errorf("velocity = (%v, %v), want (60, 0)", velocity.X, velocity.Y)
	}
}
