package systems

import (
	"math"
	"testing"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
)

func TestVelocitySystem(t *testing.T) {
	em, spawned := newTestArena(t)
	system := NewVelocitySystem(em)

	system.Update(config.TimeStep)

	ball, _ := ecs.GetComponent[*components.TransformComponent](em, spawned.Ball)
	wantX := 282.842712474619 / 60
	wantY := -50 - 282.842712474619/60
	if math.Abs(ball.X-wantX) > 1e-9 || math.Abs(ball.Y-wantY) > 1e-9 {
		t.Errorf("ball = (%v, %v), want (%v, %v)", ball.X, ball.Y, wantX, wantY)
	}

	// 没有速度的实体不动
	player, _ := ecs.GetComponent[*components.TransformComponent](em, spawned.Player)
	if player.X != -435 || player.Y != 0 {
		t.Errorf("player moved to (%v, %v)", player.X, player.Y)
	}
}

// TestVelocitySystemLinear 两次半步等于一次整步
func TestVelocitySystemLinear(t *testing.T) {
	emA, spawnedA := newTestArena(t)
	emB, spawnedB := newTestArena(t)

	NewVelocitySystem(emA).Update(0.1)
	systemB := NewVelocitySystem(emB)
	systemB.Update(0.05)
	systemB.Update(0.05)

	a, _ := ecs.GetComponent[*components.TransformComponent](emA, spawnedA.Ball)
	b, _ := ecs.GetComponent[*components.TransformComponent](emB, spawnedB.Ball)
	if math.Abs(a.X-b.X) > 1e-9 || math.Abs(a.Y-b.Y) > 1e-9 {
		t.Errorf("one step (%v, %v) != two half steps (%v, %v)", a.X, a.Y, b.X, b.Y)
	}
}

func TestVelocitySystemZeroDelta(t *testing.T) {
	em, spawned := newTestArena(t)
	NewVelocitySystem(em).Update(0)

	ball, _ := ecs.GetComponent[*components.TransformComponent](em, spawned.Ball)
	if ball.X != 0 || ball.Y != -50 {
		t.Errorf("ball moved with zero delta: (%v, %v)", ball.X, ball.Y)
	}
}
