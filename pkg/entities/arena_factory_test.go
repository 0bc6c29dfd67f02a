package entities

import (
	"math"
	"strings"
	"testing"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
)

// TestSpawnArena 测试启动时的实体组成
func TestSpawnArena(t *testing.T) {
	em := ecs.NewEntityManager()
	spawned, err := SpawnArena(em, config.DefaultArena())
	if err != nil {
		t.Fatalf("SpawnArena() error = %v", err)
	}

	if got := em.EntityCount(); got != 7 {
		t.Errorf("EntityCount() = %d, want 7", got)
	}
	if got := len(spawned.Walls); got != 4 {
		t.Errorf("len(Walls) = %d, want 4", got)
	}

	// 碰撞体：2 个挡板 + 4 面墙，球不是碰撞体
	colliders := ecs.GetEntitiesWith1[*components.ColliderComponent](em)
	if len(colliders) != 6 {
		t.Errorf("collider count = %d, want 6", len(colliders))
	}
	for _, id := range colliders {
		if id == spawned.Ball {
			t.Error("ball should not be a collider")
		}
	}

	// 只有球有速度
	moving := ecs.GetEntitiesWith1[*components.VelocityComponent](em)
	if len(moving) != 1 || moving[0] != spawned.Ball {
		t.Errorf("entities with velocity = %v, want [%d]", moving, spawned.Ball)
	}

	for _, role := range []components.Role{components.RolePlayer, components.RoleBot, components.RoleBall} {
		if got := len(FindByRole(em, role)); got != 1 {
			t.Errorf("FindByRole(%s) = %d entities, want 1", role, got)
		}
	}
}

// TestInitialPositions 测试挡板和球的初始位置
func TestInitialPositions(t *testing.T) {
	em := ecs.NewEntityManager()
	spawned, err := SpawnArena(em, config.DefaultArena())
	if err != nil {
		t.Fatalf("SpawnArena() error = %v", err)
	}

	tests := []struct {
		name         string
		id           ecs.EntityID
		wantX, wantY float64
		wantW, wantH float64
	}{
		{"玩家在左侧", spawned.Player, -435, 0, 10, 45},
		{"对手在右侧", spawned.Bot, 435, 0, 10, 45},
		{"球", spawned.Ball, 0, -50, 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transform, ok := ecs.GetComponent[*components.TransformComponent](em, tt.id)
			if !ok {
				t.Fatal("missing TransformComponent")
			}
			if transform.X != tt.wantX || transform.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", transform.X, transform.Y, tt.wantX, tt.wantY)
			}
			if transform.Width != tt.wantW || transform.Height != tt.wantH {
				t.Errorf("size = (%v, %v), want (%v, %v)", transform.Width, transform.Height, tt.wantW, tt.wantH)
			}
		})
	}

	ball, _ := ecs.GetComponent[*components.TransformComponent](em, spawned.Ball)
	if ball.Z != config.BallLayer {
		t.Errorf("ball Z = %v, want %v", ball.Z, config.BallLayer)
	}
}

func TestInitialBallVelocity(t *testing.T) {
	vx, vy := InitialBallVelocity()

	if math.Abs(vx-282.842712) > 1e-5 || math.Abs(vy+282.842712) > 1e-5 {
		t.Errorf("InitialBallVelocity() = (%v, %v), want (282.84, -282.84)", vx, vy)
	}
	if speed := math.Hypot(vx, vy); math.Abs(speed-config.BallSpeed) > 1e-9 {
		t.Errorf("speed = %v, want %v", speed, config.BallSpeed)
	}
}

// TestMustSingleRole 测试单例查询
func TestMustSingleRole(t *testing.T) {
	em := ecs.NewEntityManager()
	spawned, err := SpawnArena(em, config.DefaultArena())
	if err != nil {
		t.Fatalf("SpawnArena() error = %v", err)
	}

	if got := MustSingleRole(em, components.RoleBall); got != spawned.Ball {
		t.Errorf("MustSingleRole(ball) = %d, want %d", got, spawned.Ball)
	}

	t.Run("两个球时panic", func(t *testing.T) {
		if _, err := NewBallEntity(em); err != nil {
			t.Fatalf("NewBallEntity() error = %v", err)
		}
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic with two balls")
			}
			if msg, _ := r.(string); !strings.Contains(msg, "found 2") {
				t.Errorf("panic message = %v", r)
			}
		}()
		MustSingleRole(em, components.RoleBall)
	})

	t.Run("没有玩家时panic", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic without player")
			}
		}()
		MustSingleRole(ecs.NewEntityManager(), components.RolePlayer)
	})
}
