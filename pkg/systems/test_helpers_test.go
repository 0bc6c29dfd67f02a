package systems

import (
	"testing"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/entities"
)

// newTestArena 创建默认竞技场中的全部实体
func newTestArena(t *testing.T) (*ecs.EntityManager, *entities.ArenaEntities) {
	t.Helper()
	em := ecs.NewEntityManager()
	spawned, err := entities.SpawnArena(em, config.DefaultArena())
	if err != nil {
		t.Fatalf("SpawnArena() error = %v", err)
	}
	return em, spawned
}

// placeBall 把球放到指定位置并设置速度
func placeBall(t *testing.T, em *ecs.EntityManager, ballID ecs.EntityID, x, y, vx, vy float64) (*components.TransformComponent, *components.VelocityComponent) {
	t.Helper()
	transform, ok := ecs.GetComponent[*components.TransformComponent](em, ballID)
	if !ok {
		t.Fatal("ball has no TransformComponent")
	}
	velocity, ok := ecs.GetComponent[*components.VelocityComponent](em, ballID)
	if !ok {
		t.Fatal("ball has no VelocityComponent")
	}
	transform.X, transform.Y = x, y
	velocity.X, velocity.Y = vx, vy
	return transform, velocity
}
