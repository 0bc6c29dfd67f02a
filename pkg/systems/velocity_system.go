package systems

import (
	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/ecs"
)

// VelocitySystem 按速度推进实体位置（显式欧拉积分）
//
// 只读速度、只写位置；不做夹紧，也不感知碰撞。
// 必须在同一 tick 的碰撞解析之前运行。
type VelocitySystem struct {
	entityManager *ecs.EntityManager
}

// NewVelocitySystem 创建速度积分系统
func NewVelocitySystem(em *ecs.EntityManager) *VelocitySystem {
	return &VelocitySystem{
		entityManager: em,
	}
}

// Update 对所有同时拥有变换和速度的实体执行 pos += vel * deltaTime
func (s *VelocitySystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.TransformComponent, *components.VelocityComponent](s.entityManager)

	for _, id := range entities {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		velocity, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		transform.X += velocity.X * deltaTime
		transform.Y += velocity.Y * deltaTime
	}
}
