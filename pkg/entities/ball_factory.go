package entities

import (
	"fmt"
	"math"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
)

// InitialBallVelocity 返回球的初始速度：归一化的初始方向 * BallSpeed
func InitialBallVelocity() (float64, float64) {
	dx, dy := config.InitialBallDirectionX, config.InitialBallDirectionY
	length := math.Hypot(dx, dy)
	return dx / length * config.BallSpeed, dy / length * config.BallSpeed
}

// NewBallEntity 创建球实体
//
// 球拥有速度但不是碰撞体：碰撞系统以球为主动方，去检测所有碰撞体。
func NewBallEntity(em *ecs.EntityManager) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	vx, vy := InitialBallVelocity()

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.TransformComponent{
		X:      config.BallStartX,
		Y:      config.BallStartY,
		Z:      config.BallLayer,
		Width:  config.BallSize,
		Height: config.BallSize,
	})
	em.AddComponent(entityID, &components.VelocityComponent{X: vx, Y: vy})
	em.AddComponent(entityID, &components.SpriteComponent{
		Color: config.BallColor,
		Shape: components.ShapeCircle,
	})
	em.AddComponent(entityID, &components.RoleComponent{Role: components.RoleBall})

	return entityID, nil
}
