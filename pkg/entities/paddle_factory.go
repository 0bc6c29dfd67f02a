package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
)

// NewPlayerEntity 创建玩家挡板（左侧，距左墙 WallToPaddleGap）
func NewPlayerEntity(em *ecs.EntityManager, arena config.ArenaBounds) (ecs.EntityID, error) {
	return newPaddleEntity(em, arena.Left+config.WallToPaddleGap, components.RolePlayer, config.PlayerColor)
}

// NewBotEntity 创建对手挡板（右侧，距右墙 WallToPaddleGap）
//
// 对手挡板没有任何移动系统，始终停在竞技场中线上。
func NewBotEntity(em *ecs.EntityManager, arena config.ArenaBounds) (ecs.EntityID, error) {
	return newPaddleEntity(em, arena.Right-config.WallToPaddleGap, components.RoleBot, config.BotColor)
}

// newPaddleEntity 创建挡板实体：变换 + 精灵 + 角色 + 碰撞体
func newPaddleEntity(em *ecs.EntityManager, x float64, role components.Role, clr color.RGBA) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.TransformComponent{
		X:      x,
		Y:      0,
		Width:  config.PaddleWidth,
		Height: config.PaddleHeight,
	})
	em.AddComponent(entityID, &components.SpriteComponent{
		Color: clr,
		Shape: components.ShapeRect,
	})
	em.AddComponent(entityID, &components.RoleComponent{Role: role})
	em.AddComponent(entityID, &components.ColliderComponent{})

	return entityID, nil
}
