package entities

import (
	"fmt"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
)

// AllWallLocations 按创建顺序列出四面墙
var AllWallLocations = []components.WallLocation{
	components.WallLeft,
	components.WallRight,
	components.WallBottom,
	components.WallTop,
}

// WallPosition 返回墙体中心坐标
func WallPosition(location components.WallLocation, arena config.ArenaBounds) (float64, float64) {
	switch location {
	case components.WallLeft:
		return arena.Left, 0
	case components.WallRight:
		return arena.Right, 0
	case components.WallBottom:
		return 0, arena.Bottom
	case components.WallTop:
		return 0, arena.Top
	default:
		panic(fmt.Sprintf("unknown wall location %d", location))
	}
}

// WallSize 返回墙体完整尺寸
//
// 左右墙比竞技场高出一个墙厚，上下墙比竞技场宽出一个墙厚，
// 四面墙在角落处互相重叠，保证竞技场完全封闭。
//
// 竞技场宽高必须为正，否则说明常量配置错误，直接 panic。
func WallSize(location components.WallLocation, arena config.ArenaBounds) (float64, float64) {
	height := arena.Height()
	width := arena.Width()
	if !(height > 0) {
		panic(fmt.Sprintf("arena height must be positive, got %v", height))
	}
	if !(width > 0) {
		panic(fmt.Sprintf("arena width must be positive, got %v", width))
	}

	switch location {
	case components.WallLeft, components.WallRight:
		return arena.WallThickness, height + arena.WallThickness
	case components.WallBottom, components.WallTop:
		return width + arena.WallThickness, arena.WallThickness
	default:
		panic(fmt.Sprintf("unknown wall location %d", location))
	}
}

// NewWallEntity 创建静态墙体实体
//
// 参数:
//   - em: 实体管理器
//   - location: 墙体位置
//   - arena: 竞技场边界
//
// 返回:
//   - ecs.EntityID: 创建的墙体实体ID，失败返回 0
//   - error: 实体管理器为空时返回错误
func NewWallEntity(em *ecs.EntityManager, location components.WallLocation, arena config.ArenaBounds) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	// 先计算几何，非法竞技场在创建实体之前就 panic
	x, y := WallPosition(location, arena)
	w, h := WallSize(location, arena)

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.TransformComponent{
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
	})
	em.AddComponent(entityID, &components.SpriteComponent{
		Color: config.WallColor,
		Shape: components.ShapeRect,
	})
	em.AddComponent(entityID, &components.WallComponent{Location: location})
	em.AddComponent(entityID, &components.ColliderComponent{})

	return entityID, nil
}
