package entities

import (
	"fmt"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
)

// ArenaEntities 启动时创建的全部实体
type ArenaEntities struct {
	Player ecs.EntityID
	Bot    ecs.EntityID
	Ball   ecs.EntityID
	Walls  map[components.WallLocation]ecs.EntityID
}

// SpawnArena 创建玩家、对手、球和四面墙
//
// 启动后恰好存在一个玩家、一个对手、一个球，之后不再创建或销毁实体。
func SpawnArena(em *ecs.EntityManager, arena config.ArenaBounds) (*ArenaEntities, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}

	result := &ArenaEntities{
		Walls: make(map[components.WallLocation]ecs.EntityID, len(AllWallLocations)),
	}

	var err error
	if result.Player, err = NewPlayerEntity(em, arena); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	if result.Bot, err = NewBotEntity(em, arena); err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	if result.Ball, err = NewBallEntity(em); err != nil {
		return nil, fmt.Errorf("failed to create ball: %w", err)
	}

	for _, location := range AllWallLocations {
		wallID, err := NewWallEntity(em, location, arena)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s wall: %w", location, err)
		}
		result.Walls[location] = wallID
	}

	return result, nil
}

// FindByRole 返回拥有指定角色的全部实体（按ID升序）
func FindByRole(em *ecs.EntityManager, role components.Role) []ecs.EntityID {
	result := make([]ecs.EntityID, 0, 1)
	for _, id := range ecs.GetEntitiesWith1[*components.RoleComponent](em) {
		roleComp, _ := ecs.GetComponent[*components.RoleComponent](em, id)
		if roleComp.Role == role {
			result = append(result, id)
		}
	}
	return result
}

// MustSingleRole 返回唯一拥有指定角色的实体
//
// 球和玩家都是单例，数量不为 1 说明有代码错误地创建或删除了实体。
// 这里直接 panic，而不是悄悄挑一个继续运行。
func MustSingleRole(em *ecs.EntityManager, role components.Role) ecs.EntityID {
	matches := FindByRole(em, role)
	if len(matches) != 1 {
		panic(fmt.Sprintf("expected exactly one %s entity, found %d", role, len(matches)))
	}
	return matches[0]
}
