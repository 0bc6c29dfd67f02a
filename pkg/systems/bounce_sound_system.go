package systems

import (
	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/events"
)

// SoundPlayer 按音效ID播放音效
// 返回是否实际播放（音效被禁用或加载失败时返回 false）
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// BounceSoundSystem 根据碰撞事件播放反弹音效
//
// 每个 tick 最多播放一次：同一 tick 的多次命中只会叠成噪音。
// 有挡板参与的 tick 优先播放挡板音效。
type BounceSoundSystem struct {
	entityManager *ecs.EntityManager
	player        SoundPlayer
}

// NewBounceSoundSystem 创建反弹音效系统
func NewBounceSoundSystem(em *ecs.EntityManager, player SoundPlayer) *BounceSoundSystem {
	return &BounceSoundSystem{
		entityManager: em,
		player:        player,
	}
}

// OnCollisions 实现 events.Observer
func (s *BounceSoundSystem) OnCollisions(collisions []events.CollisionEvent) {
	if len(collisions) == 0 || s.player == nil {
		return
	}

	soundID := config.SoundWallHit
	for _, event := range collisions {
		if isPaddle(s.entityManager, event.Collider) {
			soundID = config.SoundPaddleHit
			break
		}
	}

	s.player.PlaySound(soundID)
}

// isPaddle 判断实体是否是挡板（玩家或对手）
func isPaddle(em *ecs.EntityManager, id ecs.EntityID) bool {
	role, ok := ecs.GetComponent[*components.RoleComponent](em, id)
	if !ok {
		return false
	}
	return role.Role == components.RolePlayer || role.Role == components.RoleBot
}
