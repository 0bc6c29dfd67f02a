package systems

import (
	"sort"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/events"
)

// CollisionStatsSystem 统计碰撞次数
// 作为碰撞事件观察者，用于调试覆盖层和无界面运行的汇总输出
type CollisionStatsSystem struct {
	entityManager *ecs.EntityManager

	total        int
	lastTickHits int
	byCollider   map[string]int
}

// NewCollisionStatsSystem 创建碰撞统计系统
func NewCollisionStatsSystem(em *ecs.EntityManager) *CollisionStatsSystem {
	return &CollisionStatsSystem{
		entityManager: em,
		byCollider:    make(map[string]int),
	}
}

// OnCollisions 实现 events.Observer
func (s *CollisionStatsSystem) OnCollisions(collisions []events.CollisionEvent) {
	s.lastTickHits = len(collisions)
	for _, event := range collisions {
		s.total++
		s.byCollider[ColliderName(s.entityManager, event.Collider)]++
	}
}

// Total 返回累计命中次数
func (s *CollisionStatsSystem) Total() int {
	return s.total
}

// LastTickHits 返回最近一个 tick 的命中次数
func (s *CollisionStatsSystem) LastTickHits() int {
	return s.lastTickHits
}

// Count 返回指定碰撞体名称的累计命中次数（名称见 ColliderName）
func (s *CollisionStatsSystem) Count(name string) int {
	return s.byCollider[name]
}

// Names 返回出现过的碰撞体名称（排序后）
func (s *CollisionStatsSystem) Names() []string {
	names := make([]string, 0, len(s.byCollider))
	for name := range s.byCollider {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ColliderName 返回碰撞体的可读名称
// 挡板返回角色名（"player"/"bot"），墙体返回 "wall:<位置>"
func ColliderName(em *ecs.EntityManager, id ecs.EntityID) string {
	if role, ok := ecs.GetComponent[*components.RoleComponent](em, id); ok {
		return role.Role.String()
	}
	if wall, ok := ecs.GetComponent[*components.WallComponent](em, id); ok {
		return "wall:" + wall.Location.String()
	}
	return "unknown"
}
