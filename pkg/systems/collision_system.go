package systems

import (
	"fmt"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/entities"
	"github.com/decker502/pong/pkg/events"
	"github.com/decker502/pong/pkg/logger"
	"github.com/decker502/pong/pkg/utils"
	"go.uber.org/zap"
)

// CollisionSystem 检测球与所有碰撞体的碰撞，并反弹球的速度
//
// 处理规则：
//   - 每个碰撞体独立检测（按实体ID顺序），不做"最近碰撞体"筛选
//   - 每次命中追加一个 CollisionEvent
//   - 只有当球正朝撞击面运动时才翻转对应速度分量，避免重叠期间反复翻转导致粘墙
//   - 同一 tick 同时撞上两个碰撞体时，两次反弹会叠加（例如竞技场角落）
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	queue         *events.Queue
	log           *zap.SugaredLogger
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - queue: 碰撞事件队列，命中时写入
func NewCollisionSystem(em *ecs.EntityManager, queue *events.Queue) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		queue:         queue,
		log:           logger.Named("CollisionSystem"),
	}
}

// Update 执行一次碰撞解析
//
// 参数:
//   - deltaTime: 本系统不使用，保持与其他系统一致的签名
func (s *CollisionSystem) Update(deltaTime float64) {
	ballID := entities.MustSingleRole(s.entityManager, components.RoleBall)
	ballTransform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, ballID)
	if !ok {
		panic(fmt.Sprintf("ball entity %d has no TransformComponent", ballID))
	}
	ballVelocity, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, ballID)
	if !ok {
		panic(fmt.Sprintf("ball entity %d has no VelocityComponent", ballID))
	}

	ballRect := utils.Rect{X: ballTransform.X, Y: ballTransform.Y, W: ballTransform.Width, H: ballTransform.Height}

	colliders := ecs.GetEntitiesWith2[*components.TransformComponent, *components.ColliderComponent](s.entityManager)
	for _, colliderID := range colliders {
		if colliderID == ballID {
			continue
		}
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, colliderID)
		colliderRect := utils.Rect{X: transform.X, Y: transform.Y, W: transform.Width, H: transform.Height}

		face, hit := utils.Collide(ballRect, colliderRect)
		if !hit {
			continue
		}

		s.queue.Emit(events.CollisionEvent{Collider: colliderID, Face: face})

		reflectX, reflectY := ShouldReflect(face, ballVelocity.X, ballVelocity.Y)
		if reflectX {
			ballVelocity.X = -ballVelocity.X
		}
		if reflectY {
			ballVelocity.Y = -ballVelocity.Y
		}

		s.log.Debugf("ball hit entity %d on %s face, velocity now (%.1f, %.1f)",
			colliderID, face, ballVelocity.X, ballVelocity.Y)
	}
}

// ShouldReflect 判断给定撞击面和速度下需要翻转哪个速度分量
//
// 只有球正朝撞击面运动时才反弹：
//   - Left: vx > 0
//   - Right: vx < 0
//   - Top: vy < 0
//   - Bottom: vy > 0
//   - Inside: 不反弹
func ShouldReflect(face utils.Collision, vx, vy float64) (reflectX, reflectY bool) {
	switch face {
	case utils.CollisionLeft:
		reflectX = vx > 0
	case utils.CollisionRight:
		reflectX = vx < 0
	case utils.CollisionTop:
		reflectY = vy < 0
	case utils.CollisionBottom:
		reflectY = vy > 0
	}
	return reflectX, reflectY
}
