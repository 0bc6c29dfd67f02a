package systems

import (
	"fmt"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/entities"
	"github.com/decker502/pong/pkg/utils"
)

// InputSource 提供两个逻辑按键的按下状态
// 由前端（窗口或终端）实现，模拟核心只读取不写入
type InputSource interface {
	UpPressed() bool
	DownPressed() bool
}

// KeyState 固定的按键状态，用于无界面运行和测试
type KeyState struct {
	Up   bool
	Down bool
}

// UpPressed 实现 InputSource
func (k KeyState) UpPressed() bool { return k.Up }

// DownPressed 实现 InputSource
func (k KeyState) DownPressed() bool { return k.Down }

// PlayerMovementSystem 把方向键状态转换为玩家挡板的竖直位移
//
// 位移 = 方向(-1/0/+1) * PlayerDirectionMagnitude * PlayerSpeed * deltaTime，
// 结果夹紧在上下墙之间。同时按下上下键时互相抵消。
// 只修改玩家实体的变换。
type PlayerMovementSystem struct {
	entityManager *ecs.EntityManager
	input         InputSource
	arena         config.ArenaBounds
}

// NewPlayerMovementSystem 创建玩家移动系统
//
// 参数:
//   - em: 实体管理器
//   - input: 按键状态来源
//   - arena: 竞技场边界（用于计算夹紧范围）
func NewPlayerMovementSystem(em *ecs.EntityManager, input InputSource, arena config.ArenaBounds) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		entityManager: em,
		input:         input,
		arena:         arena,
	}
}

// Direction 返回当前按键对应的净方向（未乘幅度）
func (s *PlayerMovementSystem) Direction() float64 {
	direction := 0.0
	if s.input.UpPressed() {
		direction += 1
	}
	if s.input.DownPressed() {
		direction -= 1
	}
	return direction
}

// Update 移动玩家挡板
func (s *PlayerMovementSystem) Update(deltaTime float64) {
	playerID := entities.MustSingleRole(s.entityManager, components.RolePlayer)
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, playerID)
	if !ok {
		panic(fmt.Sprintf("player entity %d has no TransformComponent", playerID))
	}

	velocity := s.Direction() * config.PlayerDirectionMagnitude * config.PlayerSpeed
	newY := transform.Y + velocity*deltaTime

	lower, upper := s.arena.PaddleBounds(transform.Height)
	transform.Y = utils.Clamp(newY, lower, upper)
}
