// Package simulation 是与渲染无关的模拟核心：实体、系统和固定步长调度。
package simulation

import (
	"fmt"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/entities"
	"github.com/decker502/pong/pkg/events"
	"github.com/decker502/pong/pkg/logger"
	"github.com/decker502/pong/pkg/systems"
)

// Simulation 持有整个游戏世界，并按固定 tick 驱动各个系统
//
// 每个 tick 的执行顺序是固定的：
//  1. VelocitySystem：球按速度移动
//  2. PlayerMovementSystem：玩家挡板按按键移动并夹紧
//  3. CollisionSystem：球与碰撞体检测、反弹、产生事件
//  4. 观察者处理本 tick 的碰撞事件
//
// 碰撞检测因此总是用球的新位置对比挡板的新位置，不会滞后一个 tick。
// Simulation 不是并发安全的，所有调用必须来自同一个游戏循环。
type Simulation struct {
	entityManager *ecs.EntityManager
	arena         config.ArenaBounds
	entities      *entities.ArenaEntities
	queue         *events.Queue
	timestep      *FixedTimestep

	velocitySystem       *systems.VelocitySystem
	playerMovementSystem *systems.PlayerMovementSystem
	collisionSystem      *systems.CollisionSystem
	observers            []events.Observer

	tickCount uint64
}

// NewSimulation 创建模拟并生成竞技场中的全部实体
//
// 参数:
//   - input: 按键状态来源
//
// 返回:
//   - *Simulation: 模拟实例
//   - error: 实体创建失败时返回错误
func NewSimulation(input systems.InputSource) (*Simulation, error) {
	if input == nil {
		return nil, fmt.Errorf("input source cannot be nil")
	}

	em := ecs.NewEntityManager()
	arena := config.DefaultArena()

	spawned, err := entities.SpawnArena(em, arena)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn arena: %w", err)
	}

	queue := events.NewQueue()

	sim := &Simulation{
		entityManager:        em,
		arena:                arena,
		entities:             spawned,
		queue:                queue,
		timestep:             NewFixedTimestep(config.TimeStep, config.MaxCatchUpTicks),
		velocitySystem:       systems.NewVelocitySystem(em),
		playerMovementSystem: systems.NewPlayerMovementSystem(em, input, arena),
		collisionSystem:      systems.NewCollisionSystem(em, queue),
	}

	logger.Named("Simulation").Infof("arena spawned: %d entities, player=%d bot=%d ball=%d",
		em.EntityCount(), spawned.Player, spawned.Bot, spawned.Ball)

	return sim, nil
}

// AddObserver 注册碰撞事件观察者，按注册顺序调用
func (s *Simulation) AddObserver(observer events.Observer) {
	s.observers = append(s.observers, observer)
}

// Tick 执行一个固定步长
func (s *Simulation) Tick() {
	step := s.timestep.Step()

	// 事件只在产生它的 tick 内有效
	s.queue.Reset()

	s.velocitySystem.Update(step)
	s.playerMovementSystem.Update(step)
	s.collisionSystem.Update(step)

	collisions := s.queue.Events()
	for _, observer := range s.observers {
		observer.OnCollisions(collisions)
	}

	s.tickCount++
}

// Advance 推进 elapsed 秒的真实时间，返回执行的 tick 数
func (s *Simulation) Advance(elapsed float64) int {
	return s.timestep.Advance(elapsed, s.Tick)
}

// EntityManager 返回实体管理器（渲染器只读使用）
func (s *Simulation) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Entities 返回启动时创建的实体句柄
func (s *Simulation) Entities() *entities.ArenaEntities {
	return s.entities
}

// Arena 返回竞技场边界
func (s *Simulation) Arena() config.ArenaBounds {
	return s.arena
}

// TickCount 返回已执行的 tick 数
func (s *Simulation) TickCount() uint64 {
	return s.tickCount
}

// LastCollisions 返回最近一个 tick 的碰撞事件
// 切片在下一个 tick 开始时失效
func (s *Simulation) LastCollisions() []events.CollisionEvent {
	return s.queue.Events()
}
