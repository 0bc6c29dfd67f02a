// Package events 提供单线程的碰撞事件队列
//
// 事件只在产生它的 tick 内有效：调度器在每个 tick 开始时清空队列，
// 碰撞解析之后把本 tick 的事件分发给观察者。
package events

import (
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/utils"
)

// CollisionEvent 表示本 tick 内球撞上了一个碰撞体
//
// 每次命中产生一个事件（同一 tick 撞上两个碰撞体会产生两个事件）。
// 只关心"发生了碰撞"的观察者可以忽略字段。
type CollisionEvent struct {
	Collider ecs.EntityID    // 被撞的碰撞体
	Face     utils.Collision // 球撞到碰撞体的哪一侧
}

// Observer 碰撞事件观察者
type Observer interface {
	// OnCollisions 在每个 tick 碰撞解析之后调用，events 可能为空
	// events 切片仅在本次调用内有效，观察者不应保留它
	OnCollisions(events []CollisionEvent)
}

// Queue 只追加的事件队列
type Queue struct {
	events []CollisionEvent
}

// NewQueue 创建事件队列
func NewQueue() *Queue {
	return &Queue{events: make([]CollisionEvent, 0, 8)}
}

// Emit 追加一个事件
func (q *Queue) Emit(event CollisionEvent) {
	q.events = append(q.events, event)
}

// Events 返回当前队列中的事件（不清空）
func (q *Queue) Events() []CollisionEvent {
	return q.events
}

// Len 返回事件数量
func (q *Queue) Len() int {
	return len(q.events)
}

// Reset 清空队列，保留底层容量
func (q *Queue) Reset() {
	q.events = q.events[:0]
}
