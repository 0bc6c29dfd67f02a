package components

// ColliderComponent 标记实体参与碰撞检测
// 碰撞盒直接使用 TransformComponent 的中心和尺寸，因此没有额外字段
type ColliderComponent struct{}
