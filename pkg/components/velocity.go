package components

// VelocityComponent 存储实体的速度（世界单位/秒）
// 目前只有球拥有速度
type VelocityComponent struct {
	X float64
	Y float64
}
