package components

import "image/color"

// SpriteShape 精灵的绘制形状
type SpriteShape int

const (
	// ShapeRect 填充矩形（墙体、挡板）
	ShapeRect SpriteShape = iota
	// ShapeCircle 填充圆形，直径取 TransformComponent.Width（球）
	ShapeCircle
)

// SpriteComponent 存储实体的视觉表现
// 渲染器只读取颜色和形状，尺寸与位置来自 TransformComponent
type SpriteComponent struct {
	Color color.RGBA
	Shape SpriteShape
}
