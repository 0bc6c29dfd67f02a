package components

// TransformComponent 存储实体的世界变换
//
// 坐标系：原点在竞技场中心，X 向右，Y 向上（与屏幕坐标 Y 轴相反）。
// X/Y 是实体的中心点，Width/Height 是完整尺寸（不是半尺寸）。
type TransformComponent struct {
	X float64 // 中心X坐标（世界单位）
	Y float64 // 中心Y坐标（世界单位）
	Z float64 // 绘制层级，数值越大越靠前，不参与物理计算

	Width  float64 // 完整宽度
	Height float64 // 完整高度
}

// HalfWidth 返回半宽
func (t *TransformComponent) HalfWidth() float64 {
	return t.Width / 2
}

// HalfHeight 返回半高
func (t *TransformComponent) HalfHeight() float64 {
	return t.Height / 2
}
