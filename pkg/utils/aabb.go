package utils

import "math"

// Collision 描述矩形 A 撞到了矩形 B 的哪一侧
//
// 命名以 A 相对 B 的位置为准：CollisionLeft 表示 A 从左侧撞上 B
// （A 在 B 的左边，撞击的是 B 的左侧面）。
type Collision int

const (
	CollisionLeft Collision = iota
	CollisionRight
	CollisionTop
	CollisionBottom
	// CollisionInside 两个轴上都无法判定撞击面（例如 A 完全位于 B 内部）
	CollisionInside
)

// String 返回撞击面名称
func (c Collision) String() string {
	switch c {
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	case CollisionInside:
		return "inside"
	default:
		return "unknown"
	}
}

// Rect 轴对齐矩形，X/Y 为中心点，W/H 为完整尺寸
type Rect struct {
	X, Y float64
	W, H float64
}

// Min 返回左下角
func (r Rect) Min() (float64, float64) {
	return r.X - r.W/2, r.Y - r.H/2
}

// Max 返回右上角
func (r Rect) Max() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Collide 检测两个 AABB 是否重叠，并判定 A 撞到 B 的哪一侧
//
// 判定规则：
//   - 任一轴上不重叠（包括边界刚好接触）返回 false
//   - X 轴：A 跨过 B 的左边界且右边界仍在 B 内 → Left；镜像情况 → Right；否则该轴为 Inside
//   - Y 轴：A 跨过 B 的下边界且上边界仍在 B 内 → Bottom；镜像情况 → Top；否则该轴为 Inside
//   - 两个轴都有结果时，取穿透深度较小的轴（最小平移向量），深度相等时取 X 轴
//   - Inside 轴的深度视为无穷大，因此总是让位于另一个轴
//
// 纯函数，不会 panic。
func Collide(a, b Rect) (Collision, bool) {
	aMinX, aMinY := a.Min()
	aMaxX, aMaxY := a.Max()
	bMinX, bMinY := b.Min()
	bMaxX, bMaxY := b.Max()

	if !(aMinX < bMaxX && aMaxX > bMinX && aMinY < bMaxY && aMaxY > bMinY) {
		return CollisionInside, false
	}

	xCollision, xDepth := CollisionInside, math.Inf(1)
	if aMinX < bMinX && aMaxX > bMinX && aMaxX < bMaxX {
		xCollision, xDepth = CollisionLeft, math.Abs(bMinX-aMaxX)
	} else if aMinX > bMinX && aMinX < bMaxX && aMaxX > bMaxX {
		xCollision, xDepth = CollisionRight, math.Abs(aMinX-bMaxX)
	}

	yCollision, yDepth := CollisionInside, math.Inf(1)
	if aMinY < bMinY && aMaxY > bMinY && aMaxY < bMaxY {
		yCollision, yDepth = CollisionBottom, math.Abs(bMinY-aMaxY)
	} else if aMinY > bMinY && aMinY < bMaxY && aMaxY > bMaxY {
		yCollision, yDepth = CollisionTop, math.Abs(aMinY-bMaxY)
	}

	if yDepth < xDepth {
		return yCollision, true
	}
	return xCollision, true
}

// Clamp 将 value 限制在 [lower, upper] 范围内
func Clamp(value, lower, upper float64) float64 {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
