package components

// WallLocation 墙体位置
type WallLocation int

const (
	WallLeft WallLocation = iota
	WallRight
	WallBottom
	WallTop
)

// String 返回墙体位置名称
func (l WallLocation) String() string {
	switch l {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallBottom:
		return "bottom"
	case WallTop:
		return "top"
	default:
		return "unknown"
	}
}

// WallComponent 标记静态边界墙
// 墙体在启动时创建，之后从不移动或销毁
type WallComponent struct {
	Location WallLocation
}
