package config

import "image/color"

// 游戏常量
// 本文件定义了竞技场尺寸、实体尺寸、速度和颜色。
// 这些值是编译期常量，不支持运行时修改（启动器设置见 app_config.go）。

// Arena Configuration (竞技场配置)
// 世界坐标原点在竞技场中心，Y 轴向上
const (
	// LeftWall 左墙中心线X坐标
	LeftWall = -450.0
	// RightWall 右墙中心线X坐标
	RightWall = 450.0
	// BottomWall 下墙中心线Y坐标
	BottomWall = -300.0
	// TopWall 上墙中心线Y坐标
	TopWall = 300.0

	// WallThickness 墙体厚度
	WallThickness = 10.0
)

// Paddle Configuration (挡板配置)
const (
	// PaddleWidth 挡板宽度
	PaddleWidth = 10.0
	// PaddleHeight 挡板高度
	PaddleHeight = 45.0

	// WallToPaddleGap 挡板中心到左右墙中心线的距离
	WallToPaddleGap = 15.0

	// PlayerSpeed 玩家挡板速度（单位/秒，乘以方向幅度后生效）
	PlayerSpeed = 50.0

	// PlayerDirectionMagnitude 单个方向键贡献的方向幅度
	// 实际每秒位移 = 幅度 * PlayerSpeed = 500
	PlayerDirectionMagnitude = 10.0
)

// Ball Configuration (球配置)
const (
	// BallStartX, BallStartY 球的初始位置
	BallStartX = 0.0
	BallStartY = -50.0
	// BallLayer 球的绘制层级（高于墙体和挡板）
	BallLayer = 1.0

	// BallSize 球的直径（宽高相同）
	BallSize = 30.0

	// BallSpeed 球的速度大小（单位/秒）
	BallSpeed = 400.0

	// InitialBallDirectionX, InitialBallDirectionY 初始方向（未归一化）
	InitialBallDirectionX = 0.5
	InitialBallDirectionY = -0.5
)

// Timing Configuration (时间配置)
const (
	// TimeStep 固定时间步长（秒）
	TimeStep = 1.0 / 60.0

	// TicksPerSecond 每秒固定 tick 数
	TicksPerSecond = 60

	// MaxCatchUpTicks 单次推进最多补偿的 tick 数
	// 超出部分的积压时间会被丢弃，避免卡顿后进入"越追越慢"的循环
	MaxCatchUpTicks = 8
)

// Window Configuration (窗口配置)
const (
	// GameWindowWidth, GameWindowHeight 逻辑屏幕尺寸
	GameWindowWidth  = 1280
	GameWindowHeight = 720
)

// 颜色（对应 0.0~1.0 的 RGB 分量换算到 0~255）
var (
	BackgroundColor = color.RGBA{R: 230, G: 230, B: 230, A: 255} // 0.9, 0.9, 0.9
	WallColor       = color.RGBA{R: 204, G: 204, B: 204, A: 255} // 0.8, 0.8, 0.8
	PlayerColor     = color.RGBA{R: 0, G: 204, B: 0, A: 255}     // 0.0, 0.8, 0.0
	BotColor        = color.RGBA{R: 204, G: 0, B: 0, A: 255}     // 0.8, 0.0, 0.0
	BallColor       = color.RGBA{R: 204, G: 204, B: 0, A: 255}   // 0.8, 0.8, 0.0
)

// ArenaBounds 竞技场边界
// 墙体布局和挡板夹紧范围都从这里派生
type ArenaBounds struct {
	Left, Right, Bottom, Top float64
	WallThickness            float64
}

// DefaultArena 返回由常量定义的竞技场
func DefaultArena() ArenaBounds {
	return ArenaBounds{
		Left:          LeftWall,
		Right:         RightWall,
		Bottom:        BottomWall,
		Top:           TopWall,
		WallThickness: WallThickness,
	}
}

// Width 竞技场宽度（左右墙中心线之间的距离）
func (a ArenaBounds) Width() float64 {
	return a.Right - a.Left
}

// Height 竞技场高度（上下墙中心线之间的距离）
func (a ArenaBounds) Height() float64 {
	return a.Top - a.Bottom
}

// PaddleBounds 返回挡板中心Y坐标的合法范围
//
// 挡板不能穿入上下墙：
//
//	lower = Bottom + WallThickness/2 + halfHeight
//	upper = Top    - WallThickness/2 - halfHeight
func (a ArenaBounds) PaddleBounds(paddleHeight float64) (lower, upper float64) {
	half := paddleHeight / 2
	lower = a.Bottom + a.WallThickness/2 + half
	upper = a.Top - a.WallThickness/2 - half
	return lower, upper
}
