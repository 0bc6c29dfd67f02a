// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供世界坐标到屏幕坐标的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：原点在竞技场中心，X 向右，Y 向上
//   - **屏幕坐标**：原点在窗口（或终端）左上角，X 向右，Y 向下
//   - **实体锚点**：TransformComponent.X/Y 是实体中心
//
// # 核心转换公式
//
//	screenX = ScreenWidth/2  + worldX * ScaleX
//	screenY = ScreenHeight/2 - worldY * ScaleY
//
// 窗口前端使用 1:1 缩放；终端前端按终端尺寸缩放，字符格通常是瘦高的，
// 因此 X/Y 缩放不同。
package utils

import "math"

// Camera 把世界坐标映射到屏幕坐标
type Camera struct {
	ScreenWidth  float64
	ScreenHeight float64
	ScaleX       float64
	ScaleY       float64
}

// NewCamera 创建 1:1 缩放的摄像机，世界原点位于屏幕中心
func NewCamera(screenWidth, screenHeight float64) Camera {
	return Camera{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		ScaleX:       1,
		ScaleY:       1,
	}
}

// FitCamera 创建能完整显示 worldWidth x worldHeight 区域的摄像机
//
// cellAspect 是单个屏幕单元的高宽比（像素为 1，终端字符格约为 2）。
// 为保持形状比例，X/Y 使用同一个"视觉缩放"，再按 cellAspect 修正 Y。
func FitCamera(screenWidth, screenHeight, worldWidth, worldHeight, cellAspect float64) Camera {
	if worldWidth <= 0 || worldHeight <= 0 || cellAspect <= 0 {
		return NewCamera(screenWidth, screenHeight)
	}

	scale := math.Min(screenWidth/worldWidth, screenHeight*cellAspect/worldHeight)
	return Camera{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		ScaleX:       scale,
		ScaleY:       scale / cellAspect,
	}
}

// WorldToScreen 将世界坐标转换为屏幕坐标
func (c Camera) WorldToScreen(worldX, worldY float64) (float64, float64) {
	return c.ScreenWidth/2 + worldX*c.ScaleX, c.ScreenHeight/2 - worldY*c.ScaleY
}

// WorldRectToScreen 将中心+尺寸表示的世界矩形转换为屏幕矩形
//
// 返回:
//   - x, y: 屏幕矩形左上角
//   - w, h: 屏幕矩形尺寸
func (c Camera) WorldRectToScreen(centerX, centerY, width, height float64) (x, y, w, h float64) {
	// 世界矩形的左上角是 (minX, maxY)
	x, y = c.WorldToScreen(centerX-width/2, centerY+height/2)
	return x, y, width * c.ScaleX, height * c.ScaleY
}
