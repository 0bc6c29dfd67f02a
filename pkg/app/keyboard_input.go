package app

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyboardInput 从 Ebitengine 读取方向键状态
// 上：↑ 或 W；下：↓ 或 S
type KeyboardInput struct{}

// UpPressed 实现 systems.InputSource
func (KeyboardInput) UpPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
}

// DownPressed 实现 systems.InputSource
func (KeyboardInput) DownPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
}
