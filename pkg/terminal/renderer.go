// Package terminal 是终端前端：用 tcell 绘制竞技场、读取按键，用 beep 播放音效。
//
// 与窗口前端共享同一个模拟核心（pkg/simulation），只替换渲染和输入。
package terminal

import (
	"image/color"
	"math"
	"sort"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// CellAspect 终端字符格的高宽比
const CellAspect = 2.0

// Renderer 把实体绘制成终端字符格
// 最后一行保留给状态栏
type Renderer struct {
	screen  tcell.Screen
	arena   config.ArenaBounds
	bgStyle tcell.Style
}

// NewRenderer 创建终端渲染器
func NewRenderer(screen tcell.Screen, arena config.ArenaBounds) *Renderer {
	return &Renderer{
		screen:  screen,
		arena:   arena,
		bgStyle: tcell.StyleDefault.Background(toTcellColor(config.BackgroundColor)).Foreground(tcell.ColorBlack),
	}
}

// Camera 返回适配当前终端尺寸的摄像机
// 可视区域是竞技场加上半个墙厚的外沿
func (r *Renderer) Camera() utils.Camera {
	width, height := r.screen.Size()
	playRows := height - 1
	if playRows < 1 {
		playRows = 1
	}
	worldWidth := r.arena.Width() + r.arena.WallThickness
	worldHeight := r.arena.Height() + r.arena.WallThickness
	return utils.FitCamera(float64(width), float64(playRows), worldWidth, worldHeight, CellAspect)
}

// Draw 绘制一帧
//
// 参数:
//   - em: 实体管理器（只读）
//   - status: 状态栏文本
func (r *Renderer) Draw(em *ecs.EntityManager, status string) {
	r.screen.Fill(' ', r.bgStyle)

	camera := r.Camera()
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.SpriteComponent](em)
	sort.SliceStable(ids, func(i, j int) bool {
		ti, _ := ecs.GetComponent[*components.TransformComponent](em, ids[i])
		tj, _ := ecs.GetComponent[*components.TransformComponent](em, ids[j])
		return ti.Z < tj.Z
	})

	for _, id := range ids {
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)

		x, y, w, h := camera.WorldRectToScreen(transform.X, transform.Y, transform.Width, transform.Height)
		glyph := ' '
		if sprite.Shape == components.ShapeCircle {
			glyph = '●'
		}
		style := tcell.StyleDefault.Background(toTcellColor(sprite.Color)).Foreground(tcell.ColorBlack)
		r.fillRect(x, y, w, h, glyph, style)
	}

	r.drawStatus(status)
	r.screen.Show()
}

// fillRect 填充覆盖屏幕矩形的所有字符格，至少一格
func (r *Renderer) fillRect(x, y, w, h float64, glyph rune, style tcell.Style) {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	width, height := r.screen.Size()
	for row := y0; row < y1; row++ {
		if row < 0 || row >= height-1 {
			continue
		}
		for col := x0; col < x1; col++ {
			if col < 0 || col >= width {
				continue
			}
			r.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

// drawStatus 在最后一行绘制状态栏
func (r *Renderer) drawStatus(status string) {
	width, height := r.screen.Size()
	if height < 1 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	col := 0
	for _, ch := range status {
		if col >= width {
			break
		}
		r.screen.SetContent(col, height-1, ch, nil, style)
		col++
	}
	for ; col < width; col++ {
		r.screen.SetContent(col, height-1, ' ', nil, style)
	}
}

// toTcellColor 把 RGBA 颜色转换为 tcell 真彩色
func toTcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
