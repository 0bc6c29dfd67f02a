package scenes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawEntities 绘制所有带精灵的实体
// 渲染只读取变换和精灵，从不修改它们
func (s *GameScene) drawEntities(screen *ebiten.Image) {
	em := s.sim.EntityManager()
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.SpriteComponent](em)

	// Z 小的先画；同层保持实体ID顺序
	sort.SliceStable(ids, func(i, j int) bool {
		ti, _ := ecs.GetComponent[*components.TransformComponent](em, ids[i])
		tj, _ := ecs.GetComponent[*components.TransformComponent](em, ids[j])
		return ti.Z < tj.Z
	})

	for _, id := range ids {
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)

		switch sprite.Shape {
		case components.ShapeCircle:
			cx, cy := s.camera.WorldToScreen(transform.X, transform.Y)
			radius := transform.Width / 2 * s.camera.ScaleX
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), sprite.Color, true)
		default:
			x, y, w, h := s.camera.WorldRectToScreen(transform.X, transform.Y, transform.Width, transform.Height)
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), sprite.Color, false)
		}
	}
}

// drawOverlay 绘制调试信息：TPS/FPS、tick 数、碰撞统计
func (s *GameScene) drawOverlay(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS: %0.1f  FPS: %0.1f\n", ebiten.ActualTPS(), ebiten.ActualFPS())
	fmt.Fprintf(&b, "Ticks: %d\n", s.sim.TickCount())
	fmt.Fprintf(&b, "Hits: %d (last tick %d)\n", s.stats.Total(), s.stats.LastTickHits())
	for _, name := range s.stats.Names() {
		fmt.Fprintf(&b, "  %s: %d\n", name, s.stats.Count(name))
	}
	ebitenutil.DebugPrint(screen, b.String())
}
