package terminal

import (
	"strings"
	"testing"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/simulation"
	"github.com/decker502/pong/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return screen
}

// findCells 返回背景色为 want 的字符格数量和其中一个位置
func findCells(screen tcell.Screen, want tcell.Color) (count, x, y int) {
	width, height := screen.Size()
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			_, _, style, _ := screen.GetContent(col, row)
			_, bg, _ := style.Decompose()
			if bg == want {
				if count == 0 {
					x, y = col, row
				}
				count++
			}
		}
	}
	return count, x, y
}

func TestRendererDraw(t *testing.T) {
	screen := newTestScreen(t, 92, 32)
	sim, err := simulation.NewSimulation(systems.KeyState{})
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}

	renderer := NewRenderer(screen, sim.Arena())
	renderer.Draw(sim.EntityManager(), "status hits 0")

	tests := []struct {
		name  string
		color tcell.Color
		// 玩家在左半屏，对手在右半屏
		check func(x int) bool
	}{
		{"玩家挡板在左侧", toTcellColor(config.PlayerColor), func(x int) bool { return x < 46 }},
		{"对手挡板在右侧", toTcellColor(config.BotColor), func(x int) bool { return x > 46 }},
		{"球在中间附近", toTcellColor(config.BallColor), func(x int) bool { return x > 40 && x < 52 }},
		{"墙体", toTcellColor(config.WallColor), func(x int) bool { return true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, x, _ := findCells(screen, tt.color)
			if count == 0 {
				t.Fatal("entity not drawn")
			}
			if !tt.check(x) {
				t.Errorf("first cell at column %d", x)
			}
		})
	}

	// 球用圆点字符绘制
	_, bx, by := findCells(screen, toTcellColor(config.BallColor))
	if r, _, _, _ := screen.GetContent(bx, by); r != '●' {
		t.Errorf("ball glyph = %q, want ●", r)
	}

	// 最后一行是状态栏
	var line strings.Builder
	for col := 0; col < 13; col++ {
		r, _, _, _ := screen.GetContent(col, 31)
		line.WriteRune(r)
	}
	if line.String() != "status hits 0" {
		t.Errorf("status line = %q", line.String())
	}
}

// TestRendererTinyScreen 极小的终端也不会越界
func TestRendererTinyScreen(t *testing.T) {
	screen := newTestScreen(t, 3, 2)
	sim, err := simulation.NewSimulation(systems.KeyState{})
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}

	NewRenderer(screen, sim.Arena()).Draw(sim.EntityManager(), "a long status line")
}
