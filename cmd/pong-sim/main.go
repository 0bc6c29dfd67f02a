// pong-sim 无界面运行模拟并打印结果
//
// 用于在没有显示器或终端的环境中检查模拟行为。
//
// 用法:
//
//	go run ./cmd/pong-sim --ticks 600 [--up | --down] [--verbose]
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/ecs"
	"github.com/decker502/pong/pkg/logger"
	"github.com/decker502/pong/pkg/simulation"
	"github.com/decker502/pong/pkg/systems"
)

var (
	ticks   = flag.Int("ticks", 600, "运行的 tick 数（60 tick = 1 秒）")
	up      = flag.Bool("up", false, "全程按住上键")
	down    = flag.Bool("down", false, "全程按住下键")
	verbose = flag.Bool("verbose", false, "显示每次碰撞的调试日志")
)

func main() {
	flag.Parse()

	if *ticks < 0 {
		log.Fatalf("--ticks 不能为负数: %d", *ticks)
	}

	if err := logger.Init(logger.Options{Verbose: *verbose}); err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer logger.Sync()

	sim, err := simulation.NewSimulation(systems.KeyState{Up: *up, Down: *down})
	if err != nil {
		log.Fatalf("模拟创建失败: %v", err)
	}

	stats := systems.NewCollisionStatsSystem(sim.EntityManager())
	sim.AddObserver(stats)

	for i := 0; i < *ticks; i++ {
		sim.Tick()
	}

	em := sim.EntityManager()
	spawned := sim.Entities()

	fmt.Println("==========================================================")
	fmt.Printf("Pong 模拟结果（%d ticks, %.2f 秒）\n", sim.TickCount(), float64(sim.TickCount())/60)
	fmt.Println("==========================================================")
	printEntity(em, "ball", spawned.Ball)
	printEntity(em, "player", spawned.Player)
	printEntity(em, "bot", spawned.Bot)
	fmt.Println()
	fmt.Printf("碰撞总数: %d\n", stats.Total())
	for _, name := range stats.Names() {
		fmt.Printf("  %-12s %d\n", name, stats.Count(name))
	}
}

func printEntity(em *ecs.EntityManager, name string, id ecs.EntityID) {
	transform, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		fmt.Printf("%-8s (missing)\n", name)
		return
	}

	line := fmt.Sprintf("%-8s pos=(%8.3f, %8.3f)", name, transform.X, transform.Y)
	if velocity, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
		line += fmt.Sprintf("  vel=(%8.3f, %8.3f)", velocity.X, velocity.Y)
	}
	fmt.Println(line)
}
