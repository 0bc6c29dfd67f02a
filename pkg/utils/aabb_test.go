package utils

import "testing"

// TestCollide 测试 AABB 撞击面判定
func TestCollide(t *testing.T) {
	// B: 以原点为中心的 100x100 方块，范围 [-50, 50]
	b := Rect{X: 0, Y: 0, W: 100, H: 100}

	tests := []struct {
		name    string
		a       Rect
		wantHit bool
		want    Collision
	}{
		{"完全分离", Rect{X: 200, Y: 0, W: 10, H: 10}, false, CollisionInside},
		{"边界刚好接触不算碰撞", Rect{X: -55, Y: 0, W: 10, H: 10}, false, CollisionInside},
		{"从左侧撞入", Rect{X: -52, Y: 0, W: 10, H: 10}, true, CollisionLeft},
		{"从右侧撞入", Rect{X: 52, Y: 0, W: 10, H: 10}, true, CollisionRight},
		{"从下方撞入", Rect{X: 0, Y: -52, W: 10, H: 10}, true, CollisionBottom},
		{"从上方撞入", Rect{X: 0, Y: 52, W: 10, H: 10}, true, CollisionTop},
		{"完全在内部", Rect{X: 0, Y: 0, W: 10, H: 10}, true, CollisionInside},
		// 左下角：X 穿透 3，Y 穿透 1，取较小的 Y
		{"角落取穿透较浅的轴", Rect{X: -52, Y: -54, W: 10, H: 10}, true, CollisionBottom},
		// X、Y 穿透都是 3，取 X
		{"穿透深度相等时取X轴", Rect{X: -52, Y: -52, W: 10, H: 10}, true, CollisionLeft},
		// X 轴完全在内部（Inside，深度无穷大），Y 轴有撞击面
		{"X轴在内部时取Y轴", Rect{X: 10, Y: 48, W: 10, H: 10}, true, CollisionTop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := Collide(tt.a, b)
			if hit != tt.wantHit {
				t.Fatalf("Collide() hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && got != tt.want {
				t.Errorf("Collide() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestCollideBallAgainstWall 测试球与左墙的实际尺寸
func TestCollideBallAgainstWall(t *testing.T) {
	leftWall := Rect{X: -450, Y: 0, W: 10, H: 610}

	ball := Rect{X: -432, Y: 0, W: 30, H: 30}
	got, hit := Collide(ball, leftWall)
	if !hit {
		t.Fatal("ball should hit left wall")
	}
	// 球在墙的右边，撞击墙的右侧面
	if got != CollisionRight {
		t.Errorf("Collide() = %v, want right", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"低于下限", -300, -272.5},
		{"高于上限", 300, 272.5},
		{"范围内不变", 12.5, 12.5},
		{"恰好在上限", 272.5, 272.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.value, -272.5, 272.5); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestCollisionString(t *testing.T) {
	if CollisionLeft.String() != "left" || CollisionInside.String() != "inside" {
		t.Errorf("unexpected names: %s, %s", CollisionLeft, CollisionInside)
	}
	if Collision(99).String() != "unknown" {
		t.Errorf("Collision(99).String() = %s", Collision(99))
	}
}
