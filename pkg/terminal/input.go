package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// 终端只报告按下和自动重复，不报告松开，按住状态靠事件间隔推断。
// 首次按下到第一次自动重复之间的延迟通常是 250~600ms，之后的重复间隔在 30~50ms。
const (
	// DefaultInitialHold 首次按下后视为按住的时长，覆盖自动重复的首次延迟
	DefaultInitialHold = 500 * time.Millisecond
	// DefaultRepeatHold 自动重复事件后视为按住的时长
	DefaultRepeatHold = 100 * time.Millisecond
)

// Action 终端前端识别的按键动作
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionQuit
)

// KeyAction 把 tcell 按键事件映射为动作
// 上：↑ / w / k；下：↓ / s / j；退出：Esc / Ctrl+C / q
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return ActionUp
		case 's', 'S', 'j':
			return ActionDown
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// HeldKeys 根据最近一次按键事件推断方向键是否按住
// 实现 systems.InputSource；只能在游戏循环所在的 goroutine 使用
type HeldKeys struct {
	initialHold time.Duration
	repeatHold  time.Duration
	now         func() time.Time
	upUntil     time.Time
	downUntil   time.Time
}

// NewHeldKeys 创建按键状态
//
// 参数:
//   - initialHold: 首次按下后视为按住的时长
//   - repeatHold: 按住期间再次收到事件（自动重复）后视为按住的时长
//   - now: 时间来源，传 nil 使用 time.Now
func NewHeldKeys(initialHold, repeatHold time.Duration, now func() time.Time) *HeldKeys {
	if now == nil {
		now = time.Now
	}
	return &HeldKeys{initialHold: initialHold, repeatHold: repeatHold, now: now}
}

// Press 记录一次方向动作
// 按下一个方向会立即释放相反方向，避免两个方向同时"按住"互相抵消
func (k *HeldKeys) Press(action Action) {
	switch action {
	case ActionUp:
		k.upUntil = k.extend(k.upUntil)
		k.downUntil = time.Time{}
	case ActionDown:
		k.downUntil = k.extend(k.downUntil)
		k.upUntil = time.Time{}
	}
}

// UpPressed 实现 systems.InputSource
func (k *HeldKeys) UpPressed() bool {
	return k.now().Before(k.upUntil)
}

// DownPressed 实现 systems.InputSource
func (k *HeldKeys) DownPressed() bool {
	return k.now().Before(k.downUntil)
}

// extend 返回新的松开时刻
// 仍处于按住状态时是自动重复，只续短窗口，且不会缩短首次按下的窗口
func (k *HeldKeys) extend(until time.Time) time.Time {
	now := k.now()
	if !now.Before(until) {
		return now.Add(k.initialHold)
	}
	next := now.Add(k.repeatHold)
	if next.Before(until) {
		return until
	}
	return next
}
