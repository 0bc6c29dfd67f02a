package simulation

import (
	"math"

	"github.com/decker502/pong/pkg/logger"
	"go.uber.org/zap"
)

// timestepEpsilon 吸收浮点累加误差
// 例如 0.01 + 1/150 在数学上等于 1/60，但浮点结果可能略小
const timestepEpsilon = 1e-9

// FixedTimestep 固定时间步长累加器
//
// 调用方每帧传入真实经过的时间，累加器按固定步长切分成整数个 tick，
// 不足一个步长的剩余时间留到下一次。
// 积压超过 maxTicks 个步长时，多余的整步被丢弃，不足一步的余数仍然保留。
type FixedTimestep struct {
	step        float64
	maxTicks    int
	accumulator float64
	dropped     float64
	log         *zap.SugaredLogger
}

// NewFixedTimestep 创建累加器
//
// 参数:
//   - step: 固定步长（秒），必须为正
//   - maxTicks: 单次 Advance 最多执行的 tick 数，<= 0 表示不限制
func NewFixedTimestep(step float64, maxTicks int) *FixedTimestep {
	if !(step > 0) {
		panic("fixed timestep must be positive")
	}
	return &FixedTimestep{
		step:     step,
		maxTicks: maxTicks,
		log:      logger.Named("FixedTimestep"),
	}
}

// Step 返回固定步长
func (f *FixedTimestep) Step() float64 {
	return f.step
}

// Pending 返回尚未消耗的累积时间（秒）
func (f *FixedTimestep) Pending() float64 {
	return f.accumulator
}

// Dropped 返回因积压过多而丢弃的累计时间（秒）
func (f *FixedTimestep) Dropped() float64 {
	return f.dropped
}

// Advance 累加 elapsed 秒，并对每个完整步长调用一次 tick
//
// 返回:
//   - int: 本次执行的 tick 数
func (f *FixedTimestep) Advance(elapsed float64, tick func()) int {
	if elapsed > 0 {
		f.accumulator += elapsed
	}

	if f.maxTicks > 0 {
		limit := f.step * float64(f.maxTicks)
		if f.accumulator > limit+timestepEpsilon {
			// 只丢弃整步，不足一步的余数照常留到下一次
			remainder := math.Mod(f.accumulator, f.step)
			if remainder+timestepEpsilon >= f.step {
				remainder = 0
			}
			excess := f.accumulator - limit - remainder
			f.dropped += excess
			f.accumulator = limit + remainder
			f.log.Warnf("simulation fell behind, dropped %.3fs of backlog", excess)
		}
	}

	ticks := 0
	for f.accumulator+timestepEpsilon >= f.step {
		tick()
		f.accumulator -= f.step
		ticks++
	}
	if f.accumulator < 0 {
		f.accumulator = 0
	}
	return ticks
}
