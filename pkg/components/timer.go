package components

import "math"

// Timer 通用计时器
// 用于帧动画节奏（每帧间隔）和抚摸呼噜的起始计时
//
// 循环模式下每次到期后 Elapsed 对 Duration 取余并继续计时，
// JustFinished 只在到期的那一次 Tick 后为 true。
// 暂停时 Tick 不累计时间，也不会报告到期。
type Timer struct {
	Duration      float64 // 周期（秒）
	Elapsed       float64 // 当前周期内已过时间（秒）
	Repeating     bool    // 是否循环计时
	Paused        bool    // 是否暂停
	Finished      bool    // 非循环计时器是否已结束
	JustFinished  bool    // 最近一次 Tick 是否到期
	TimesFinished int     // 最近一次 Tick 中到期的次数（循环模式下 dt 跨越多个周期时大于 1）
}

// NewRepeatingTimer 创建循环计时器
func NewRepeatingTimer(duration float64) Timer {
	return Timer{Duration: duration, Repeating: true}
}

// NewTimerFromFPS 根据帧率创建帧间隔计时器，周期为 1/fps 秒
// fps <= 0 时周期为 0，每次 Tick 都会到期
func NewTimerFromFPS(fps float64) Timer {
	if fps <= 0 {
		return NewRepeatingTimer(0)
	}
	return NewRepeatingTimer(1.0 / fps)
}

// Tick 推进计时器 dt 秒
func (t *Timer) Tick(dt float64) {
	t.JustFinished = false
	t.TimesFinished = 0

	if t.Paused || (t.Finished && !t.Repeating) {
		return
	}

	t.Elapsed += dt

	if t.Duration <= 0 {
		t.Elapsed = 0
		t.JustFinished = true
		t.TimesFinished = 1
		t.Finished = !t.Repeating
		return
	}

	if t.Elapsed < t.Duration {
		return
	}

	t.JustFinished = true
	if !t.Repeating {
		t.Elapsed = t.Duration
		t.Finished = true
		t.TimesFinished = 1
		return
	}

	periods := math.Floor(t.Elapsed / t.Duration)
	t.TimesFinished = int(periods)
	t.Elapsed -= periods * t.Duration
}

// Reset 清零计时，不改变暂停状态
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.Finished = false
	t.JustFinished = false
	t.TimesFinished = 0
}

// Pause 暂停计时
func (t *Timer) Pause() {
	t.Paused = true
}

// Unpause 恢复计时
func (t *Timer) Unpause() {
	t.Paused = false
}
