package utils

import (
	"sync"
	"time"
)

// Clock 提供当前时间，测试中可替换为手动时钟
type Clock interface {
	Now() time.Time
}

// SystemClock 使用 time.Now（包含单调时钟读数）
type SystemClock struct{}

// Now returns the current wall and monotonic time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock 是一个只有在 Advance 时才前进的时钟
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock 创建从 start 开始的手动时钟
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance 让时钟前进 d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Ticker 记录上一次 Tick 的时间，每次 Tick 返回距上次的毫秒数
type Ticker struct {
	clock Clock
	last  time.Time
}

// NewTicker 创建从当前时间开始计时的 Ticker
func NewTicker(clock Clock) *Ticker {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Ticker{clock: clock, last: clock.Now()}
}

// Tick returns the milliseconds elapsed since the previous Tick (or since creation).
func (t *Ticker) Tick() float64 {
	now := t.clock.Now()
	elapsed := now.Sub(t.last)
	t.last = now
	return float64(elapsed) / float64(time.Millisecond)
}
