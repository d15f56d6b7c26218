package trail

import (
	"time"

	"github.com/decker502/neontrail/pkg/utils"
)

// Deferred 是一个可取消、可重新调度的延迟动作
//
// 它不启动 goroutine，也不使用 time.AfterFunc：到期检查发生在 Poll 中，
// 由引擎在自己的帧里调用，因此与指针事件天然串行。
type Deferred struct {
	clock   utils.Clock
	action  func()
	due     time.Time
	pending bool
}

// NewDeferred 创建一个未调度的延迟动作
func NewDeferred(clock utils.Clock, action func()) *Deferred {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &Deferred{clock: clock, action: action}
}

// Reset 取消尚未执行的调度，并在 delay 之后重新调度
func (d *Deferred) Reset(delay time.Duration) {
	d.due = d.clock.Now().Add(delay)
	d.pending = true
}

// Cancel 取消尚未执行的调度
func (d *Deferred) Cancel() {
	d.pending = false
}

// Pending reports whether the action is scheduled and has not fired yet.
func (d *Deferred) Pending() bool {
	return d.pending
}

// Poll 到期时执行动作一次并返回 true
func (d *Deferred) Poll() bool {
	if !d.pending || d.clock.Now().Before(d.due) {
		return false
	}
	d.pending = false
	if d.action != nil {
		d.action()
	}
	return true
}
