package trail

import (
	"testing"
	"time"

	"github.com/decker502/neontrail/pkg/utils"
)

func TestDeferred_FiresOncePerArm(t *testing.T) {
	clock := utils.NewManualClock(time.Unix(0, 0))
	fired := 0
	d := NewDeferred(clock, func() { fired++ })

	if d.Pending() {
		t.Fatal("new deferred should not be pending")
	}
	if d.Poll() {
		t.Fatal("unarmed deferred should not fire")
	}

	d.Reset(100 * time.Millisecond)
	clock.Advance(99 * time.Millisecond)
	if d.Poll() {
		t.Fatal("fired before the deadline")
	}

	clock.Advance(time.Millisecond)
	if !d.Poll() {
		t.Fatal("should fire at the deadline")
	}
	if d.Poll() || fired != 1 {
		t.Errorf("fired = %d, want exactly 1", fired)
	}
	if d.Pending() {
		t.Error("should not be pending after firing")
	}
}

func TestDeferred_ResetPostponesDeadline(t *testing.T) {
	clock := utils.NewManualClock(time.Unix(0, 0))
	fired := 0
	d := NewDeferred(clock, func() { fired++ })

	d.Reset(100 * time.Millisecond)
	clock.Advance(80 * time.Millisecond)
	d.Reset(100 * time.Millisecond) // 重新调度：新的截止时间为 180ms

	clock.Advance(50 * time.Millisecond)
	if d.Poll() {
		t.Fatal("reset should have postponed the deadline")
	}
	clock.Advance(50 * time.Millisecond)
	if !d.Poll() {
		t.Fatal("should fire after the postponed deadline")
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestDeferred_Cancel(t *testing.T) {
	clock := utils.NewManualClock(time.Unix(0, 0))
	fired := false
	d := NewDeferred(clock, func() { fired = true })

	d.Reset(10 * time.Millisecond)
	d.Cancel()
	clock.Advance(time.Second)

	if d.Poll() || fired {
		t.Error("cancelled action must not fire")
	}
	if d.Pending() {
		t.Error("cancelled action should not be pending")
	}
}
