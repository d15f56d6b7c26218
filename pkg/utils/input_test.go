package utils

import "testing"

func TestPointerTracker_FirstSampleIsNotAMove(t *testing.T) {
	tr := NewPointerTracker()

	ev := tr.Update(PointerSample{X: 50, Y: 60, Inside: true})
	if ev.Moved {
		t.Error("first sample should only record the position")
	}
	if ev.Entered || ev.Left {
		t.Errorf("no enter/leave expected on first inside sample, got %+v", ev)
	}

	ev = tr.Update(PointerSample{X: 50, Y: 60, Inside: true})
	if ev.Moved {
		t.Error("unchanged position should not be a move")
	}

	ev = tr.Update(PointerSample{X: 51, Y: 60, Inside: true})
	if !ev.Moved || ev.X != 51 || ev.Y != 60 {
		t.Errorf("expected move to (51, 60), got %+v", ev)
	}
}

func TestPointerTracker_LeaveAndEnter(t *testing.T) {
	tr := NewPointerTracker()
	tr.Update(PointerSample{X: 10, Y: 10, Inside: true})

	ev := tr.Update(PointerSample{X: -5, Y: 10, Inside: false})
	if !ev.Left || ev.Entered {
		t.Fatalf("expected leave event, got %+v", ev)
	}
	if ev.Moved {
		t.Error("movement outside the surface should not be reported")
	}
	if tr.Inside() {
		t.Error("tracker should report outside after leave")
	}

	// 仍在外部：不重复触发 leave
	ev = tr.Update(PointerSample{X: -8, Y: 12, Inside: false})
	if ev.Left || ev.Entered {
		t.Errorf("no transition expected while staying outside, got %+v", ev)
	}

	ev = tr.Update(PointerSample{X: 3, Y: 12, Inside: true})
	if !ev.Entered || ev.Left {
		t.Fatalf("expected enter event, got %+v", ev)
	}
	if !ev.Moved {
		t.Error("re-entering at a new position should also be a move")
	}
}

func TestPointerTracker_Pressed(t *testing.T) {
	tr := NewPointerTracker()

	ev := tr.Update(PointerSample{X: 1, Y: 1, Inside: true, JustPressed: true})
	if !ev.Pressed {
		t.Error("press inside the surface should be reported")
	}

	tr.Update(PointerSample{X: -1, Y: 1, Inside: false})
	ev = tr.Update(PointerSample{X: -1, Y: 1, Inside: false, JustPressed: true})
	if ev.Pressed {
		t.Error("press outside the surface should be ignored")
	}
}

// TestPointerTracker_TouchRelease 手指抬起是离开，而不是移动到光标所在的原点
func TestPointerTracker_TouchRelease(t *testing.T) {
	tr := NewPointerTracker()
	tr.Update(PointerSample{X: 300, Y: 500, Inside: true, IsTouching: true, JustPressed: true})

	ev := tr.Update(PointerSample{X: 300, Y: 520, Inside: true, IsTouching: true})
	if !ev.Moved || ev.X != 300 || ev.Y != 520 {
		t.Fatalf("expected touch drag to (300, 520), got %+v", ev)
	}

	// 抬起：回退到从未更新过的光标位置 (0,0)
	ev = tr.Update(PointerSample{X: 0, Y: 0, Inside: true})
	if ev.Moved {
		t.Errorf("finger lift should not be a move, got %+v", ev)
	}
	if !ev.Left {
		t.Errorf("finger lift should be a leave, got %+v", ev)
	}

	// 光标不动：保持在表面外，不重复触发事件
	for i := 0; i < 3; i++ {
		ev = tr.Update(PointerSample{X: 0, Y: 0, Inside: true})
		if ev.Moved || ev.Entered || ev.Left || ev.Pressed {
			t.Fatalf("frame %d after lift: unexpected events %+v", i, ev)
		}
	}
	if tr.Inside() {
		t.Error("tracker should stay outside until the next touch")
	}

	// 再次触摸：进入并移动到触点
	ev = tr.Update(PointerSample{X: 200, Y: 200, Inside: true, IsTouching: true, JustPressed: true})
	if !ev.Entered || !ev.Moved || !ev.Pressed || ev.X != 200 || ev.Y != 200 {
		t.Errorf("expected enter, move and press at (200, 200), got %+v", ev)
	}
}

// TestPointerTracker_MouseAfterTouch 触摸屏笔记本：抬起后移动鼠标恢复为普通指针
func TestPointerTracker_MouseAfterTouch(t *testing.T) {
	tr := NewPointerTracker()
	tr.Update(PointerSample{X: 100, Y: 100, Inside: true, IsTouching: true})
	tr.Update(PointerSample{X: 40, Y: 40, Inside: true})

	ev := tr.Update(PointerSample{X: 45, Y: 40, Inside: true})
	if !ev.Entered || !ev.Moved || ev.X != 45 || ev.Y != 40 {
		t.Errorf("moving the mouse after a touch should enter and move, got %+v", ev)
	}
}
