// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSample 存储当前帧的指针原始状态
// 用于统一处理鼠标和触摸输入
type PointerSample struct {
	// 指针位置（屏幕坐标）
	X, Y int
	// 指针是否在绘制区域内（且窗口处于焦点）
	Inside bool
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 是否有活动的触摸
	IsTouching bool
}

// ReadPointerSample 获取当前帧的指针状态
// 同时支持鼠标和触摸输入，优先检测触摸
func ReadPointerSample(width, height int) PointerSample {
	s := PointerSample{}

	// 首先检查触摸输入（移动设备）
	justTouched := inpututil.AppendJustPressedTouchIDs(nil)
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		s.X, s.Y = ebiten.TouchPosition(touchIDs[0])
		s.IsTouching = true
		s.Inside = true
		s.JustPressed = len(justTouched) > 0
		return s
	}

	// 其次检查鼠标输入（桌面设备）
	s.X, s.Y = ebiten.CursorPosition()
	s.Inside = ebiten.IsFocused() && s.X >= 0 && s.Y >= 0 && s.X < width && s.Y < height
	s.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return s
}

// PointerEvents 是一帧内由采样推导出的指针事件
type PointerEvents struct {
	Moved   bool
	X, Y    int
	Entered bool
	Left    bool
	Pressed bool
}

// PointerTracker 把逐帧轮询的指针采样转换为 move/enter/leave/down 事件
//
// Ebitengine 只提供轮询接口，没有 mousemove/mouseleave 回调，
// 这里通过比较相邻两帧的采样来生成这些事件。
//
// 手指抬起视为离开：移动端的光标位置永远停在 (0,0)，
// 抬起后的鼠标采样在光标真正移动之前都当作在表面外。
type PointerTracker struct {
	initialized bool
	inside      bool
	lastX       int
	lastY       int

	touching bool
	parked   bool // 抬起手指后等待光标移动
	parkX    int
	parkY    int
}

// NewPointerTracker creates a tracker that assumes the pointer starts over the surface.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{inside: true}
}

// Update consumes one sample and returns the events it implies.
//
// The first sample only records the position: an unmoved cursor is not a move.
func (t *PointerTracker) Update(s PointerSample) PointerEvents {
	switch {
	case s.IsTouching:
		t.touching = true
		t.parked = false
	case t.touching:
		t.touching = false
		t.parked = true
		t.parkX, t.parkY = s.X, s.Y
	}
	if t.parked {
		if s.X == t.parkX && s.Y == t.parkY {
			s.Inside = false
			s.X, s.Y = t.lastX, t.lastY
		} else {
			t.parked = false
		}
	}

	ev := PointerEvents{X: s.X, Y: s.Y}

	if s.Inside != t.inside {
		if s.Inside {
			ev.Entered = true
		} else {
			ev.Left = true
		}
		t.inside = s.Inside
	}

	if t.initialized && s.Inside && (s.X != t.lastX || s.Y != t.lastY) {
		ev.Moved = true
	}
	if s.Inside {
		ev.Pressed = s.JustPressed
	}

	t.initialized = true
	t.lastX, t.lastY = s.X, s.Y
	return ev
}

// Inside reports whether the last sample was over the surface.
func (t *PointerTracker) Inside() bool {
	return t.inside
}
