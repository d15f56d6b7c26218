package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/neontrail/internal/particle"
)

// 每个终端字符格对应的像素尺寸（字符格大致是 1:2 的长方形）
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	coreRune = '█'
	glowRune = '░'
	// glowDim 光晕格相对粒子颜色的亮度
	glowDim = 0.35
)

// Terminal 把 tcell 屏幕当作粗粒度像素表面
//
// 引擎坐标仍以像素为单位，每 CellWidth×CellHeight 像素映射到一个字符格。
// 终端没有透明度，颜色按 alpha 与黑色背景混合。
type Terminal struct {
	screen tcell.Screen
	cols   int
	rows   int
	// core 标记本帧已被粒子本体占据的格子，光晕不会覆盖它们
	core []bool
}

// NewTerminal 包装一个已经 Init 的 tcell 屏幕
func NewTerminal(screen tcell.Screen) *Terminal {
	t := &Terminal{screen: screen}
	t.Sync()
	return t
}

// Sync 重新读取屏幕尺寸（终端 resize 后调用）
func (t *Terminal) Sync() {
	t.cols, t.rows = t.screen.Size()
	if n := t.cols * t.rows; n > 0 {
		t.core = make([]bool, n)
	} else {
		t.core = nil
	}
}

// Size returns the surface size in pixels.
func (t *Terminal) Size() (int, int) {
	return t.cols * CellWidth, t.rows * CellHeight
}

// ToPixels 把字符格坐标转换为该格中心的像素坐标
func ToPixels(col, row int) (float64, float64) {
	return float64(col)*CellWidth + CellWidth/2, float64(row)*CellHeight + CellHeight/2
}

// Clear 清空屏幕
func (t *Terminal) Clear() {
	t.screen.Clear()
	clear(t.core)
}

// FillRect 填充矩形覆盖的格子，至少填充左上角所在的一格
func (t *Terminal) FillRect(x, y, w, h float64, c particle.Color, glow float64) {
	c0, r0 := cellOf(x, y)
	c1, r1 := cellOf(x+w-1e-9, y+h-1e-9)
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}

	if glow > 0 {
		g0, gr0 := cellOf(x-glow, y-glow)
		g1, gr1 := cellOf(x+w+glow, y+h+glow)
		t.fillGlow(g0, gr0, g1, gr1, c)
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			t.setCore(col, row, c)
		}
	}
}

// FillCircle 填充中心落在圆内的格子，至少填充圆心所在的一格
func (t *Terminal) FillCircle(cx, cy, r float64, c particle.Color, glow float64) {
	if glow > 0 {
		g0, gr0 := cellOf(cx-r-glow, cy-r-glow)
		g1, gr1 := cellOf(cx+r+glow, cy+r+glow)
		t.fillGlow(g0, gr0, g1, gr1, c)
	}

	c0, r0 := cellOf(cx-r, cy-r)
	c1, r1 := cellOf(cx+r, cy+r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px, py := ToPixels(col, row)
			if math.Hypot(px-cx, py-cy) <= r {
				t.setCore(col, row, c)
			}
		}
	}
	col, row := cellOf(cx, cy)
	t.setCore(col, row, c)
}

func (t *Terminal) fillGlow(c0, r0, c1, r1 int, c particle.Color) {
	dim := c
	dim.Alpha = c.Alpha * glowDim
	style := tcell.StyleDefault.Foreground(blendOnBlack(dim))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			i, ok := t.index(col, row)
			if !ok || t.core[i] {
				continue
			}
			t.screen.SetContent(col, row, glowRune, nil, style)
		}
	}
}

func (t *Terminal) setCore(col, row int, c particle.Color) {
	i, ok := t.index(col, row)
	if !ok {
		return
	}
	t.core[i] = true
	t.screen.SetContent(col, row, coreRune, nil, tcell.StyleDefault.Foreground(blendOnBlack(c)))
}

func (t *Terminal) index(col, row int) (int, bool) {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return 0, false
	}
	return row*t.cols + col, true
}

func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

// blendOnBlack 把带透明度的颜色与黑色背景混合为终端真彩色
func blendOnBlack(c particle.Color) tcell.Color {
	rgba := c.NRGBA()
	a := float64(rgba.A) / 255
	return tcell.NewRGBColor(
		int32(math.Round(float64(rgba.R)*a)),
		int32(math.Round(float64(rgba.G)*a)),
		int32(math.Round(float64(rgba.B)*a)),
	)
}
