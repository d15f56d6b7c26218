package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/neontrail/internal/particle"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, col, row int) rune {
	r, _, _, _ := screen.GetContent(col, row)
	return r
}

func TestTerminal_Size(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	term := NewTerminal(screen)

	w, h := term.Size()
	if w != 20*CellWidth || h != 10*CellHeight {
		t.Errorf("Size() = %dx%d, want %dx%d", w, h, 20*CellWidth, 10*CellHeight)
	}

	screen.SetSize(30, 5)
	term.Sync()
	if w, h := term.Size(); w != 30*CellWidth || h != 5*CellHeight {
		t.Errorf("after Sync Size() = %dx%d", w, h)
	}
}

func TestTerminal_FillRect(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	term := NewTerminal(screen)

	// 像素 (16, 32) 落在第 2 列第 2 行，宽 10 像素跨两列
	term.FillRect(16, 32, 10, 4, particle.Neon(300, 1), 0)

	if r := runeAt(screen, 2, 2); r != coreRune {
		t.Errorf("cell (2,2) = %q, want %q", r, coreRune)
	}
	if r := runeAt(screen, 3, 2); r != coreRune {
		t.Errorf("cell (3,2) = %q, want %q", r, coreRune)
	}
	if r := runeAt(screen, 4, 2); r == coreRune {
		t.Error("cell (4,2) should be outside the rect")
	}

	_, _, style, _ := screen.GetContent(2, 2)
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 255) {
		t.Errorf("foreground = %v, want magenta", fg)
	}
}

func TestTerminal_TinyRectFillsOneCell(t *testing.T) {
	screen := newSimScreen(t, 10, 10)
	term := NewTerminal(screen)

	term.FillRect(9, 17, 0.5, 0.5, particle.Neon(120, 1), 0)
	if r := runeAt(screen, 1, 1); r != coreRune {
		t.Errorf("cell (1,1) = %q, want %q", r, coreRune)
	}
}

func TestTerminal_GlowDoesNotOverwriteCore(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	term := NewTerminal(screen)

	term.FillRect(40, 48, 1, 1, particle.Neon(210, 1), 0)  // 格子 (5,3)
	term.FillRect(48, 48, 1, 1, particle.Neon(60, 1), 16) // 格子 (6,3)，光晕覆盖周围

	if r := runeAt(screen, 5, 3); r != coreRune {
		t.Errorf("glow overwrote the neighbouring core: %q", r)
	}
	if r := runeAt(screen, 7, 3); r != glowRune {
		t.Errorf("cell (7,3) = %q, want glow %q", r, glowRune)
	}

	term.Clear()
	if r := runeAt(screen, 5, 3); r == coreRune {
		t.Error("Clear should wipe the screen")
	}
	// 清屏后核心标记也被重置，光晕可以写入
	term.FillRect(48, 48, 1, 1, particle.Neon(60, 1), 16)
	if r := runeAt(screen, 5, 3); r != glowRune {
		t.Errorf("cell (5,3) after clear = %q, want glow", r)
	}
}

func TestTerminal_FillCircle(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	term := NewTerminal(screen)

	cx, cy := ToPixels(10, 5)
	term.FillCircle(cx, cy, 9, particle.Neon(180, 1), 0)

	if r := runeAt(screen, 10, 5); r != coreRune {
		t.Errorf("centre cell = %q, want %q", r, coreRune)
	}
	// 左右相邻格中心距离 8 像素 <= 9
	if runeAt(screen, 9, 5) != coreRune || runeAt(screen, 11, 5) != coreRune {
		t.Error("horizontal neighbours should be inside the circle")
	}
	// 上下相邻格中心距离 16 像素 > 9
	if runeAt(screen, 10, 4) == coreRune || runeAt(screen, 10, 6) == coreRune {
		t.Error("vertical neighbours should be outside the circle")
	}
}

func TestTerminal_OffscreenIgnored(t *testing.T) {
	screen := newSimScreen(t, 4, 4)
	term := NewTerminal(screen)

	// 不应 panic
	term.FillRect(-100, -100, 5, 5, particle.Neon(0, 1), 50)
	term.FillCircle(1000, 1000, 3, particle.Neon(0, 1), 5)
}

func TestBlendOnBlack(t *testing.T) {
	tests := []struct {
		name  string
		color particle.Color
		want  tcell.Color
	}{
		{"Opaque", particle.Neon(0, 1), tcell.NewRGBColor(255, 0, 0)},
		{"Half", particle.Neon(0, 0.5), tcell.NewRGBColor(128, 0, 0)},
		{"Transparent", particle.Neon(0, 0), tcell.NewRGBColor(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blendOnBlack(tt.color); got != tt.want {
				t.Errorf("blendOnBlack(%v) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}
