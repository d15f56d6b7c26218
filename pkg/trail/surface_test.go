package trail

import "github.com/decker502/neontrail/internal/particle"

// recordingSurface 记录所有绘制调用的测试表面
type recordingSurface struct {
	width, height int
	clears        int
	rects         []drawCall
	circles       []drawCall
}

type drawCall struct {
	x, y, w, h float64
	color      particle.Color
	glow       float64
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{width: 800, height: 600}
}

func (s *recordingSurface) Size() (int, int) { return s.width, s.height }

func (s *recordingSurface) Clear() {
	s.clears++
	s.rects = s.rects[:0]
	s.circles = s.circles[:0]
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c particle.Color, glow float64) {
	s.rects = append(s.rects, drawCall{x: x, y: y, w: w, h: h, color: c, glow: glow})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, c particle.Color, glow float64) {
	s.circles = append(s.circles, drawCall{x: cx, y: cy, w: r, h: r, color: c, glow: glow})
}
