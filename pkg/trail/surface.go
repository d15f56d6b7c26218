package trail

import (
	"errors"

	"github.com/decker502/neontrail/internal/particle"
)

// ErrNoSurface 表示宿主无法提供可绘制的表面（空表面或尺寸非正）
var ErrNoSurface = errors.New("trail: no drawing surface available")

// Surface 是引擎唯一的绘制目标
//
// 坐标单位为像素，原点在左上角。glow 为光晕半径（像素），0 表示无光晕。
type Surface interface {
	// Size 返回表面的宽高
	Size() (width, height int)
	// Clear 清空整个表面
	Clear()
	// FillRect 绘制以 (x, y) 为左上角、w×h 的实心矩形
	FillRect(x, y, w, h float64, c particle.Color, glow float64)
	// FillCircle 绘制以 (cx, cy) 为圆心、半径 r 的实心圆
	FillCircle(cx, cy, r float64, c particle.Color, glow float64)
}

func checkSurface(s Surface) error {
	if s == nil {
		return ErrNoSurface
	}
	if w, h := s.Size(); w <= 0 || h <= 0 {
		return ErrNoSurface
	}
	return nil
}
