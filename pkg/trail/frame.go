package trail

import "github.com/decker502/neontrail/internal/particle"

// 一帧的执行顺序（Frame）：
//  1. Step：检查空闲计时器，指针出现过且不在收缩模式时生成一批静止粒子（空闲时慢速）
//  2. Draw：清空表面，按当前位置和尺寸绘制每个粒子
//  3. Advance：移动并缩小每个粒子，尺寸 <= 0 的立即移除（原地压缩，保持顺序）
//
// 先绘制后推进，新生成的粒子第一帧出现在生成位置、保持生成尺寸。

// Step 检查空闲计时器并生成本帧的静止粒子
func (e *Engine) Step() {
	if !e.running {
		return
	}

	e.idleTimer.Poll()

	if e.pointer != nil {
		e.addParticles(true)
	}
}

// Draw 清空表面并绘制所有存活的粒子
func (e *Engine) Draw() {
	if !e.running {
		return
	}

	e.surface.Clear()
	for i := range e.particles {
		p := &e.particles[i]
		switch p.Shape {
		case particle.ShapeCircle:
			e.surface.FillCircle(p.X, p.Y, p.Size, p.Color, p.Glow)
		default:
			e.surface.FillRect(p.X, p.Y, p.Size, p.Size, p.Color, p.Glow)
		}
	}
}

// Advance 移动并缩小所有粒子，移除尺寸 <= 0 的粒子
func (e *Engine) Advance() {
	if !e.running {
		return
	}

	alive := e.particles[:0]
	for i := range e.particles {
		if e.particles[i].Advance(e.opts.WaneSpeed) {
			alive = append(alive, e.particles[i])
		}
	}
	e.particles = alive
}

// Frame 运行完整的一帧：Step、Draw、Advance
func (e *Engine) Frame() {
	e.Step()
	e.Draw()
	e.Advance()
}
