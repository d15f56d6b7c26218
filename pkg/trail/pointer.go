package trail

import (
	"log"
	"math"

	"github.com/decker502/neontrail/internal/particle"
	"github.com/decker502/neontrail/pkg/utils"
)

// HandlePointerMove 处理指针移动
//
// 速度 = 与上一次采样的位移 / 距上一次采样的毫秒数。
// 生成 Density 个快速粒子，并重新调度空闲计时器。
func (e *Engine) HandlePointerMove(x, y float64) {
	if !e.running {
		return
	}

	e.idle = false
	elapsed := e.ticker.Tick()
	pos := utils.Vector{X: x, Y: y}

	var velocity utils.Vector
	if e.pointer != nil {
		velocity = utils.Velocity(utils.Displacement(e.pointer.position, pos), elapsed)
	}
	e.pointer = &pointerState{position: pos, velocity: velocity}

	e.addParticles(false)
	e.idleTimer.Reset(e.opts.Timeout)
}

// HandlePointerLeave 指针离开表面：进入收缩模式，暂停生成粒子
func (e *Engine) HandlePointerLeave() {
	if !e.running {
		return
	}
	log.Printf("[Trail] Warning: pointer left the surface")
	e.shrink = true
}

// HandlePointerEnter 指针回到表面：退出收缩模式
func (e *Engine) HandlePointerEnter() {
	if !e.running {
		return
	}
	log.Printf("[Trail] Warning: pointer entered the surface")
	e.shrink = false
}

// HandlePointerDown 处理点击：启用爆发时一次性生成 BurstDensity 个粒子
//
// 爆发不受收缩模式影响，点击本身意味着指针在表面上。
func (e *Engine) HandlePointerDown() {
	if !e.running || !e.opts.EnableClickBurst {
		return
	}

	for i := 0; i < e.opts.BurstDensity; i++ {
		e.particles = append(e.particles, e.generateParticle(e.opts.BurstSpeed, e.opts.BurstParticleSize))
	}

	if e.burstHook != nil {
		pos := e.pointerPosition()
		e.burstHook(pos.X, pos.Y, e.opts.BurstDensity)
	}
}

// addParticles 生成一批普通粒子
// isStatic 为 true 时是每帧的静止批次，否则是移动批次
func (e *Engine) addParticles(isStatic bool) {
	if e.shrink {
		return
	}

	if isStatic {
		speed := e.opts.FastSpeed
		if e.idle {
			speed = e.opts.SlowSpeed
		}
		for i := 0; i < e.opts.StaticDensity; i++ {
			e.particles = append(e.particles, e.generateParticle(speed, e.opts.MaxSize))
		}
		return
	}

	for i := 0; i < e.opts.Density; i++ {
		e.particles = append(e.particles, e.generateParticle(e.opts.FastSpeed, e.opts.MaxSize))
	}
}

// generateParticle 在指针位置生成一个粒子
//
// 尺寸偏小（bias -4），透明度和光晕偏亮（bias +4），
// 每轴速度在 [-speed, speed] 内均匀分布并叠加指针速度。
func (e *Engine) generateParticle(speed, maxSize float64) particle.Particle {
	if e.pointer == nil {
		log.Printf("[Trail] Warning: pointer position unknown, spawning at origin")
	}
	pos := e.pointerPosition()
	vel := e.pointerVelocity()

	alpha := math.Round(particle.BiasedRandom(e.rng, 4)*100) / 100

	return particle.Particle{
		X:      pos.X,
		Y:      pos.Y,
		Size:   particle.BiasedRandom(e.rng, -4)*maxSize + 1,
		Color:  particle.Neon(e.pickHue(), alpha),
		SpeedX: particle.RandomSpread(e.rng, speed) + vel.X,
		SpeedY: particle.RandomSpread(e.rng, speed) + vel.Y,
		Glow:   particle.BiasedRandom(e.rng, 4) * e.opts.Glow,
		Shape:  e.opts.Shape,
	}
}

func (e *Engine) pointerPosition() utils.Vector {
	if e.pointer == nil {
		return utils.Vector{}
	}
	return e.pointer.position
}

func (e *Engine) pointerVelocity() utils.Vector {
	if e.pointer == nil {
		return utils.Vector{}
	}
	return e.pointer.velocity
}

// HandlePointerEvents 按 enter → move → down → leave 的顺序处理一帧推导出的指针事件
//
// 供只能轮询指针状态的宿主使用（见 utils.PointerTracker）。
func (e *Engine) HandlePointerEvents(ev utils.PointerEvents) {
	if ev.Entered {
		e.HandlePointerEnter()
	}
	if ev.Moved {
		e.HandlePointerMove(float64(ev.X), float64(ev.Y))
	}
	if ev.Pressed {
		e.HandlePointerDown()
	}
	if ev.Left {
		e.HandlePointerLeave()
	}
}
