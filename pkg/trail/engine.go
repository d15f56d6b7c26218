// Package trail 实现霓虹粒子拖尾引擎
//
// 引擎持有唯一的绘制表面、指针状态、粒子集合和空闲计时器。
// 宿主（Ebitengine 窗口或终端）把指针事件转交给 Handle* 方法，
// 并在每一帧调用 Frame（Step、Draw、Advance）。
//
// 引擎不加锁：所有方法必须在同一个 goroutine 中调用。
package trail

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/neontrail/internal/particle"
	"github.com/decker502/neontrail/pkg/config"
	"github.com/decker502/neontrail/pkg/utils"
)

// BurstHook 在点击爆发生成粒子后调用
type BurstHook func(x, y float64, count int)

// Option 配置 Engine 的可选依赖
type Option func(*Engine)

// WithRand 使用指定的随机源（测试中传入固定种子）
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithClock 使用指定的时钟驱动速度计算和空闲计时器
func WithClock(clock utils.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithPalette 替换默认的霓虹调色板
func WithPalette(p config.Palette) Option {
	return func(e *Engine) {
		e.palette = p
	}
}

// WithBurstHook 注册点击爆发回调（例如播放音效）
func WithBurstHook(hook BurstHook) Option {
	return func(e *Engine) {
		e.burstHook = hook
	}
}

// pointerState 最后一次已知的指针位置及推导出的速度
type pointerState struct {
	position utils.Vector
	velocity utils.Vector
}

// Engine 粒子拖尾引擎
type Engine struct {
	surface Surface
	opts    config.TrailOptions
	palette config.Palette

	rng       *rand.Rand
	clock     utils.Clock
	ticker    *utils.Ticker
	pickHue   func() float64
	burstHook BurstHook

	particles []particle.Particle
	pointer   *pointerState // nil 表示指针尚未进入过表面
	idle      bool
	shrink    bool
	running   bool
	idleTimer *Deferred
}

// New 创建引擎
//
// 参数:
//   - surface: 绘制表面，为 nil 或尺寸非正时返回 ErrNoSurface
//   - opts: 已解析的配置（见 config.ResolveTrailOptions）
//
// 返回的引擎处于停止状态，需要调用 Start。
func New(surface Surface, opts config.TrailOptions, options ...Option) (*Engine, error) {
	if err := checkSurface(surface); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid trail options: %w", err)
	}

	e := &Engine{
		surface: surface,
		opts:    opts,
		palette: config.DefaultPalette(),
		clock:   utils.SystemClock{},
		// 指针在第一次移动之前视为空闲
		idle: true,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pick, err := particle.NewWeightedSampler(e.palette.Entries(), e.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to build colour sampler for palette %q: %w", e.palette.Name, err)
	}
	e.pickHue = pick
	e.ticker = utils.NewTicker(e.clock)
	e.idleTimer = NewDeferred(e.clock, func() {
		e.idle = true
	})

	w, h := surface.Size()
	log.Printf("[Trail] Engine created: surface %dx%d, palette %q, shape %s", w, h, e.palette.Name, opts.Shape)
	return e, nil
}

// Start 开始响应指针事件并推进帧，重复调用无副作用
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.running = true
	log.Printf("[Trail] Started")
}

// Stop 停止引擎
//
// 取消尚未触发的空闲计时器，之后的指针事件被忽略，Step/Draw/Advance 变为空操作。
// 重复调用无副作用，Stop 之后可以再次 Start。
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.idleTimer.Cancel()
	log.Printf("[Trail] Stopped with %d live particles", len(e.particles))
}

// Running reports whether the engine is started.
func (e *Engine) Running() bool {
	return e.running
}

// ParticleCount 返回当前存活的粒子数
func (e *Engine) ParticleCount() int {
	return len(e.particles)
}

// ShrinkMode reports whether spawning is suspended because the pointer left the surface.
func (e *Engine) ShrinkMode() bool {
	return e.shrink
}

// PointerIdle reports whether the pointer has not moved for longer than the timeout.
func (e *Engine) PointerIdle() bool {
	return e.idle
}

// Options 返回引擎使用的配置
func (e *Engine) Options() config.TrailOptions {
	return e.opts
}
