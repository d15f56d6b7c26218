// Package app 提供拖尾应用的 Ebitengine 包装器
//
// 该包把初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/neontrail/pkg/config"
	"github.com/decker502/neontrail/pkg/render"
	"github.com/decker502/neontrail/pkg/sound"
	"github.com/decker502/neontrail/pkg/trail"
	"github.com/decker502/neontrail/pkg/utils"
)

// 未指定尺寸且无法获取显示器尺寸时使用
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Trail 已解析的拖尾配置
	Trail config.TrailOptions
	// Palette 调色板，为 nil 时使用内置霓虹调色板
	Palette *config.Palette
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Sound 点击爆发时播放音效
	Sound bool
	// Width/Height 绘制表面尺寸，0 表示使用默认尺寸
	Width, Height int
	// GlowLayers 光晕层数，0 表示使用 render.DefaultGlowLayers，负数关闭光晕
	GlowLayers int
}

// App 是拖尾应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	engine  *trail.Engine
	canvas  *render.Canvas
	tracker *utils.PointerTracker
	blip    sound.Blip

	width, height int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并启动拖尾应用
//
// 使用非内置调色板时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}

	canvas, err := render.NewCanvas(width, height)
	if err != nil {
		return nil, fmt.Errorf("画布创建失败: %w", err)
	}
	if cfg.GlowLayers != 0 {
		canvas.SetGlowLayers(cfg.GlowLayers)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	var blip sound.Blip = sound.Nop{}
	if cfg.Sound {
		// 初始化音频上下文
		audioContext := audio.NewContext(sound.SampleRate)
		b, err := sound.NewEbitenBlip(audioContext)
		if err != nil {
			log.Printf("[App] Warning: sound disabled: %v", err)
		} else {
			blip = b
		}
	}

	options := []trail.Option{
		trail.WithRand(rand.New(rand.NewSource(seed))),
		trail.WithBurstHook(blip.PlayBurst),
	}
	if cfg.Palette != nil {
		options = append(options, trail.WithPalette(*cfg.Palette))
	}

	engine, err := trail.New(canvas, cfg.Trail, options...)
	if err != nil {
		return nil, fmt.Errorf("拖尾引擎初始化失败: %w", err)
	}
	engine.Start()

	return &App{
		engine:  engine,
		canvas:  canvas,
		tracker: utils.NewPointerTracker(),
		blip:    blip,
		width:   width,
		height:  height,
	}, nil
}

// Update 更新拖尾逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if !a.engine.Running() {
		a.blip.Close()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Escape pressed, stopping")
		a.Stop()
		return nil
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	sample := utils.ReadPointerSample(a.width, a.height)
	a.engine.HandlePointerEvents(a.tracker.Update(sample))

	// 模拟和绘制都按 tick 推进：粒子先画到画布上再移动
	a.engine.Frame()
	return nil
}

// Draw 把画布绘制到屏幕
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	screen.DrawImage(a.canvas.Image(), nil)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 表面尺寸在启动时确定，窗口大小变化由 Ebitengine 缩放处理
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Stop 停止拖尾引擎，下一次 Update 返回 ebiten.Termination
func (a *App) Stop() {
	a.engine.Stop()
}

// Engine 返回拖尾引擎
func (a *App) Engine() *trail.Engine {
	return a.engine
}
