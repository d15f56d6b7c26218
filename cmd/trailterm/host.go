package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/neontrail/pkg/config"
	"github.com/decker502/neontrail/pkg/render"
	"github.com/decker502/neontrail/pkg/trail"
	"github.com/decker502/neontrail/pkg/utils"
)

// host 把 tcell 事件转换为引擎的指针事件
type host struct {
	screen  tcell.Screen
	surface *render.Terminal
	engine  *trail.Engine
	tracker *utils.PointerTracker

	// 最近一次鼠标事件，焦点变化时沿用其位置
	x, y      int
	focused   bool
	button1Up bool
}

func newHost(screen tcell.Screen, opts config.TrailOptions, options ...trail.Option) (*host, error) {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	surface := render.NewTerminal(screen)
	engine, err := trail.New(surface, opts, options...)
	if err != nil {
		return nil, err
	}
	engine.Start()

	w, h := surface.Size()
	log.Printf("[Term] Surface %dx%d px", w, h)

	return &host{
		screen:    screen,
		surface:   surface,
		engine:    engine,
		tracker:   utils.NewPointerTracker(),
		focused:   true,
		button1Up: true,
	}, nil
}

// handleEvent 处理一个 tcell 事件
func (h *host) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			log.Printf("[Term] Quit requested")
			h.engine.Stop()
		}

	case *tcell.EventMouse:
		h.x, h.y = ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		justPressed := pressed && h.button1Up
		h.button1Up = !pressed
		h.dispatch(justPressed)

	case *tcell.EventFocus:
		h.focused = ev.Focused
		h.dispatch(false)

	case *tcell.EventResize:
		h.screen.Sync()
		h.surface.Sync()
		w, hh := h.surface.Size()
		log.Printf("[Term] Resized to %dx%d px", w, hh)
	}
}

// dispatch 把当前指针状态交给追踪器，字符格坐标转换为格子中心的像素坐标
func (h *host) dispatch(justPressed bool) {
	px, py := render.ToPixels(h.x, h.y)
	sample := utils.PointerSample{
		X:           int(px),
		Y:           int(py),
		Inside:      h.focused,
		JustPressed: justPressed,
	}
	h.engine.HandlePointerEvents(h.tracker.Update(sample))
}
