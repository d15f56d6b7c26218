// Package main runs the neon particle trail inside a terminal.
//
// Every terminal cell is a coarse 8×16 pixel block; the trail follows the
// mouse (the terminal must report motion events) and bursts on left click.
//
// Usage:
//
//	go run ./cmd/trailterm [flags]
//
// Flags:
//
//	--config <file>     Trail config in YAML
//	--palette <name>    Built-in palette (neon, ember, ocean, aurora) or YAML file
//	--shape <shape>     Particle shape: rect or circle
//	--seed <n>          Random seed (0 = time based)
//	--sound             Play a blip on click bursts
//	--log <file>        Write logs to file (the screen belongs to the trail)
//	--verbose           Enable verbose logging (requires --log)
//
// Controls:
//
//	Mouse move    - Draw the trail
//	Left click    - Particle burst
//	Esc / q / ^C  - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/neontrail/data"
	"github.com/decker502/neontrail/pkg/config"
	"github.com/decker502/neontrail/pkg/embedded"
	"github.com/decker502/neontrail/pkg/sound"
	"github.com/decker502/neontrail/pkg/trail"
)

var (
	configFlag  = flag.String("config", "", "Trail config YAML file")
	paletteFlag = flag.String("palette", "", "Palette name or YAML file (default neon)")
	shapeFlag   = flag.String("shape", "", "Particle shape: rect or circle")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
	soundFlag   = flag.Bool("sound", false, "Play a blip on click bursts")
	logFlag     = flag.String("log", "", "Write logs to this file")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

// frameInterval 终端宿主的帧间隔（60Hz）
const frameInterval = time.Second / 60

func cliOverrides() config.TrailOverrides {
	var o config.TrailOverrides
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "shape":
			o.Shape = shapeFlag
		case "palette":
			o.Palette = paletteFlag
		}
	})
	return o
}

// setupLogging 日志不能写到终端（tcell 占用了屏幕），只能写到文件或丢弃
func setupLogging() (io.Closer, error) {
	if *logFlag == "" || !*verboseFlag {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "trailterm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logFile, err := setupLogging()
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	embedded.Init(data.FS)

	opts, err := config.BuildTrailOptions(*configFlag, cliOverrides())
	if err != nil {
		return err
	}
	palette, err := config.ResolvePalette(opts.Palette)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	var blip sound.Blip = sound.Nop{}
	if *soundFlag {
		b := sound.NewBeepBlip()
		// Non-fatal, the trail can run without sound
		if err := b.Initialize(); err != nil {
			log.Printf("[Sound] Audio initialization failed: %v", err)
		} else {
			blip = b
		}
	}
	defer blip.Close()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	h, err := newHost(screen, opts,
		trail.WithPalette(*palette),
		trail.WithRand(rand.New(rand.NewSource(seed))),
		trail.WithBurstHook(blip.PlayBurst),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h.loop(ctx)
	return nil
}

// loop 是唯一修改引擎状态的 goroutine
// 事件由单独的 goroutine 读取并通过 channel 转发过来
func (h *host) loop(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// screen.Fini 之后 PollEvent 返回 nil
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.engine.Stop()
			return

		case ev := <-eventChan:
			h.handleEvent(ev)
			if !h.engine.Running() {
				return
			}

		case <-ticker.C:
			h.engine.Frame()
			h.screen.Show()
		}
	}
}
