// Package main is the desktop entry point of the neon particle trail.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--config <file>     Trail config in YAML (see data/trail.example.yaml)
//	--palette <name>    Built-in palette (neon, ember, ocean, aurora) or YAML file
//	--shape <shape>     Particle shape: rect or circle
//	--seed <n>          Random seed (0 = time based)
//	--glow-layers <n>   Glow layers per particle (0 = default, -1 = off)
//	--sound             Play a blip on click bursts
//	--windowed          Start in a window instead of fullscreen
//	--dump-config       Print the resolved trail config as YAML and exit
//	--verbose           Enable verbose logging
//
// Controls:
//
//	Mouse move / touch  - Draw the trail
//	Left click / tap    - Particle burst
//	F11                 - Toggle fullscreen
//	Escape              - Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/neontrail/data"
	"github.com/decker502/neontrail/pkg/app"
	"github.com/decker502/neontrail/pkg/config"
	"github.com/decker502/neontrail/pkg/embedded"
)

var (
	configFlag   = flag.String("config", "", "Trail config YAML file")
	paletteFlag  = flag.String("palette", "", "Palette name or YAML file (default neon)")
	shapeFlag    = flag.String("shape", "", "Particle shape: rect or circle")
	seedFlag     = flag.Int64("seed", 0, "Random seed (0 = time based)")
	glowFlag     = flag.Int("glow-layers", 0, "Glow layers per particle (0 = default, -1 = off)")
	soundFlag    = flag.Bool("sound", false, "Play a blip on click bursts")
	windowedFlag = flag.Bool("windowed", false, "Start in a window instead of fullscreen")
	dumpFlag     = flag.Bool("dump-config", false, "Print the resolved trail config and exit")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// cliOverrides 只收集命令行上显式设置的参数
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

func main() {
	flag.Parse()

	// 默认静音运行，如需详细调试，传入 --verbose
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	// 初始化嵌入资源（data.FS 在 data/data.go 中声明）
	embedded.Init(data.FS)

	opts, err := config.BuildTrailOptions(*configFlag, cliOverrides())
	if err != nil {
		fmt.Fprintf(os.Stderr, "neontrail: %v\n", err)
		os.Exit(2)
	}

	if *dumpFlag {
		out, err := opts.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "neontrail: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	palette, err := config.ResolvePalette(opts.Palette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "neontrail: %v\n", err)
		os.Exit(2)
	}

	width, height := app.DefaultWidth, app.DefaultHeight
	if m := ebiten.Monitor(); m != nil {
		if w, h := m.Size(); w > 0 && h > 0 {
			width, height = w, h
		}
	}
	log.Printf("[Main] Surface %dx%d, palette %q, shape %s", width, height, palette.Name, opts.Shape)

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verboseFlag,
		Trail:   opts,
		Palette: palette,
		Seed:    *seedFlag,
		Sound:   *soundFlag,
		Width:   width,
		Height:  height,

		GlowLayers: *glowFlag,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Neon Trail")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(!*windowedFlag)

	// Update 在引擎停止后返回 ebiten.Termination，RunGame 此时返回 nil
	if err := ebiten.RunGame(gameApp); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	log.Println("[Main] Neon trail closed")
}
