//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.neontrail -o build/android/neontrail.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/NeonTrail.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/neontrail/pkg/app"
	"github.com/decker502/neontrail/pkg/config"
)

// 移动端逻辑屏幕尺寸（竖屏），Ebitengine 负责缩放到设备分辨率
const (
	screenWidth  = 720
	screenHeight = 1280
	// 移动端 GPU 较弱，减少光晕层数
	glowLayers = 2
)

func init() {
	// 移动端只使用内置霓虹调色板，不需要嵌入资源
	cfg := app.Config{
		Verbose: true, // Enable verbose logging for debugging
		Trail:   config.DefaultTrailOptions(),
		Width:   screenWidth,
		Height:  screenHeight,

		GlowLayers: glowLayers,
	}

	trailApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(trailApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
