// Package sound 播放点击爆发时的短音效
//
// 两个后端：
//   - EbitenBlip：Ebitengine audio，用于窗口宿主
//   - BeepBlip：gopxl/beep speaker，用于终端宿主
//
// 音效是可选的：初始化失败只记录日志，拖尾照常运行。
package sound

import "math"

// SampleRate 两个后端统一使用的采样率
const SampleRate = 48000

// Blip 是点击爆发音效
// PlayBurst 的签名与 trail.BurstHook 一致，可直接注册为回调
type Blip interface {
	PlayBurst(x, y float64, count int)
	Close()
}

// Nop 是静音实现
type Nop struct{}

// PlayBurst does nothing.
func (Nop) PlayBurst(x, y float64, count int) {}

// Close does nothing.
func (Nop) Close() {}

// burstVolume 按爆发粒子数计算音量
// 100 个粒子（默认值）时为满音量，粒子越少越轻，但不低于 0.2
func burstVolume(count int) float64 {
	if count <= 0 {
		return 0
	}
	return math.Max(0.2, math.Min(1, float64(count)/100))
}
