// Package render 提供拖尾引擎的绘制表面
//
// Canvas 基于 Ebitengine 离屏图像，Terminal 基于 tcell 屏幕。
// 两者都实现 trail.Surface。
package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/neontrail/internal/particle"
	"github.com/decker502/neontrail/pkg/utils"
)

// 光晕参数
const (
	// DefaultGlowLayers 光晕由多少层半透明形状叠加而成
	DefaultGlowLayers = 4
	// glowInnerAlpha 最内层光晕相对粒子透明度的比例
	glowInnerAlpha = 0.35
	// glowOuterAlpha 最外层光晕相对粒子透明度的比例
	glowOuterAlpha = 0.05
)

// Canvas 是 Ebitengine 离屏图像上的绘制表面
//
// 宿主每帧把 Image() 绘制到屏幕上。
type Canvas struct {
	image      *ebiten.Image
	width      int
	height     int
	glowLayers int
	antialias  bool
}

// NewCanvas 创建 width×height 的离屏画布
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	return &Canvas{
		image:      ebiten.NewImage(width, height),
		width:      width,
		height:     height,
		glowLayers: DefaultGlowLayers,
		antialias:  true,
	}, nil
}

// SetGlowLayers 设置光晕层数，0 表示不绘制光晕
func (c *Canvas) SetGlowLayers(n int) {
	if n < 0 {
		n = 0
	}
	c.glowLayers = n
}

// GlowLayers 返回当前的光晕层数
func (c *Canvas) GlowLayers() int {
	return c.glowLayers
}

// Image 返回底层图像
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear 清空为全透明
func (c *Canvas) Clear() {
	c.image.Clear()
}

// FillRect 绘制矩形及其光晕
// 光晕层是向外扩展的矩形，越靠外越透明
func (c *Canvas) FillRect(x, y, w, h float64, col particle.Color, glow float64) {
	for _, l := range glowLayers(col, glow, c.glowLayers) {
		vector.DrawFilledRect(c.image,
			float32(x-l.spread), float32(y-l.spread),
			float32(w+2*l.spread), float32(h+2*l.spread),
			l.color.NRGBA(), c.antialias)
	}
	vector.DrawFilledRect(c.image, float32(x), float32(y), float32(w), float32(h), col.NRGBA(), c.antialias)
}

// FillCircle 绘制圆形及其光晕
func (c *Canvas) FillCircle(cx, cy, r float64, col particle.Color, glow float64) {
	for _, l := range glowLayers(col, glow, c.glowLayers) {
		vector.DrawFilledCircle(c.image, float32(cx), float32(cy), float32(r+l.spread), l.color.NRGBA(), c.antialias)
	}
	vector.DrawFilledCircle(c.image, float32(cx), float32(cy), float32(r), col.NRGBA(), c.antialias)
}

// glowLayer 一层光晕：相对粒子边缘向外扩展的距离和颜色
type glowLayer struct {
	spread float64
	color  particle.Color
}

// glowLayers 返回从外到内排列的光晕层
// 最外层扩展 glow 像素，透明度按 EaseOutQuad 从内向外衰减
func glowLayers(col particle.Color, glow float64, n int) []glowLayer {
	if glow <= 0 || n <= 0 {
		return nil
	}
	layers := make([]glowLayer, 0, n)
	for i := n; i >= 1; i-- {
		t := float64(i) / float64(n)
		layer := col
		layer.Alpha = utils.Clamp01(col.Alpha * utils.Lerp(glowInnerAlpha, glowOuterAlpha, utils.EaseOutQuad(t)))
		layers = append(layers, glowLayer{spread: glow * t, color: layer})
	}
	return layers
}
