// Package particle provides the data structures and random helpers used by
// the trail engine: particles, their colours and shapes, the biased random
// generator and the weighted hue sampler.
package particle

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Shape selects how a particle is painted.
type Shape string

const (
	// ShapeRect paints a size×size square anchored at the particle position.
	ShapeRect Shape = "rect"
	// ShapeCircle paints a circle of radius size centred on the particle position.
	ShapeCircle Shape = "circle"
)

// ParseShape converts a config/flag value into a Shape.
// Empty input yields ShapeRect.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rect", "rectangle", "square":
		return ShapeRect, nil
	case "circle":
		return ShapeCircle, nil
	default:
		return "", fmt.Errorf("unknown particle shape %q (want rect or circle)", s)
	}
}

// Color is a hue/saturation/lightness colour with alpha.
// Hue is in degrees, Saturation/Lightness/Alpha are in [0, 1].
type Color struct {
	Hue        float64
	Saturation float64
	Lightness  float64
	Alpha      float64
}

// Neon returns the fully saturated, mid-lightness colour used for every trail particle.
func Neon(hue, alpha float64) Color {
	return Color{Hue: hue, Saturation: 1, Lightness: 0.5, Alpha: alpha}
}

// String renders the colour in CSS hsla() notation, e.g. "hsla(300, 100%, 50%, 0.87)".
func (c Color) String() string {
	return fmt.Sprintf("hsla(%g, %g%%, %g%%, %.2f)",
		c.Hue, math.Round(c.Saturation*100), math.Round(c.Lightness*100), c.Alpha)
}

// NRGBA converts the colour to a non-premultiplied RGBA value.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := colorful.Hsl(c.Hue, c.Saturation, c.Lightness).Clamped().RGB255()
	a := math.Max(0, math.Min(1, c.Alpha))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a * 255))}
}

// Particle is one short-lived glyph of the trail.
//
// Size shrinks every frame; the engine removes the particle once Size <= 0.
type Particle struct {
	X, Y   float64 // 左上角（矩形）或圆心（圆形）
	Size   float64
	Color  Color
	SpeedX float64 // 像素/帧
	SpeedY float64
	Glow   float64 // 光晕半径（像素）
	Shape  Shape
}

// Advance moves the particle by its velocity and shrinks it by wane.
// It reports whether the particle is still alive.
func (p *Particle) Advance(wane float64) bool {
	p.X += p.SpeedX
	p.Y += p.SpeedY
	p.Size -= wane
	return !p.Dead()
}

// Dead reports whether the particle has shrunk away.
func (p *Particle) Dead() bool {
	return p.Size <= 0
}
