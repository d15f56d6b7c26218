package particle

import (
	"image/color"
	"testing"
)

func TestColor_String(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{Neon(300, 0.87), "hsla(300, 100%, 50%, 0.87)"},
		{Neon(60, 1), "hsla(60, 100%, 50%, 1.00)"},
		{Color{Hue: 210, Saturation: 0.5, Lightness: 0.25, Alpha: 0.456}, "hsla(210, 50%, 25%, 0.46)"},
	}

	for _, tt := range tests {
		if got := tt.color.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestColor_NRGBA(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  color.NRGBA
	}{
		{"Red", Neon(0, 1), color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
		{"Green", Neon(120, 1), color.NRGBA{R: 0, G: 255, B: 0, A: 255}},
		{"Blue", Neon(240, 0), color.NRGBA{R: 0, G: 0, B: 255, A: 0}},
		{"AlphaClamped", Neon(60, 2), color.NRGBA{R: 255, G: 255, B: 0, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.NRGBA(); got != tt.want {
				t.Errorf("NRGBA() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"", ShapeRect, false},
		{"rect", ShapeRect, false},
		{"Square", ShapeRect, false},
		{"circle", ShapeCircle, false},
		{" CIRCLE ", ShapeCircle, false},
		{"star", "", true},
	}

	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseShape(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseShape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParticle_Advance(t *testing.T) {
	p := &Particle{X: 10, Y: 20, Size: 0.5, SpeedX: 1.5, SpeedY: -2}

	if !p.Advance(0.25) {
		t.Fatal("particle should survive the first advance")
	}
	if p.X != 11.5 || p.Y != 18 {
		t.Errorf("position = (%v, %v), want (11.5, 18)", p.X, p.Y)
	}
	if p.Size != 0.25 {
		t.Errorf("size = %v, want 0.25", p.Size)
	}

	if p.Advance(0.25) {
		t.Error("particle should be dead once size reaches 0")
	}
	if !p.Dead() {
		t.Error("Dead() should report true at size 0")
	}
}
