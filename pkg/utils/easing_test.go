package utils

import (
	"math"
	"testing"
)

// TestEasing 测试缓动函数的端点和中点
func TestEasing(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(float64) float64
		input    float64
		expected float64
	}{
		{"OutQuad起点", EaseOutQuad, 0.0, 0.0},
		{"OutQuad中点", EaseOutQuad, 0.5, 0.75},
		{"OutQuad终点", EaseOutQuad, 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("f(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLerpAndClamp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v, 期望 12.5", got)
	}
	if got := Clamp01(-0.5); got != 0 {
		t.Errorf("Clamp01(-0.5) = %v, 期望 0", got)
	}
	if got := Clamp01(1.5); got != 1 {
		t.Errorf("Clamp01(1.5) = %v, 期望 1", got)
	}
	if got := Clamp01(0.3); got != 0.3 {
		t.Errorf("Clamp01(0.3) = %v, 期望 0.3", got)
	}
}
