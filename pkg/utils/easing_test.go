package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 1 - 0.125 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseOutQuad 测试二次方缓出函数
func TestEaseOutQuad(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.75}, // 1 - 0.25
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutQuad(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutQuad(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseSmoothScroll 平滑滚动曲线在终点前饱和到 1，且单调不减
func TestEaseSmoothScroll(t *testing.T) {
	if got := EaseSmoothScroll(0); math.Abs(got-0.001) > 1e-12 {
		t.Errorf("EaseSmoothScroll(0) = %v, 期望 0.001", got)
	}
	if got := EaseSmoothScroll(1); got != 1 {
		t.Errorf("EaseSmoothScroll(1) = %v, 期望 1", got)
	}
	// 2^(-10t) <= 0.001 当 t >= log2(1000)/10 ≈ 0.9966
	if got := EaseSmoothScroll(0.9975); got != 1 {
		t.Errorf("EaseSmoothScroll(0.9975) = %v, 期望已饱和为 1", got)
	}

	prev := EaseSmoothScroll(0)
	for i := 1; i <= 100; i++ {
		cur := EaseSmoothScroll(float64(i) / 100)
		if cur < prev {
			t.Fatalf("EaseSmoothScroll 在 t=%v 处递减: %v < %v", float64(i)/100, cur, prev)
		}
		prev = cur
	}
}

// TestEaseOutExpo 测试指数缓出
func TestEaseOutExpo(t *testing.T) {
	if got := EaseOutExpo(1); got != 1 {
		t.Errorf("EaseOutExpo(1) = %v, 期望 1", got)
	}
	if got := EaseOutExpo(0.1); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("EaseOutExpo(0.1) = %v, 期望 0.5", got)
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"t=0返回起点", 100, 200, 0, 100},
		{"t=1返回终点", 100, 200, 1, 200},
		{"t=0.5返回中点", 100, 200, 0.5, 150},
		{"负数区间", -50, 50, 0.25, -25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

func TestClampAndApproach(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.4, 0, 1) != 0.4 {
		t.Error("Clamp 结果错误")
	}

	// 不越过目标
	if got := Approach(0.9, 1, 10, 1); got != 1 {
		t.Errorf("Approach 越过目标: %v", got)
	}
	if got := Approach(1, 0, 4, 0.1); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("Approach(1, 0, 4, 0.1) = %v, 期望 0.6", got)
	}
}
