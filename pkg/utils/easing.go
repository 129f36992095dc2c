// Package utils 提供通用工具函数
package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于悬停高亮渐入）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（比 Cubic 更柔和，用于导航栏滑入滑出）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseOutExpo 指数缓出
// 特点：开始非常快，结束非常慢
// 公式：f(t) = 1 - 2^(-10t)
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// EaseSmoothScroll 页面平滑滚动曲线
// 在 EaseOutExpo 基础上整体抬高 0.001，保证在 t=1 之前就能到达终点
// 公式：f(t) = min(1, 1.001 - 2^(-10t))
func EaseSmoothScroll(t float64) float64 {
	return math.Min(1, 1.001-math.Pow(2, -10*t))
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 把 v 限制在 [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach 以 rate（每秒）的速度把 current 线性推向 target，不越过 target
func Approach(current, target, rate, dt float64) float64 {
	step := rate * dt
	if current < target {
		return math.Min(current+step, target)
	}
	return math.Max(current-step, target)
}
