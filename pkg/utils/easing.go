package utils

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 光晕渲染用它们计算每一层的透明度衰减。
//
// 参考：https://easings.net/

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
