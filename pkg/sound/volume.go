package sound

import "math"

// volumeExponent 把线性音量 (0, 1] 转换为 effects.Volume 的以 2 为底的指数
func volumeExponent(linear float64) float64 {
	if linear <= 0 {
		return -10
	}
	return math.Log2(linear)
}
