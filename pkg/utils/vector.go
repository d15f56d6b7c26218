package utils

// Vector 二维向量（屏幕坐标系，Y 轴向下为正）
type Vector struct {
	X, Y float64
}

// Displacement 返回从 from 到 to 的位移向量
func Displacement(from, to Vector) Vector {
	return Vector{X: to.X - from.X, Y: to.Y - from.Y}
}

// Velocity 返回位移除以耗时得到的速度向量
// elapsed <= 0 时返回零向量，避免除零得到 Inf
func Velocity(displacement Vector, elapsed float64) Vector {
	if elapsed <= 0 {
		return Vector{}
	}
	return Vector{X: displacement.X / elapsed, Y: displacement.Y / elapsed}
}
