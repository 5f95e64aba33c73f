package components

// PositionComponent 实体中心的世界坐标（Y 轴向上）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 每个完整模拟步的位移
type VelocityComponent struct {
	VX float64
	VY float64
}
