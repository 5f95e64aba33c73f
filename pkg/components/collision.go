package components

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒以实体位置为中心，用于子弹、墙体、玩家之间的 AABB 检测
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
