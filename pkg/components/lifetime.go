package components

// LifetimeComponent 管理实体的生命周期
// 以完整模拟步计数，因此时间减速/停止时寿命同样被拉长
type LifetimeComponent struct {
	MaxSteps     int  // 最大存活步数
	CurrentSteps int  // 已存活步数
	IsExpired    bool // 是否已过期
}
