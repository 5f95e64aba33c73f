package components

// WallComponent 静态碰撞几何（地面或平台）
type WallComponent struct {
	Platform bool // true 为平台，false 为地面，仅影响外观
}

// KillBarrierComponent 即死区域
type KillBarrierComponent struct{}

// GoalComponent 关卡目标点（第 6 关为结局触发点）
type GoalComponent struct{}

// SpawnPointComponent 玩家出生点
type SpawnPointComponent struct{}
