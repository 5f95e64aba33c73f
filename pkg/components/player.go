package components

// Facing 水平朝向
type Facing int

const (
	// FacingRight 面向 +X
	FacingRight Facing = 1
	// FacingLeft 面向 -X
	FacingLeft Facing = -1
)

// PlayerComponent 玩家专属状态
type PlayerComponent struct {
	Facing Facing // 当前朝向，决定玩家子弹飞行方向
	Dead   bool   // 本帧已判定死亡，帧末统一处理重生
}
