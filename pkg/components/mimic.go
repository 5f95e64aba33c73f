package components

// MimicComponent 镜像（玩家过去位置的延迟回声）
//
// 镜像只有位置，没有生命值和碰撞伤害；位置完全由历史缓冲驱动。
// 在缓冲第一次给出位置之前 Visible 为 false。
type MimicComponent struct {
	Visible bool
}
