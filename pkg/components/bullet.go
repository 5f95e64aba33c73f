package components

// BulletOwner 子弹归属，敌我子弹走不同的碰撞规则
type BulletOwner int

const (
	// BulletOwnerEnemy 炮台发射，命中墙体或玩家后消失
	BulletOwnerEnemy BulletOwner = iota
	// BulletOwnerPlayer 玩家发射，命中炮台后消失
	BulletOwnerPlayer
)

// BulletComponent 子弹
type BulletComponent struct {
	Owner  BulletOwner
	Damage int // 对玩家造成的伤害；玩家子弹对炮台固定造成 1 点伤害
}
