package systems

import (
	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/ecs"
)

// BulletSystem 敌方子弹匀速直线运动
// 玩家子弹在战斗结算中前进，这里不处理
type BulletSystem struct {
	entityManager *ecs.EntityManager
}

// NewBulletSystem 创建子弹运动系统
func NewBulletSystem(em *ecs.EntityManager) *BulletSystem {
	return &BulletSystem{entityManager: em}
}

// Update 把每颗敌方子弹移动一个速度向量
func (s *BulletSystem) Update() {
	ids := ecs.GetEntitiesWith3[*components.BulletComponent, *components.PositionComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range ids {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
		if bullet.Owner != components.BulletOwnerEnemy {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		pos.X += vel.VX
		pos.Y += vel.VY
	}
}
