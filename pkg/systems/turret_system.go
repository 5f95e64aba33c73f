package systems

import (
	"log"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/ecs"
	"github.com/decker502/chronos/pkg/entities"
)

// TurretSystem 炮台开火
// 每个完整模拟步推进各炮台的开火计时器，到时后朝目标当前位置发射一颗子弹
type TurretSystem struct {
	entityManager *ecs.EntityManager
}

// NewTurretSystem 创建炮台系统
func NewTurretSystem(em *ecs.EntityManager) *TurretSystem {
	return &TurretSystem{entityManager: em}
}

// Update 推进 dt 模拟秒
//
// 参数:
//   - dt: 模拟时间步长（秒）
//   - targetID: 瞄准目标（玩家）；目标不存在时炮台只计时不开火
//
// 返回:
//   - int: 本步发射的子弹数量
func (s *TurretSystem) Update(dt float64, targetID ecs.EntityID) int {
	target, hasTarget := ecs.GetComponent[*components.PositionComponent](s.entityManager, targetID)

	fired := 0
	for _, id := range ecs.GetEntitiesWith2[*components.TurretComponent, *components.PositionComponent](s.entityManager) {
		turret, _ := ecs.GetComponent[*components.TurretComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		turret.SinceLastShot += dt
		if turret.SinceLastShot < turret.FireInterval || !hasTarget {
			continue
		}
		turret.SinceLastShot = 0

		if _, err := entities.NewEnemyBullet(s.entityManager, turret, pos.X, pos.Y, target.X, target.Y); err != nil {
			log.Printf("[TurretSystem] 炮台 %d 开火失败: %v", id, err)
			continue
		}
		fired++
	}
	return fired
}
