package entities

import (
	"fmt"
	"math"

	"github.com/decker502/chronos/pkg/components"
	"github.com/decker502/chronos/pkg/config"
	"github.com/decker502/chronos/pkg/ecs"
)

// NewEnemyBullet 创建瞄准目标点的炮台子弹
//
// 子弹从炮台中心出发，速度方向指向目标当前位置，速率恒定；
// 炮台与目标重合时子弹速度为 0。
//
// 参数:
//   - em: 实体管理器
//   - turret: 发射炮台的属性
//   - fromX, fromY: 炮台中心
//   - targetX, targetY: 目标中心
func NewEnemyBullet(em *ecs.EntityManager, turret *components.TurretComponent, fromX, fromY, targetX, targetY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if turret == nil {
		return 0, fmt.Errorf("turret cannot be nil")
	}

	dx := fromX - targetX
	dy := fromY - targetY
	distance := math.Hypot(dx, dy)

	var vx, vy float64
	if distance > 0 {
		vx = -dx / distance * turret.BulletSpeed
		vy = -dy / distance * turret.BulletSpeed
	}

	size := config.TileSize * turret.BulletSize

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: fromX, Y: fromY})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.CollisionComponent{Width: size, Height: size})
	em.AddComponent(id, &components.BulletComponent{
		Owner:  components.BulletOwnerEnemy,
		Damage: turret.BulletDamage,
	})
	return id, nil
}

// NewPlayerBullet 创建玩家子弹
//
// 玩家子弹沿朝向水平飞行，速度固定为 config.PlayerBulletSpeed。
// lifetime 为 0 时子弹永不过期，否则在存活 lifetime 个模拟步后被回收。
func NewPlayerBullet(em *ecs.EntityManager, x, y float64, facing components.Facing, lifetime int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{
		VX: float64(facing) * config.PlayerBulletSpeed,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  config.TileSize,
		Height: config.TileSize,
	})
	em.AddComponent(id, &components.BulletComponent{
		Owner:  components.BulletOwnerPlayer,
		Damage: config.PlayerBulletDamage,
	})
	if lifetime > 0 {
		em.AddComponent(id, &components.LifetimeComponent{MaxSteps: lifetime})
	}
	return id, nil
}
